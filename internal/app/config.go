package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	CookieName    string        `envconfig:"COOKIE_NAME" default:"arabesque_session"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE" default:"true"`

	OwnerPassword   string `envconfig:"OWNER_PASSWORD" required:"true"`
	TeacherPassword string `envconfig:"TEACHER_PASSWORD" required:"true"`

	MembersCSVURL     string `envconfig:"MEMBERS_CSV_URL" required:"true"`
	CredentialsCSVURL string `envconfig:"CREDENTIALS_CSV_URL" required:"true"`
	LessonsCSVURL     string `envconfig:"LESSONS_CSV_URL" required:"true"`
	RequestsCSVURL    string `envconfig:"REQUESTS_CSV_URL" required:"true"`

	RelayURL    string `envconfig:"RELAY_URL" required:"true"`
	RelaySecret string `envconfig:"RELAY_SECRET" required:"true"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SheetCacheTTL time.Duration `envconfig:"SHEET_CACHE_TTL" default:"60s"`

	LoginRatePerMinute int `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
}

// LoadConfig reads configuration from environment variables. A missing
// secret is a deployment defect and fails here, not per request.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("%w: session secret", shared.ErrConfigMissing)
	}
	if cfg.RelaySecret == "" {
		return nil, fmt.Errorf("%w: relay secret", shared.ErrConfigMissing)
	}
	if cfg.OwnerPassword == "" || cfg.TeacherPassword == "" {
		return nil, fmt.Errorf("%w: role passwords", shared.ErrConfigMissing)
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
