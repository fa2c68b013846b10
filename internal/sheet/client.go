package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Client fetches published CSV exports. Snapshots are cached briefly in
// Redis and concurrent fetches of the same export are deduplicated; a fetch
// that fails is surfaced as ErrUpstream with no retry.
type Client struct {
	httpc    *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
	group    singleflight.Group
}

// NewClient constructs a Client. cache may be nil to disable snapshot caching.
func NewClient(httpc *http.Client, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{httpc: httpc, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Rows fetches and parses the export at the given URL.
func (c *Client) Rows(ctx context.Context, url string) ([][]string, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: export url", shared.ErrConfigMissing)
	}
	text, err := c.snapshot(ctx, url)
	if err != nil {
		return nil, err
	}
	rows, err := ParseDelimited(text)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed export: %v", shared.ErrUpstream, err)
	}
	return rows, nil
}

func (c *Client) snapshot(ctx context.Context, url string) (string, error) {
	key := "sheet:" + url
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key).Result(); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Warn("sheet cache read", slog.Any("error", err))
		}
	}

	// The leader's fetch result is shared with every deduplicated caller,
	// so it must not die with the leader's own context.
	value, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), url)
	})
	if err != nil {
		return "", err
	}
	text := value.(string)

	if c.cache != nil {
		if err := c.cache.Set(context.WithoutCancel(ctx), key, text, c.cacheTTL).Err(); err != nil && c.logger != nil {
			c.logger.Warn("sheet cache write", slog.Any("error", err))
		}
	}
	return text, nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	res, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: export returned %d", shared.ErrUpstream, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	return string(body), nil
}
