package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, expiry. Callers must treat all of them as "no session".
var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	Role               string `json:"role"`
	Username           string `json:"username,omitempty"`
	MustChangePassword bool   `json:"pwc,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies the session payload. The secret is read-only
// process configuration; no rotation mechanism exists.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec constructs a codec with the fixed session lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source, for expiry tests.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

// TTL exposes the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a compact signed token for the session claims.
func (c *TokenCodec) Issue(sess shared.Session) (string, error) {
	issued := c.now()
	claims := sessionClaims{
		Role:               string(sess.Role),
		Username:           sess.Username,
		MustChangePassword: sess.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and rehydrates the session. It never
// fails open: any parse or validation failure yields ErrInvalidToken.
func (c *TokenCodec) Verify(raw string) (shared.Session, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	claims := &sessionClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return shared.Anonymous, ErrInvalidToken
	}
	role, err := shared.ParseRole(claims.Role)
	if err != nil {
		return shared.Anonymous, ErrInvalidToken
	}
	sess := shared.Session{
		LoggedIn:           true,
		Role:               role,
		Username:           claims.Username,
		MustChangePassword: claims.MustChangePassword,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
