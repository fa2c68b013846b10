package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

const minPasswordLength = 8

// Credential is a member login record held in the spreadsheet.
type Credential struct {
	Username           string
	PasswordHash       string
	MustChangePassword bool
}

// CredentialStore resolves and mutates member credentials. The members
// repository implements it on top of the sheet and the write relay.
type CredentialStore interface {
	Credential(ctx context.Context, username string) (Credential, error)
	StoreHash(ctx context.Context, username, hash string) error
}

// RolePasswords holds the shared per-role secrets for the non-member roles.
type RolePasswords struct {
	Owner   string
	Teacher string
}

// Service owns session issuance and verification. All session state
// round-trips through the client-held signed cookie.
type Service struct {
	logger    *slog.Logger
	codec     *TokenCodec
	cookies   *CookieStore
	creds     CredentialStore
	passwords RolePasswords
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, codec *TokenCodec, cookies *CookieStore, creds CredentialStore, passwords RolePasswords) *Service {
	return &Service{logger: logger, codec: codec, cookies: cookies, creds: creds, passwords: passwords}
}

// LoginInput carries a parsed login attempt.
type LoginInput struct {
	Role       shared.Role
	Username   string
	Credential string
}

// Login checks the credential for the requested role, issues a token and sets
// the session cookie. Unknown user and wrong password are deliberately not
// distinguished.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, in LoginInput) (shared.Session, error) {
	sess := shared.Session{LoggedIn: true, Role: in.Role}

	switch in.Role {
	case shared.RoleOwner, shared.RoleTeacher:
		reference := s.passwords.Owner
		if in.Role == shared.RoleTeacher {
			// The shared secret alone is not enough: lesson scoping keys
			// on the teacher's username.
			if in.Username == "" {
				return shared.Anonymous, fmt.Errorf("%w: username required", shared.ErrBadInput)
			}
			reference = s.passwords.Teacher
		}
		if reference == "" {
			return shared.Anonymous, fmt.Errorf("%w: password for role %s", shared.ErrConfigMissing, in.Role)
		}
		if subtle.ConstantTimeCompare([]byte(reference), []byte(in.Credential)) != 1 {
			return shared.Anonymous, shared.ErrInvalidCredentials
		}
		if in.Role == shared.RoleTeacher {
			sess.Username = in.Username
		}
	case shared.RoleMember:
		if in.Username == "" {
			return shared.Anonymous, fmt.Errorf("%w: username required", shared.ErrBadInput)
		}
		cred, err := s.creds.Credential(ctx, in.Username)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.Anonymous, shared.ErrInvalidCredentials
			}
			return shared.Anonymous, err
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Credential)) != nil {
			return shared.Anonymous, shared.ErrInvalidCredentials
		}
		sess.Username = in.Username
		sess.MustChangePassword = cred.MustChangePassword
	default:
		return shared.Anonymous, fmt.Errorf("%w: role %s cannot log in", shared.ErrBadInput, in.Role)
	}

	if err := s.issue(w, &sess); err != nil {
		return shared.Anonymous, err
	}
	return sess, nil
}

// Logout clears the cookie unconditionally. Idempotent, always succeeds.
func (s *Service) Logout(w http.ResponseWriter) {
	s.cookies.Clear(w)
}

// Current rehydrates the session from the request cookie. Absent cookie,
// garbage token and natural expiry all collapse to Anonymous; this never
// errors past its boundary.
func (s *Service) Current(r *http.Request) shared.Session {
	token, ok := s.cookies.Read(r)
	if !ok {
		return shared.Anonymous
	}
	sess, err := s.codec.Verify(token)
	if err != nil {
		return shared.Anonymous
	}
	return sess
}

// ChangePassword verifies the current password, persists the new hash through
// the credential store and re-issues the session token with the
// must-change-password flag cleared.
func (s *Service) ChangePassword(ctx context.Context, w http.ResponseWriter, sess shared.Session, current, newPassword, confirm string) (shared.Session, error) {
	if !sess.LoggedIn {
		return shared.Anonymous, shared.ErrUnauthenticated
	}
	if sess.Role != shared.RoleMember {
		return shared.Anonymous, shared.ErrForbidden
	}
	if len(newPassword) < minPasswordLength {
		return shared.Anonymous, fmt.Errorf("%w: new password must have at least %d characters", shared.ErrBadInput, minPasswordLength)
	}
	if newPassword != confirm {
		return shared.Anonymous, fmt.Errorf("%w: password confirmation does not match", shared.ErrBadInput)
	}

	cred, err := s.creds.Credential(ctx, sess.Username)
	if err != nil {
		return shared.Anonymous, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(current)) != nil {
		return shared.Anonymous, shared.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return shared.Anonymous, err
	}
	if err := s.creds.StoreHash(ctx, sess.Username, string(hash)); err != nil {
		return shared.Anonymous, err
	}

	next := shared.Session{LoggedIn: true, Role: shared.RoleMember, Username: sess.Username}
	if err := s.issue(w, &next); err != nil {
		return shared.Anonymous, err
	}
	return next, nil
}

func (s *Service) issue(w http.ResponseWriter, sess *shared.Session) error {
	token, err := s.codec.Issue(*sess)
	if err != nil {
		return err
	}
	// Reflect the timestamps the codec stamped into the token.
	if verified, err := s.codec.Verify(token); err == nil {
		sess.IssuedAt = verified.IssuedAt
		sess.ExpiresAt = verified.ExpiresAt
	}
	s.cookies.Write(w, token, s.codec.TTL())
	return nil
}
