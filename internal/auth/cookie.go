package auth

import (
	"net/http"
	"time"
)

// CookieStore moves the opaque token in and out of a single named cookie.
// It never inspects token contents.
type CookieStore struct {
	name   string
	secure bool
}

// NewCookieStore constructs a CookieStore.
func NewCookieStore(name string, secure bool) *CookieStore {
	return &CookieStore{name: name, secure: secure}
}

// Name returns the cookie identifier.
func (cs *CookieStore) Name() string {
	return cs.name
}

// Read extracts the token from the request cookie.
func (cs *CookieStore) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(cs.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Write sets the session cookie with the given max-age.
func (cs *CookieStore) Write(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     cs.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear deletes the cookie. Setting a non-positive max-age is the deletion
// protocol; there is nothing to invalidate server-side.
func (cs *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cs.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
