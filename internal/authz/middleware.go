package authz

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Guard wires authorization checks into HTTP handlers. It expects an earlier
// middleware to have placed the verified session in the request context.
type Guard struct {
	Logger    *slog.Logger
	LoginPath string
}

// RequireCapability gates a data endpoint. Denials are structured JSON:
// 401 without a valid session, 403 with the wrong role.
func (g Guard) RequireCapability(cap Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			switch Decide(sess, cap) {
			case Allow:
				next.ServeHTTP(w, r)
			case DenyUnauthenticated:
				httpx.RespondError(w, shared.ErrUnauthenticated)
			default:
				if g.Logger != nil {
					g.Logger.Warn("capability denied",
						slog.String("path", r.URL.Path),
						slog.String("role", string(sess.Role)),
						slog.String("capability", string(cap)))
				}
				httpx.RespondError(w, shared.ErrForbidden)
			}
		})
	}
}

// EdgeGuard protects page navigation. Paths on the allow list bypass the
// check entirely; anyone without a valid session is redirected to the login
// page. Role checks on individual pages are layered on with RequirePage.
func (g Guard) EdgeGuard(allow []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range allow {
				if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
					next.ServeHTTP(w, r)
					return
				}
			}
			sess := shared.SessionFromContext(r.Context())
			if !sess.LoggedIn {
				g.redirect(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePage gates a single page on a capability. Both denial kinds redirect
// to the login page; pages do not render a separate forbidden view.
func (g Guard) RequirePage(cap Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			if Decide(sess, cap) != Allow {
				g.redirect(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (g Guard) redirect(w http.ResponseWriter, r *http.Request) {
	target := g.LoginPath
	if target == "" {
		target = "/login"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
