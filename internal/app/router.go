package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/arabesque-studio/arabesque/internal/admin"
	"github.com/arabesque-studio/arabesque/internal/auth"
	"github.com/arabesque-studio/arabesque/internal/authz"
	"github.com/arabesque-studio/arabesque/internal/changereq"
	"github.com/arabesque-studio/arabesque/internal/lessons"
	"github.com/arabesque-studio/arabesque/internal/members"
	"github.com/arabesque-studio/arabesque/internal/observability"
	"github.com/arabesque-studio/arabesque/internal/pages"
	"github.com/arabesque-studio/arabesque/internal/push"
	"github.com/arabesque-studio/arabesque/web"
)

// edgeAllowList names the prefixes the page guard never touches: static
// assets, the API namespace (which carries its own 401/403 gating), the
// login page and the operational endpoints.
var edgeAllowList = []string{"/static", "/api", "/login", "/healthz", "/metrics"}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthService     *auth.Service
	AuthHandler     *auth.Handler
	MembersHandler  *members.Handler
	LessonsHandler  *lessons.Handler
	RequestsHandler *changereq.Handler
	PushHandler     *push.Handler
	AdminHandler    *admin.Handler
	PagesHandler    *pages.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:      params.Logger,
		Config:      params.Config,
		AuthService: params.AuthService,
		Metrics:     params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	guard := authz.Guard{Logger: params.Logger, LoginPath: "/login"}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)

		r.With(guard.RequireCapability(authz.CapMemberDataRead)).
			Get("/members", params.MembersHandler.List)
		r.With(guard.RequireCapability(authz.CapOwnProfile)).
			Get("/members/me", params.MembersHandler.Me)

		r.With(guard.RequireCapability(authz.CapLessonFinancialsRead)).
			Get("/lessons", params.LessonsHandler.List)
		r.With(guard.RequireCapability(authz.CapTeacherRosterRead)).
			Get("/lessons/{name}/roster", params.LessonsHandler.Roster)

		r.Route("/requests", func(r chi.Router) {
			r.With(guard.RequireCapability(authz.CapChangeRequestResolve)).
				Get("/", params.RequestsHandler.List)
			r.With(guard.RequireCapability(authz.CapChangeRequestCreate)).
				Post("/", params.RequestsHandler.Create)
			r.With(guard.RequireCapability(authz.CapChangeRequestResolve)).
				Post("/{id}/resolve", params.RequestsHandler.Resolve)
		})

		r.With(guard.RequireCapability(authz.CapPushSubscribe)).
			Post("/push/subscribe", params.PushHandler.Subscribe)
		r.With(guard.RequireCapability(authz.CapAdminHashIssue)).
			Post("/admin/hash", params.AdminHandler.IssueHash)
	})

	r.Get("/login", params.PagesHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(guard.EdgeGuard(edgeAllowList))
		r.Get("/", params.PagesHandler.Home)
		r.With(guard.RequirePage(authz.CapMemberDataRead)).Get("/members", params.PagesHandler.Members)
		r.With(guard.RequirePage(authz.CapLessonFinancialsRead)).Get("/lessons", params.PagesHandler.Lessons)
		r.With(guard.RequirePage(authz.CapChangeRequestResolve)).Get("/requests", params.PagesHandler.Requests)
		r.With(guard.RequirePage(authz.CapOwnProfile)).Get("/password", params.PagesHandler.Password)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
