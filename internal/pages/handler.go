// Package pages serves the server-rendered admin pages. Data on the pages is
// loaded client-side from the API; the templates are shells plus the
// client-side guard script.
package pages

import (
	"log/slog"
	"net/http"

	"github.com/arabesque-studio/arabesque/internal/shared"
	"github.com/arabesque-studio/arabesque/internal/view"
)

// Handler renders the page shells.
type Handler struct {
	logger    *slog.Logger
	templates *view.Engine
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, templates *view.Engine) *Handler {
	return &Handler{logger: logger, templates: templates}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string) {
	data := view.TemplateData{
		Title:       title,
		Session:     shared.SessionFromContext(r.Context()),
		CurrentPath: r.URL.Path,
	}
	if err := h.templates.Render(w, name, data); err != nil {
		h.logger.Error("render page", slog.Any("error", err), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Login renders the login page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	// A logged-in user has no business on the login page.
	if shared.SessionFromContext(r.Context()).LoggedIn {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, "pages/login.html", "Anmelden")
}

// Home renders the landing page for the current session.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/home.html", "Start")
}

// Members renders the member roster page.
func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/members.html", "Mitglieder")
}

// Lessons renders the lesson and financial overview page.
func (h *Handler) Lessons(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/lessons.html", "Kurse")
}

// Requests renders the change request review page.
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/requests.html", "Anträge")
}

// Password renders the change password page.
func (h *Handler) Password(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/password.html", "Passwort")
}
