package lessons

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Handler serves the lesson overview endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// List serves the lesson/financial overview for the current session.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	lessons, err := h.service.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list lessons", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lessons)
}

// Roster serves the attendance list of one lesson.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	lessonName := chi.URLParam(r, "name")
	roster, err := h.service.Roster(r.Context(), sess, lessonName)
	if err != nil {
		if err != shared.ErrForbidden {
			h.logger.Error("lesson roster", slog.Any("error", err), slog.String("lesson", lessonName))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, roster)
}
