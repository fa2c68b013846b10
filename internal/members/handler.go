package members

import (
	"log/slog"
	"net/http"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Handler serves the member data endpoints. Capability gating happens in the
// router; the handler only resolves "who is asking" where the data is scoped
// to the caller.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// List serves the full roster.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list members", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, members)
}

// Me serves the calling member's own profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	member, err := h.service.Profile(r.Context(), sess.Username)
	if err != nil {
		h.logger.Error("load profile", slog.Any("error", err), slog.String("username", sess.Username))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, member)
}
