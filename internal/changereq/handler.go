package changereq

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Handler serves the change request endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// List serves every change request for the owner's review.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list change requests", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, requests)
}

type createRequest struct {
	Field    string `json:"field" validate:"required"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue" validate:"required"`
}

// Create files a new change request for the calling member.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "field and newValue are required")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	created, err := h.service.Create(r.Context(), sess, CreateInput{
		Field:    req.Field,
		OldValue: req.OldValue,
		NewValue: req.NewValue,
	})
	if err != nil {
		h.logger.Error("create change request", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

type resolveRequest struct {
	Approve bool `json:"approve"`
}

// Resolve decides a pending change request.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")
	resolved, err := h.service.Resolve(r.Context(), sess, id, req.Approve)
	if err != nil {
		h.logger.Error("resolve change request", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, resolved)
}
