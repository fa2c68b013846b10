// Package push registers web-push subscriptions. Delivery is handled outside
// this application; registration just records the subscription in the sheet.
package push

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
)

// MutationSink applies a mutation through the write relay.
type MutationSink interface {
	Apply(ctx context.Context, action string, payload map[string]string) error
}

// Handler serves subscription registration.
type Handler struct {
	logger    *slog.Logger
	sink      MutationSink
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, sink MutationSink) *Handler {
	return &Handler{logger: logger, sink: sink, validator: validator.New()}
}

type subscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	P256dh   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

// Subscribe records a web-push subscription.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "endpoint, p256dh and auth are required")
		return
	}

	if err := h.sink.Apply(r.Context(), "push.subscribe", map[string]string{
		"endpoint": req.Endpoint,
		"p256dh":   req.P256dh,
		"auth":     req.Auth,
	}); err != nil {
		h.logger.Error("register push subscription", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
