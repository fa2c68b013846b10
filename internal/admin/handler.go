// Package admin provides owner-only provisioning helpers.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
)

// Handler issues credential hashes for provisioning member logins into the
// sheet. The hash is returned, not stored; the owner pastes it into the
// credential sheet themselves.
type Handler struct {
	logger    *slog.Logger
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger, validator: validator.New()}
}

type hashRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type hashResponse struct {
	Hash string `json:"hash"`
}

// IssueHash returns the bcrypt hash of the submitted password.
func (h *Handler) IssueHash(w http.ResponseWriter, r *http.Request) {
	var req hashRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "password must have at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("issue hash", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, hashResponse{Hash: string(hash)})
}
