package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/arabesque-studio/arabesque/internal/platform/httpx"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Handler wires the JSON session endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	loginRate int
}

// NewHandler constructs a Handler. loginRate limits login attempts per IP
// per minute; zero disables the limiter.
func NewHandler(logger *slog.Logger, service *Service, loginRate int) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		loginRate: loginRate,
	}
}

// MountRoutes registers session routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/session", h.session)
	if h.loginRate > 0 {
		r.With(httprate.LimitByIP(h.loginRate, time.Minute)).Post("/login", h.login)
	} else {
		r.Post("/login", h.login)
	}
	r.Post("/logout", h.logout)
	r.Post("/password", h.changePassword)
}

type sessionResponse struct {
	LoggedIn           bool   `json:"loggedIn"`
	Role               string `json:"role,omitempty"`
	Username           string `json:"username,omitempty"`
	MustChangePassword bool   `json:"mustChangePassword,omitempty"`
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	sess := h.service.Current(r)
	if !sess.LoggedIn {
		httpx.JSON(w, http.StatusOK, sessionResponse{LoggedIn: false})
		return
	}
	httpx.JSON(w, http.StatusOK, sessionResponse{
		LoggedIn:           true,
		Role:               string(sess.Role),
		Username:           sess.Username,
		MustChangePassword: sess.MustChangePassword,
	})
}

type loginRequest struct {
	RequestedRole string `json:"requestedRole" validate:"required"`
	Username      string `json:"username"`
	Credential    string `json:"credential" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "requestedRole and credential are required")
		return
	}
	role, err := shared.ParseRole(req.RequestedRole)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	sess, err := h.service.Login(r.Context(), w, LoginInput{
		Role:       role,
		Username:   req.Username,
		Credential: req.Credential,
	})
	if err != nil {
		h.logger.Warn("login rejected",
			slog.String("role", req.RequestedRole),
			slog.String("remote", r.RemoteAddr))
		httpx.RespondError(w, err)
		return
	}

	h.logger.Info("login",
		slog.String("role", string(sess.Role)),
		slog.String("username", sess.Username))
	httpx.JSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(w)
	httpx.JSON(w, http.StatusOK, successResponse{Success: true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "all password fields are required")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	if _, err := h.service.ChangePassword(r.Context(), w, sess, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, successResponse{Success: true})
}
