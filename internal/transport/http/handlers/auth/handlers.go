package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"horas/internal/auth"
	"horas/internal/domain/directory"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
)

type Handler struct {
	Directory *directory.Service
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(dir *directory.Service, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{Directory: dir, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Get("/auth/me", h.handleMe)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}

	user, err := h.Directory.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  user,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, user, middleware.GetRequestID(r.Context()))
}
