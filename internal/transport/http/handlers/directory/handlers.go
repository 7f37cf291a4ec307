package directoryhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"horas/internal/domain/directory"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(directory.RoleAdmin)
	staff := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager, directory.RoleMember)

	r.Route("/users", func(r chi.Router) {
		r.With(staff).Get("/", h.handleListUsers)
		r.With(admin).Post("/", h.handleCreateUser)
		r.With(admin).Put("/{userID}", h.handleUpdateUser)
	})
	r.Route("/teams", func(r chi.Router) {
		r.With(staff).Get("/", h.handleListTeams)
		r.With(admin).Post("/", h.handleCreateTeam)
	})
	r.Route("/rates", func(r chi.Router) {
		r.With(middleware.RequireRole(directory.RoleAdmin, directory.RoleManager)).Get("/", h.handleListRates)
		r.With(admin).Post("/", h.handleCreateRate)
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	users, err := h.Service.ListUsers(r.Context(), activeOnly)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "users_failed", "failed to list users", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, users, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		directory.User
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.CreateUser(r.Context(), payload.User, payload.Password)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_user_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var payload directory.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "userID")

	if err := h.Service.UpdateUser(r.Context(), payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "update_user_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": payload.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Service.ListTeams(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "teams_failed", "failed to list teams", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, teams, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Service.CreateTeam(r.Context(), payload.Name)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_team_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Service.ListRates(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "rates_failed", "failed to list rates", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rates, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateRate(w http.ResponseWriter, r *http.Request) {
	var payload directory.Rate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Service.CreateRate(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_rate_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
