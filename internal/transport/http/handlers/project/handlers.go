package projecthandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"horas/internal/domain/directory"
	"horas/internal/domain/project"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
	"horas/internal/transport/http/shared"
)

type Handler struct {
	Service *project.Service
}

func NewHandler(service *project.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	staff := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager, directory.RoleMember)
	managers := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager)

	r.Route("/projects", func(r chi.Router) {
		r.With(staff).Get("/", h.handleList)
		r.With(staff).Get("/{projectID}", h.handleGet)
		r.With(managers).Post("/", h.handleCreate)
		r.With(managers).Put("/{projectID}", h.handleUpdate)
	})
	r.Route("/clients", func(r chi.Router) {
		r.With(managers).Get("/", h.handleListClients)
		r.With(managers).Post("/", h.handleCreateClient)
	})
}

type projectPayload struct {
	ClientID      string  `json:"clientId"`
	Name          string  `json:"name"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalHours    float64 `json:"totalHours"`
	TotalCost     float64 `json:"totalCost"`
	Status        string  `json:"status"`
	MigratedHours float64 `json:"migratedHours"`
	MigratedCost  float64 `json:"migratedCost"`
}

func (p projectPayload) toProject() (project.Project, error) {
	start, err := shared.ParseDate(p.StartDate)
	if err != nil {
		return project.Project{}, err
	}
	end, err := shared.ParseDate(p.EndDate)
	if err != nil {
		return project.Project{}, err
	}
	return project.Project{
		ClientID:      p.ClientID,
		Name:          p.Name,
		StartDate:     start,
		EndDate:       end,
		TotalHours:    p.TotalHours,
		TotalCost:     p.TotalCost,
		Status:        p.Status,
		MigratedHours: p.MigratedHours,
		MigratedCost:  p.MigratedCost,
	}, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "projects_failed", "failed to list projects", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, projects, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.ByID(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "project not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, p, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	p, err := payload.toProject()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid project dates", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.Create(r.Context(), p)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_project_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	p, err := payload.toProject()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid project dates", middleware.GetRequestID(r.Context()))
		return
	}
	p.ID = chi.URLParam(r, "projectID")

	if err := h.Service.Update(r.Context(), p); err != nil {
		api.Fail(w, http.StatusBadRequest, "update_project_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": p.ID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.ListClients(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clients_failed", "failed to list clients", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, clients, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var payload project.Client
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	id, err := h.Service.CreateClient(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_client_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}
