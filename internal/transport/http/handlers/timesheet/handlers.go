package timesheethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"horas/internal/domain/directory"
	"horas/internal/domain/timesheet"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
	"horas/internal/transport/http/shared"
)

type Handler struct {
	Service *timesheet.Service
}

func NewHandler(service *timesheet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	staff := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager, directory.RoleMember)

	r.Route("/entries", func(r chi.Router) {
		r.With(staff).Get("/", h.handleList)
		r.With(staff).Post("/", h.handleCreate)
		r.With(staff).Put("/{entryID}", h.handleUpdate)
		r.With(staff).Delete("/{entryID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	from, to, err := shared.ParsePeriod(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid from/to dates", middleware.GetRequestID(r.Context()))
		return
	}

	filter := timesheet.Filter{
		UserID:    r.URL.Query().Get("userId"),
		ProjectID: r.URL.Query().Get("projectId"),
		From:      from,
		To:        to,
	}
	// Members only see their own entries.
	if user.Role == directory.RoleMember {
		filter.UserID = user.UserID
	}

	page := shared.ParsePagination(r, 100, 500)
	entries, err := h.Service.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "entries_failed", "failed to list entries", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload timesheet.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.UserID == "" || user.Role == directory.RoleMember {
		payload.UserID = user.UserID
	}

	id, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		h.failValidation(w, r, err)
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload timesheet.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}

	entryID := chi.URLParam(r, "entryID")
	if !h.mayTouch(w, r, user, entryID) {
		return
	}
	if payload.UserID == "" || user.Role == directory.RoleMember {
		payload.UserID = user.UserID
	}

	if err := h.Service.Update(r.Context(), entryID, payload); err != nil {
		h.failValidation(w, r, err)
		return
	}
	api.Success(w, map[string]string{"id": entryID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	entryID := chi.URLParam(r, "entryID")
	if !h.mayTouch(w, r, user, entryID) {
		return
	}

	if err := h.Service.Delete(r.Context(), entryID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "delete_failed", "failed to delete entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": entryID}, middleware.GetRequestID(r.Context()))
}

// mayTouch enforces member confinement on writes to an existing entry:
// members may only modify or delete entries they own. Managers and admins
// pass without the lookup.
func (h *Handler) mayTouch(w http.ResponseWriter, r *http.Request, user middleware.UserContext, entryID string) bool {
	if user.Role != directory.RoleMember {
		return true
	}

	existing, err := h.Service.ByID(r.Context(), entryID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "entry not found", middleware.GetRequestID(r.Context()))
		return false
	}
	if existing.UserID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "entry belongs to another user", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) failValidation(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	code := "invalid_entry"
	if errors.Is(err, timesheet.ErrNegativeHours) {
		code = "negative_hours"
	}
	api.Fail(w, status, code, err.Error(), middleware.GetRequestID(r.Context()))
}
