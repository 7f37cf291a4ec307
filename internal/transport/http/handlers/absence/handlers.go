package absencehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"horas/internal/domain/absence"
	"horas/internal/domain/directory"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
	"horas/internal/transport/http/shared"
)

type Handler struct {
	Service *absence.Service
}

func NewHandler(service *absence.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	staff := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager, directory.RoleMember)
	managers := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager)

	r.Route("/absences", func(r chi.Router) {
		r.With(staff).Get("/", h.handleList)
		r.With(staff).Post("/", h.handleCreate)
		r.With(managers).Delete("/{absenceID}", h.handleDelete)
	})
	r.Route("/holidays", func(r chi.Router) {
		r.With(staff).Get("/", h.handleListHolidays)
		r.With(managers).Post("/", h.handleCreateHoliday)
		r.With(managers).Delete("/{holidayID}", h.handleDeleteHoliday)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	from, to, err := shared.ParsePeriod(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid from/to dates", middleware.GetRequestID(r.Context()))
		return
	}

	filter := absence.Filter{
		UserID: r.URL.Query().Get("userId"),
		From:   from,
		To:     to,
	}
	// Members only see their own absences.
	if user.Role == directory.RoleMember {
		filter.UserID = user.UserID
	}
	absences, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "absences_failed", "failed to list absences", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, absences, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload struct {
		UserID      string `json:"userId"`
		Type        string `json:"type"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid start date", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid end date", middleware.GetRequestID(r.Context()))
		return
	}

	record := absence.Absence{
		UserID:      payload.UserID,
		Type:        payload.Type,
		StartDate:   start,
		EndDate:     end,
		Description: payload.Description,
	}
	if record.UserID == "" || user.Role == directory.RoleMember {
		record.UserID = user.UserID
	}

	id, err := h.Service.Create(r.Context(), record)
	if err != nil {
		code := "invalid_absence"
		if errors.Is(err, absence.ErrInvalidDateRange) {
			code = "invalid_date_range"
		}
		api.Fail(w, http.StatusBadRequest, code, err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	absenceID := chi.URLParam(r, "absenceID")
	if err := h.Service.Delete(r.Context(), absenceID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "delete_failed", "failed to delete absence", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": absenceID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Service.Holidays(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holidays_failed", "failed to list holidays", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, holidays, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	day, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid holiday date", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.CreateHoliday(r.Context(), day, payload.Name)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "create_holiday_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "holidayID")
	if err := h.Service.DeleteHoliday(r.Context(), holidayID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "delete_failed", "failed to delete holiday", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": holidayID}, middleware.GetRequestID(r.Context()))
}
