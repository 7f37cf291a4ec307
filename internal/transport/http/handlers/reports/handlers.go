package reportshandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"horas/internal/domain/directory"
	"horas/internal/domain/metrics"
	"horas/internal/domain/reports"
	platformmetrics "horas/internal/platform/metrics"
	"horas/internal/transport/http/api"
	"horas/internal/transport/http/middleware"
	"horas/internal/transport/http/shared"
)

type Handler struct {
	Service   *reports.Service
	Collector *platformmetrics.Collector
}

func NewHandler(service *reports.Service, collector *platformmetrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	managers := middleware.RequireRole(directory.RoleAdmin, directory.RoleManager)

	r.Route("/reports", func(r chi.Router) {
		r.With(managers).Get("/projects", h.handlePortfolio)
		r.With(managers).Get("/projects/export", h.handlePortfolioExcel)
		r.With(managers).Get("/projects/{projectID}", h.handleProject)
		r.With(managers).Get("/projects/{projectID}/pdf", h.handleProjectPDF)
		r.With(managers).Post("/projects/{projectID}/email", h.handleProjectEmail)
		r.With(managers).Get("/occupancy", h.handleOccupancy)
		r.With(managers).Get("/occupancy/export", h.handleOccupancyExcel)
	})
}

func (h *Handler) handleProject(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOf"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid asOf date", middleware.GetRequestID(r.Context()))
		return
	}

	result, diags, err := h.Service.ProjectPerformance(r.Context(), chi.URLParam(r, "projectID"), asOf)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "report_failed", "failed to compute project report", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessWithDiagnostics(w, result, diags, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOf"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid asOf date", middleware.GetRequestID(r.Context()))
		return
	}

	results, diags, err := h.Service.PortfolioPerformance(r.Context(), r.URL.Query().Get("status"), asOf)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to compute portfolio report", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessWithDiagnostics(w, results, diags, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOccupancy(w http.ResponseWriter, r *http.Request) {
	period, groupBy, ok := h.parseOccupancyParams(w, r)
	if !ok {
		return
	}

	rows, diags, err := h.Service.Occupancy(r.Context(), period, groupBy)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to compute occupancy report", middleware.GetRequestID(r.Context()))
		return
	}
	api.SuccessWithDiagnostics(w, rows, diags, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProjectPDF(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOf"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid asOf date", middleware.GetRequestID(r.Context()))
		return
	}

	projectID := chi.URLParam(r, "projectID")
	pdfBytes, err := h.Service.ProjectReportPDF(r.Context(), projectID, asOf)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render project report", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Collector != nil {
		h.Collector.RecordReport()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=project-%s.pdf", projectID))
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) handlePortfolioExcel(w http.ResponseWriter, r *http.Request) {
	asOf, err := shared.ParseDate(r.URL.Query().Get("asOf"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid asOf date", middleware.GetRequestID(r.Context()))
		return
	}

	workbook, err := h.Service.PerformanceWorkbook(r.Context(), r.URL.Query().Get("status"), asOf)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render portfolio workbook", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Collector != nil {
		h.Collector.RecordReport()
	}

	writeWorkbook(w, "projects.xlsx", workbook)
}

func (h *Handler) handleOccupancyExcel(w http.ResponseWriter, r *http.Request) {
	period, groupBy, ok := h.parseOccupancyParams(w, r)
	if !ok {
		return
	}

	workbook, err := h.Service.OccupancyWorkbook(r.Context(), period, groupBy)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render occupancy workbook", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Collector != nil {
		h.Collector.RecordReport()
	}

	writeWorkbook(w, "occupancy.xlsx", workbook)
}

func (h *Handler) handleProjectEmail(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		To   string `json:"to"`
		AsOf string `json:"asOf"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.To == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "recipient is required", middleware.GetRequestID(r.Context()))
		return
	}
	asOf, err := shared.ParseDate(payload.AsOf)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid asOf date", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.EmailProjectReport(r.Context(), chi.URLParam(r, "projectID"), payload.To, asOf); err != nil {
		api.Fail(w, http.StatusInternalServerError, "email_failed", "failed to send project report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "sent"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) parseOccupancyParams(w http.ResponseWriter, r *http.Request) (metrics.Period, metrics.GroupBy, bool) {
	from, to, err := shared.ParsePeriod(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil || to.Before(from) {
		api.Fail(w, http.StatusBadRequest, "bad_dates", "invalid from/to dates", middleware.GetRequestID(r.Context()))
		return metrics.Period{}, "", false
	}

	groupBy := metrics.GroupByTeam
	switch r.URL.Query().Get("groupBy") {
	case "", string(metrics.GroupByTeam):
	case string(metrics.GroupByUser):
		groupBy = metrics.GroupByUser
	default:
		api.Fail(w, http.StatusBadRequest, "bad_group", "groupBy must be team or user", middleware.GetRequestID(r.Context()))
		return metrics.Period{}, "", false
	}

	return metrics.Period{Start: from, End: to}, groupBy, true
}

func writeWorkbook(w http.ResponseWriter, filename string, workbook []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write(workbook)
}
