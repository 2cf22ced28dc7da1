package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/report"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type ReportController struct {
	app      application.Application
	basePath string
}

func NewReportController(app application.Application) *ReportController {
	return &ReportController{
		app:      app,
		basePath: "/reports",
	}
}

func (c *ReportController) Key() string {
	return c.basePath
}

func (c *ReportController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *ReportController) service() *services.ReportService {
	return c.app.Service(services.ReportService{}).(*services.ReportService)
}

func (c *ReportController) exporter() *services.ReportExportService {
	return c.app.Service(services.ReportExportService{}).(*services.ReportExportService)
}

type ReportSectionResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReportResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	StartDate string                  `json:"startDate"`
	EndDate   string                  `json:"endDate"`
	Sections  []ReportSectionResponse `json:"sections"`
	Status    string                  `json:"status"`
	CreatedAt string                  `json:"createdAt"`
}

func toReportResponse(entity report.Report) ReportResponse {
	sections := make([]ReportSectionResponse, 0, len(entity.Sections()))
	for _, s := range entity.Sections() {
		sections = append(sections, ReportSectionResponse{Title: s.Title, Content: s.Content})
	}
	return ReportResponse{
		ID:        entity.ID().String(),
		Title:     entity.Title(),
		StartDate: entity.Start().Format("2006-01-02"),
		EndDate:   entity.End().Format("2006-01-02"),
		Sections:  sections,
		Status:    string(entity.Status()),
		CreatedAt: entity.CreatedAt().Format("2006-01-02"),
	}
}

func reportFindParams(r *http.Request) *report.FindParams {
	q := r.URL.Query()
	params := &report.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	if status := q.Get("status"); status != "" {
		params.Query.Categories["status"] = status
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		params.Offset = offset
	}
	return params
}

func (c *ReportController) List(w http.ResponseWriter, r *http.Request) {
	reports, err := c.service().List(r.Context(), reportFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]ReportResponse, 0, len(reports))
	for _, entity := range reports {
		out = append(out, toReportResponse(entity))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *ReportController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid report id", nil)
		return
	}
	entity, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "REPORT_NOT_FOUND", "report not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toReportResponse(entity))
}

func (c *ReportController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.ReportDTO{}
	if err := crud.DecodeValues(r.Form, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		httpapi.WriteValidationErrors(w, errs)
		return
	}
	created, err := c.service().Create(r.Context(), dto)
	if err != nil {
		httpapi.WriteError(w, http.StatusUnprocessableEntity, "BAD_RANGE", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toReportResponse(created))
}

func (c *ReportController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid report id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.ReportDTO{}
	if err := crud.DecodeValues(r.Form, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		httpapi.WriteValidationErrors(w, errs)
		return
	}
	updated, err := c.service().Update(r.Context(), id, dto)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "REPORT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toReportResponse(updated))
}

func (c *ReportController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid report id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "REPORT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *ReportController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.exporter().Export(r.Context(), reportFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "EXPORT_FAILED", err.Error(), nil)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="reports.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		c.app.Logger().WithError(err).Error("streaming report export")
	}
}
