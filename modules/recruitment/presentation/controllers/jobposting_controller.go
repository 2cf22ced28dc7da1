package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type JobPostingController struct {
	app      application.Application
	basePath string
}

func NewJobPostingController(app application.Application) *JobPostingController {
	return &JobPostingController{
		app:      app,
		basePath: "/job-postings",
	}
}

func (c *JobPostingController) Key() string {
	return c.basePath
}

func (c *JobPostingController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/publish", c.Publish).Methods(http.MethodPost)
	router.HandleFunc("/{id}/close", c.Close).Methods(http.MethodPost)
}

func (c *JobPostingController) service() *services.JobPostingService {
	return c.app.Service(services.JobPostingService{}).(*services.JobPostingService)
}

type JobPostingResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

func toJobPostingResponse(p jobposting.Posting) JobPostingResponse {
	return JobPostingResponse{
		ID:         p.ID().String(),
		Title:      p.Title(),
		Department: p.Department(),
		Location:   p.Location(),
		Status:     string(p.Status()),
		CreatedAt:  p.CreatedAt().Format("2006-01-02"),
	}
}

func postingFindParams(r *http.Request) *jobposting.FindParams {
	q := r.URL.Query()
	params := &jobposting.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	for _, key := range []string{"department", "location", "status"} {
		if value := q.Get(key); value != "" {
			params.Query.Categories[key] = value
		}
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		params.Offset = offset
	}
	return params
}

func (c *JobPostingController) List(w http.ResponseWriter, r *http.Request) {
	postings, err := c.service().List(r.Context(), postingFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]JobPostingResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, toJobPostingResponse(p))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *JobPostingController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid posting id", nil)
		return
	}
	p, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "POSTING_NOT_FOUND", "job posting not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toJobPostingResponse(p))
}

func (c *JobPostingController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.JobPostingDTO{}
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
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toJobPostingResponse(created))
}

func (c *JobPostingController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid posting id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.JobPostingDTO{}
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
		httpapi.WriteError(w, http.StatusNotFound, "POSTING_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toJobPostingResponse(updated))
}

func (c *JobPostingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid posting id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "POSTING_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *JobPostingController) Publish(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.service().Publish)
}

func (c *JobPostingController) Close(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.service().Close)
}

func (c *JobPostingController) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID) (jobposting.Posting, error),
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid posting id", nil)
		return
	}
	updated, err := apply(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "POSTING_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toJobPostingResponse(updated))
}
