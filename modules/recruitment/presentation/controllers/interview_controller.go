package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/interview"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type InterviewController struct {
	app      application.Application
	basePath string
}

func NewInterviewController(app application.Application) *InterviewController {
	return &InterviewController{
		app:      app,
		basePath: "/interviews",
	}
}

func (c *InterviewController) Key() string {
	return c.basePath
}

func (c *InterviewController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Schedule).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/reschedule", c.Reschedule).Methods(http.MethodPost)
	router.HandleFunc("/{id}/confirm", c.Confirm).Methods(http.MethodPost)
	router.HandleFunc("/{id}/complete", c.Complete).Methods(http.MethodPost)
	router.HandleFunc("/{id}/cancel", c.Cancel).Methods(http.MethodPost)
}

func (c *InterviewController) service() *services.InterviewService {
	return c.app.Service(services.InterviewService{}).(*services.InterviewService)
}

type InterviewResponse struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
	Interviewer string `json:"interviewer"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"durationMinutes"`
	Status      string `json:"status"`
}

func toInterviewResponse(i interview.Interview) InterviewResponse {
	return InterviewResponse{
		ID:          i.ID().String(),
		CandidateID: i.CandidateID().String(),
		Interviewer: i.Interviewer(),
		Date:        i.Date().Format("2006-01-02"),
		StartTime:   i.StartTime(),
		EndTime:     i.EndTime(),
		Duration:    i.DurationMinutes(),
		Status:      string(i.Status()),
	}
}

func interviewFindParams(r *http.Request) *interview.FindParams {
	q := r.URL.Query()
	params := &interview.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	for _, key := range []string{"status", "day"} {
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

func (c *InterviewController) List(w http.ResponseWriter, r *http.Request) {
	interviews, err := c.service().List(r.Context(), interviewFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]InterviewResponse, 0, len(interviews))
	for _, i := range interviews {
		out = append(out, toInterviewResponse(i))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *InterviewController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid interview id", nil)
		return
	}
	i, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "INTERVIEW_NOT_FOUND", "interview not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toInterviewResponse(i))
}

func (c *InterviewController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid interview id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "INTERVIEW_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *InterviewController) Schedule(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.InterviewDTO{}
	if err := crud.DecodeValues(r.Form, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		httpapi.WriteValidationErrors(w, errs)
		return
	}
	created, err := c.service().Schedule(r.Context(), dto)
	if err != nil {
		httpapi.WriteError(w, http.StatusConflict, "SCHEDULE_REFUSED", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toInterviewResponse(created))
}

func (c *InterviewController) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid interview id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	date, err := time.Parse("2006-01-02", r.Form.Get("date"))
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_DATE", "date must be YYYY-MM-DD", nil)
		return
	}
	moved, err := c.service().Reschedule(r.Context(), id, date, r.Form.Get("startTime"), r.Form.Get("endTime"))
	if err != nil {
		httpapi.WriteError(w, http.StatusConflict, "RESCHEDULE_REFUSED", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toInterviewResponse(moved))
}

func (c *InterviewController) Confirm(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, interview.Interview.Confirm)
}

func (c *InterviewController) Complete(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, interview.Interview.Complete)
}

func (c *InterviewController) Cancel(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, interview.Interview.Cancel)
}

func (c *InterviewController) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(interview.Interview) interview.Interview,
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid interview id", nil)
		return
	}
	updated, err := c.service().Transition(r.Context(), id, apply)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "INTERVIEW_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toInterviewResponse(updated))
}
