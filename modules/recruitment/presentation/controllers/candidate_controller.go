package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/aggregates/candidate"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type CandidateController struct {
	app      application.Application
	basePath string
}

func NewCandidateController(app application.Application) *CandidateController {
	return &CandidateController{
		app:      app,
		basePath: "/candidates",
	}
}

func (c *CandidateController) Key() string {
	return c.basePath
}

func (c *CandidateController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Apply).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/move", c.Move).Methods(http.MethodPost)
	router.HandleFunc("/{id}/advance", c.Advance).Methods(http.MethodPost)
	router.HandleFunc("/{id}/reject", c.Reject).Methods(http.MethodPost)
}

func (c *CandidateController) service() *services.CandidateService {
	return c.app.Service(services.CandidateService{}).(*services.CandidateService)
}

type CandidateResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	PostingID string `json:"postingId"`
	Stage     string `json:"stage"`
	CreatedAt string `json:"createdAt"`
}

func toCandidateResponse(cd candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        cd.ID().String(),
		FirstName: cd.FirstName(),
		LastName:  cd.LastName(),
		Email:     cd.Email(),
		PostingID: cd.PostingID().String(),
		Stage:     string(cd.Stage()),
		CreatedAt: cd.CreatedAt().Format("2006-01-02"),
	}
}

func candidateFindParams(r *http.Request) *candidate.FindParams {
	q := r.URL.Query()
	params := &candidate.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	for _, key := range []string{"stage", "posting"} {
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

func (c *CandidateController) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := c.service().List(r.Context(), candidateFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]CandidateResponse, 0, len(candidates))
	for _, cd := range candidates {
		out = append(out, toCandidateResponse(cd))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *CandidateController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid candidate id", nil)
		return
	}
	cd, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "CANDIDATE_NOT_FOUND", "candidate not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toCandidateResponse(cd))
}

func (c *CandidateController) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.CandidateDTO{}
	if err := crud.DecodeValues(r.Form, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		httpapi.WriteValidationErrors(w, errs)
		return
	}
	created, err := c.service().Apply(r.Context(), dto)
	if err != nil {
		if errors.Is(err, jobposting.ErrPostingNotFound) {
			httpapi.WriteError(w, http.StatusConflict, "POSTING_NOT_OPEN", err.Error(), nil)
			return
		}
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toCandidateResponse(created))
}

func (c *CandidateController) Move(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid candidate id", nil)
		return
	}
	target := candidate.Stage(r.URL.Query().Get("stage"))
	if !target.IsValid() {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_STAGE", "unknown pipeline stage", nil)
		return
	}
	moved, err := c.service().MoveTo(r.Context(), id, target)
	if err != nil {
		c.writeMoveError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toCandidateResponse(moved))
}

func (c *CandidateController) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid candidate id", nil)
		return
	}
	moved, err := c.service().Advance(r.Context(), id)
	if err != nil {
		c.writeMoveError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toCandidateResponse(moved))
}

func (c *CandidateController) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid candidate id", nil)
		return
	}
	moved, err := c.service().Reject(r.Context(), id)
	if err != nil {
		c.writeMoveError(w, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toCandidateResponse(moved))
}

func (c *CandidateController) writeMoveError(w http.ResponseWriter, err error) {
	if errors.Is(err, candidate.ErrIllegalTransition) {
		httpapi.WriteError(w, http.StatusConflict, "ILLEGAL_TRANSITION", err.Error(), nil)
		return
	}
	if errors.Is(err, candidate.ErrCandidateNotFound) {
		httpapi.WriteError(w, http.StatusNotFound, "CANDIDATE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
}

func (c *CandidateController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid candidate id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "CANDIDATE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}
