package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/aggregates/contract"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type ContractController struct {
	app      application.Application
	basePath string
}

func NewContractController(app application.Application) *ContractController {
	return &ContractController{
		app:      app,
		basePath: "/contracts",
	}
}

func (c *ContractController) Key() string {
	return c.basePath
}

func (c *ContractController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/activate", c.Activate).Methods(http.MethodPost)
	router.HandleFunc("/{id}/terminate", c.Terminate).Methods(http.MethodPost)
}

func (c *ContractController) service() *services.ContractService {
	return c.app.Service(services.ContractService{}).(*services.ContractService)
}

type ContractResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	Kind         string `json:"kind"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SalaryNote   string `json:"salaryNote,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func toContractResponse(entity contract.Contract) ContractResponse {
	return ContractResponse{
		ID:           entity.ID().String(),
		EmployeeName: entity.EmployeeName(),
		Kind:         entity.Kind(),
		StartDate:    entity.Period().Start.Format("2006-01-02"),
		EndDate:      entity.Period().End.Format("2006-01-02"),
		SalaryNote:   entity.SalaryNote(),
		Status:       string(entity.Status()),
		CreatedAt:    entity.CreatedAt().Format("2006-01-02"),
	}
}

func contractFindParams(r *http.Request) *contract.FindParams {
	q := r.URL.Query()
	params := &contract.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	if kind := q.Get("kind"); kind != "" {
		params.Query.Categories["kind"] = kind
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

func (c *ContractController) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := c.service().List(r.Context(), contractFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]ContractResponse, 0, len(contracts))
	for _, entity := range contracts {
		out = append(out, toContractResponse(entity))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *ContractController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid contract id", nil)
		return
	}
	entity, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "CONTRACT_NOT_FOUND", "contract not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toContractResponse(entity))
}

func (c *ContractController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.ContractDTO{}
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
		httpapi.WriteError(w, http.StatusUnprocessableEntity, "BAD_PERIOD", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toContractResponse(created))
}

func (c *ContractController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid contract id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.ContractDTO{}
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
		httpapi.WriteError(w, http.StatusNotFound, "CONTRACT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toContractResponse(updated))
}

func (c *ContractController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid contract id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "CONTRACT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *ContractController) Activate(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.service().Activate)
}

func (c *ContractController) Terminate(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.service().Terminate)
}

func (c *ContractController) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID) (contract.Contract, error),
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid contract id", nil)
		return
	}
	updated, err := apply(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "CONTRACT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toContractResponse(updated))
}
