package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/entities/doctemplate"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type DocTemplateController struct {
	app      application.Application
	basePath string
}

func NewDocTemplateController(app application.Application) *DocTemplateController {
	return &DocTemplateController{
		app:      app,
		basePath: "/doc-templates",
	}
}

func (c *DocTemplateController) Key() string {
	return c.basePath
}

func (c *DocTemplateController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/sort", c.Sort).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/favorite", c.ToggleFavorite).Methods(http.MethodPost)
}

func (c *DocTemplateController) service() *services.DocTemplateService {
	return c.app.Service(services.DocTemplateService{}).(*services.DocTemplateService)
}

type DocTemplateResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Fields     []string `json:"fields"`
	Status     string   `json:"status"`
	IsFavorite bool     `json:"isFavorite"`
	CreatedAt  string   `json:"createdAt"`
}

func toDocTemplateResponse(t doctemplate.DocTemplate) DocTemplateResponse {
	return DocTemplateResponse{
		ID:         t.ID().String(),
		Name:       t.Name(),
		Category:   t.Category(),
		Fields:     t.Fields(),
		Status:     string(t.Status()),
		IsFavorite: t.IsFavorite(),
		CreatedAt:  t.CreatedAt().Format("2006-01-02"),
	}
}

func templateFindParams(r *http.Request) *doctemplate.FindParams {
	q := r.URL.Query()
	params := &doctemplate.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	if category := q.Get("category"); category != "" {
		params.Query.Categories["category"] = category
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

func (c *DocTemplateController) List(w http.ResponseWriter, r *http.Request) {
	templates, err := c.service().List(r.Context(), templateFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]DocTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toDocTemplateResponse(t))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *DocTemplateController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid template id", nil)
		return
	}
	t, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "document template not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toDocTemplateResponse(t))
}

func (c *DocTemplateController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.DocTemplateDTO{}
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
	httpapi.WriteJSON(w, http.StatusCreated, toDocTemplateResponse(created))
}

func (c *DocTemplateController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid template id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.DocTemplateDTO{}
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
		httpapi.WriteError(w, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toDocTemplateResponse(updated))
}

func (c *DocTemplateController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid template id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *DocTemplateController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid template id", nil)
		return
	}
	toggled, err := c.service().ToggleFavorite(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toDocTemplateResponse(toggled))
}

func (c *DocTemplateController) Sort(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	var err error
	if dir := r.URL.Query().Get("direction"); dir != "" {
		err = c.service().SortBy(key, crud.SortDirection(dir))
	} else {
		err = c.service().SortBy(key)
	}
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_SORT", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}
