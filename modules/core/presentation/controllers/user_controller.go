package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type UserController struct {
	app      application.Application
	basePath string
}

func NewUserController(app application.Application) *UserController {
	return &UserController{
		app:      app,
		basePath: "/users",
	}
}

func (c *UserController) Key() string {
	return c.basePath
}

func (c *UserController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/sort", c.Sort).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/toggle", c.Toggle).Methods(http.MethodPost)
}

func (c *UserController) service() *services.UserService {
	return c.app.Service(services.UserService{}).(*services.UserService)
}

// UserResponse is the JSON surface of a user row.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Language  string `json:"language"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		Language:  string(u.Language()),
		Role:      u.Role(),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt().Format("2006-01-02"),
	}
}

func userFindParams(r *http.Request) *user.FindParams {
	q := r.URL.Query()
	params := &user.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	if status := q.Get("status"); status != "" {
		params.Query.Categories["status"] = status
	}
	if role := q.Get("role"); role != "" {
		params.Query.Categories["role"] = role
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		params.Offset = offset
	}
	return params
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.service().List(r.Context(), userFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid user id", nil)
		return
	}
	u, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "USER_NOT_FOUND", "user not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.CreateUserDTO{}
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
		status := http.StatusInternalServerError
		code := "INTERNAL"
		if errors.Is(err, user.ErrEmailTaken) {
			status = http.StatusConflict
			code = "EMAIL_TAKEN"
		}
		httpapi.WriteError(w, status, code, err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toUserResponse(created))
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid user id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.UpdateUserDTO{}
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
		httpapi.WriteError(w, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid user id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *UserController) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid user id", nil)
		return
	}
	toggled, err := c.service().ToggleActive(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toUserResponse(toggled))
}

func (c *UserController) Sort(w http.ResponseWriter, r *http.Request) {
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
