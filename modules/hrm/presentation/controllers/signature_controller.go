package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/signature"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type SignatureController struct {
	app      application.Application
	basePath string
}

func NewSignatureController(app application.Application) *SignatureController {
	return &SignatureController{
		app:      app,
		basePath: "/signatures",
	}
}

func (c *SignatureController) Key() string {
	return c.basePath
}

func (c *SignatureController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Request).Methods(http.MethodPost)
	router.HandleFunc("/{id}/sign", c.Sign).Methods(http.MethodPost)
	router.HandleFunc("/{id}/decline", c.Decline).Methods(http.MethodPost)
}

func (c *SignatureController) service() *services.SignatureService {
	return c.app.Service(services.SignatureService{}).(*services.SignatureService)
}

type SignatureResponse struct {
	ID        string `json:"id"`
	Document  string `json:"document"`
	Signer    string `json:"signer"`
	Status    string `json:"status"`
	SignedAt  string `json:"signedAt,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toSignatureResponse(rec signature.Record) SignatureResponse {
	out := SignatureResponse{
		ID:        rec.ID().String(),
		Document:  rec.Document(),
		Signer:    rec.Signer(),
		Status:    string(rec.Status()),
		CreatedAt: rec.CreatedAt().Format("2006-01-02"),
	}
	if !rec.SignedAt().IsZero() {
		out.SignedAt = rec.SignedAt().Format("2006-01-02 15:04")
	}
	return out
}

func (c *SignatureController) List(w http.ResponseWriter, r *http.Request) {
	params := &signature.FindParams{
		Query: crud.Query{
			Search:     r.URL.Query().Get("q"),
			Categories: map[string]string{},
		},
	}
	if status := r.URL.Query().Get("status"); status != "" {
		params.Query.Categories["status"] = status
	}
	records, err := c.service().List(r.Context(), params)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]SignatureResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toSignatureResponse(rec))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *SignatureController) Request(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.SignatureRequestDTO{}
	if err := crud.DecodeValues(r.Form, dto); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", err.Error(), nil)
		return
	}
	if errs, ok := dto.Ok(r.Context()); !ok {
		httpapi.WriteValidationErrors(w, errs)
		return
	}
	created, err := c.service().Request(r.Context(), dto)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toSignatureResponse(created))
}

func (c *SignatureController) Sign(w http.ResponseWriter, r *http.Request) {
	c.resolve(w, r, c.service().Sign)
}

func (c *SignatureController) Decline(w http.ResponseWriter, r *http.Request) {
	c.resolve(w, r, c.service().Decline)
}

func (c *SignatureController) resolve(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID) (signature.Record, error),
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid signature id", nil)
		return
	}
	resolved, err := apply(r.Context(), id)
	if err != nil {
		if err == signature.ErrAlreadyResolved {
			httpapi.WriteError(w, http.StatusConflict, "SIGNATURE_RESOLVED", err.Error(), nil)
			return
		}
		httpapi.WriteError(w, http.StatusNotFound, "SIGNATURE_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toSignatureResponse(resolved))
}
