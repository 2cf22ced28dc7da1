package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/domain/entities/event"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/calendar"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
)

type EventController struct {
	app      application.Application
	basePath string
}

func NewEventController(app application.Application) *EventController {
	return &EventController{
		app:      app,
		basePath: "/events",
	}
}

func (c *EventController) Key() string {
	return c.basePath
}

func (c *EventController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.ProvideLocalizer())

	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/month", c.Month).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/reschedule", c.Reschedule).Methods(http.MethodPost)
	router.HandleFunc("/{id}/confirm", c.Confirm).Methods(http.MethodPost)
	router.HandleFunc("/{id}/cancel", c.Cancel).Methods(http.MethodPost)
}

func (c *EventController) service() *services.EventService {
	return c.app.Service(services.EventService{}).(*services.EventService)
}

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Source          string `json:"source"`
	SyncStatus      string `json:"syncStatus,omitempty"`
	Status          string `json:"status"`
}

func toEventResponse(e event.Event) EventResponse {
	return EventResponse{
		ID:              e.ID().String(),
		Title:           e.Title(),
		Date:            e.Day(),
		StartTime:       e.StartTime(),
		EndTime:         e.EndTime(),
		DurationMinutes: e.DurationMinutes(),
		Source:          string(e.Source()),
		SyncStatus:      string(e.SyncStatus()),
		Status:          string(e.Status()),
	}
}

func eventFindParams(r *http.Request) *event.FindParams {
	q := r.URL.Query()
	params := &event.FindParams{
		Query: crud.Query{
			Search:     q.Get("q"),
			Categories: map[string]string{},
		},
	}
	for _, key := range []string{"status", "source", "day"} {
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

func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.service().List(r.Context(), eventFindParams(r))
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid event id", nil)
		return
	}
	e, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "EVENT_NOT_FOUND", "calendar event not found", nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toEventResponse(e))
}

func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	dto := &dtos.EventDTO{}
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
		httpapi.WriteError(w, http.StatusUnprocessableEntity, "BAD_TIME_RANGE", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toEventResponse(created))
}

// MonthCellResponse mirrors the month grid: leading padding cells carry an
// empty day string.
type MonthCellResponse struct {
	Day    string          `json:"day"`
	Events []EventResponse `json:"events"`
}

func (c *EventController) Month(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()
	if raw := r.URL.Query().Get("anchor"); raw != "" {
		parsed, err := time.Parse(calendar.DateLayout, raw)
		if err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, "BAD_ANCHOR", "invalid anchor date", nil)
			return
		}
		anchor = parsed
	}
	cells, err := c.service().MonthGrid(r.Context(), anchor)
	if err != nil {
		httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	out := make([]MonthCellResponse, 0, len(cells))
	for _, cell := range cells {
		resp := MonthCellResponse{Events: []EventResponse{}}
		if cell.Day != nil {
			resp.Day = cell.Day.Format(calendar.DateLayout)
		}
		for _, e := range cell.Events {
			resp.Events = append(resp.Events, toEventResponse(e))
		}
		out = append(out, resp)
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (c *EventController) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid event id", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_FORM", "malformed form payload", nil)
		return
	}
	date, err := time.Parse(calendar.DateLayout, r.Form.Get("date"))
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_DATE", "invalid date", nil)
		return
	}
	moved, err := c.service().Reschedule(r.Context(), id, date, r.Form.Get("startTime"), r.Form.Get("endTime"))
	if err != nil {
		if err == event.ErrBadTimeRange {
			httpapi.WriteError(w, http.StatusUnprocessableEntity, "BAD_TIME_RANGE", err.Error(), nil)
			return
		}
		httpapi.WriteError(w, http.StatusNotFound, "EVENT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toEventResponse(moved))
}

func (c *EventController) Confirm(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, event.Event.Confirm)
}

func (c *EventController) Cancel(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, event.Event.Cancel)
}

func (c *EventController) transition(w http.ResponseWriter, r *http.Request, apply func(event.Event) event.Event) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid event id", nil)
		return
	}
	updated, err := c.service().Transition(r.Context(), id, apply)
	if err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "EVENT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toEventResponse(updated))
}

func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "BAD_ID", "invalid event id", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		httpapi.WriteError(w, http.StatusNotFound, "EVENT_NOT_FOUND", err.Error(), nil)
		return
	}
	httpapi.WriteJSON(w, http.StatusNoContent, nil)
}
