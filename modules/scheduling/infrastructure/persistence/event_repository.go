package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/domain/entities/event"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemEventRepository struct {
	list *crud.ListModel[event.Event]
}

func NewInmemEventRepository() *InmemEventRepository {
	return &InmemEventRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				event.Event.Title,
			),
			crud.WithCategory("status", func(e event.Event) string { return string(e.Status()) }),
			crud.WithCategory("source", func(e event.Event) string { return string(e.Source()) }),
			crud.WithCategory("day", event.Event.Day),
			crud.WithStringSortKey("title", event.Event.Title),
			crud.WithDateSortKey("date", event.Event.Date),
			crud.WithDateSortKey("createdAt", event.Event.CreatedAt),
			crud.WithNumericSortKey("duration", func(e event.Event) float64 { return float64(e.DurationMinutes()) }),
		),
	}
}

func (r *InmemEventRepository) List(_ context.Context, params *event.FindParams) ([]event.Event, error) {
	if params == nil {
		return r.list.All(), nil
	}
	events := r.list.Filtered(params.Query)
	return paginate(events, params.Offset, params.Limit), nil
}

func (r *InmemEventRepository) GetByID(_ context.Context, id uuid.UUID) (event.Event, error) {
	e, ok := r.list.Get(id)
	if !ok {
		return event.Event{}, event.ErrEventNotFound
	}
	return e, nil
}

func (r *InmemEventRepository) Save(_ context.Context, e event.Event) (event.Event, error) {
	return r.list.Upsert(e), nil
}

func (r *InmemEventRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *InmemEventRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
