package event

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrEventNotFound = serrors.NewError("EVENT_NOT_FOUND", "calendar event not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (Event, error)
	Save(ctx context.Context, e Event) (Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
