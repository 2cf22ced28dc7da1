package signature

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrRecordNotFound = serrors.NewError("SIGNATURE_NOT_FOUND", "signature record not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	Save(ctx context.Context, r Record) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
