package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrContractNotFound = serrors.NewError("CONTRACT_NOT_FOUND", "contract not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (Contract, error)
	Save(ctx context.Context, c Contract) (Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
