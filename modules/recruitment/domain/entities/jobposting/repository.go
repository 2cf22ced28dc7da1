package jobposting

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrPostingNotFound = serrors.NewError("POSTING_NOT_FOUND", "job posting not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (Posting, error)
	Save(ctx context.Context, p Posting) (Posting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
