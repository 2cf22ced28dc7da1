package interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrInterviewNotFound = serrors.NewError("INTERVIEW_NOT_FOUND", "interview not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Interview, error)
	GetByID(ctx context.Context, id uuid.UUID) (Interview, error)
	Save(ctx context.Context, i Interview) (Interview, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
