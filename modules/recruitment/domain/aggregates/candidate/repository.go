package candidate

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrCandidateNotFound = serrors.NewError("CANDIDATE_NOT_FOUND", "candidate not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	Save(ctx context.Context, c Candidate) (Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
