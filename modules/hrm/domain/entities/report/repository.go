package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrReportNotFound = serrors.NewError("REPORT_NOT_FOUND", "report not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (Report, error)
	Save(ctx context.Context, r Report) (Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SortBy(key string, direction ...crud.SortDirection) error
}
