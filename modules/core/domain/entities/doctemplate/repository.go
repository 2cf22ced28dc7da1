package doctemplate

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var ErrTemplateNotFound = serrors.NewError("TEMPLATE_NOT_FOUND", "document template not found", "")

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]DocTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (DocTemplate, error)
	Save(ctx context.Context, t DocTemplate) (DocTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, id uuid.UUID) (DocTemplate, error)
	SortBy(key string, direction ...crud.SortDirection) error
}
