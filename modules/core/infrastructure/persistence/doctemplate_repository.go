package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/entities/doctemplate"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemDocTemplateRepository struct {
	list *crud.ListModel[doctemplate.DocTemplate]
}

func NewInmemDocTemplateRepository() *InmemDocTemplateRepository {
	return &InmemDocTemplateRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				doctemplate.DocTemplate.Name,
			),
			crud.WithCategory("category", doctemplate.DocTemplate.Category),
			crud.WithCategory("status", func(t doctemplate.DocTemplate) string { return string(t.Status()) }),
			crud.WithStringSortKey("name", doctemplate.DocTemplate.Name),
			crud.WithDateSortKey("createdAt", doctemplate.DocTemplate.CreatedAt),
			crud.WithToggle("isFavorite", doctemplate.DocTemplate.ToggleFavorite),
		),
	}
}

func (r *InmemDocTemplateRepository) List(_ context.Context, params *doctemplate.FindParams) ([]doctemplate.DocTemplate, error) {
	if params == nil {
		return r.list.All(), nil
	}
	templates := r.list.Filtered(params.Query)
	return paginate(templates, params.Offset, params.Limit), nil
}

func (r *InmemDocTemplateRepository) GetByID(_ context.Context, id uuid.UUID) (doctemplate.DocTemplate, error) {
	t, ok := r.list.Get(id)
	if !ok {
		return doctemplate.DocTemplate{}, doctemplate.ErrTemplateNotFound
	}
	return t, nil
}

func (r *InmemDocTemplateRepository) Save(_ context.Context, t doctemplate.DocTemplate) (doctemplate.DocTemplate, error) {
	return r.list.Upsert(t), nil
}

func (r *InmemDocTemplateRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return doctemplate.ErrTemplateNotFound
	}
	return nil
}

func (r *InmemDocTemplateRepository) ToggleFavorite(_ context.Context, id uuid.UUID) (doctemplate.DocTemplate, error) {
	t, err := r.list.Toggle(id, "isFavorite")
	if err != nil {
		return doctemplate.DocTemplate{}, doctemplate.ErrTemplateNotFound
	}
	return t, nil
}

func (r *InmemDocTemplateRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}
