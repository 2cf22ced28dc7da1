package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/signature"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemSignatureRepository struct {
	list *crud.ListModel[signature.Record]
}

func NewInmemSignatureRepository() *InmemSignatureRepository {
	return &InmemSignatureRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				signature.Record.Document,
				signature.Record.Signer,
			),
			crud.WithCategory("status", func(r signature.Record) string { return string(r.Status()) }),
			crud.WithStringSortKey("document", signature.Record.Document),
			crud.WithDateSortKey("createdAt", signature.Record.CreatedAt),
		),
	}
}

func (r *InmemSignatureRepository) List(_ context.Context, params *signature.FindParams) ([]signature.Record, error) {
	if params == nil {
		return r.list.All(), nil
	}
	records := r.list.Filtered(params.Query)
	return paginate(records, params.Offset, params.Limit), nil
}

func (r *InmemSignatureRepository) GetByID(_ context.Context, id uuid.UUID) (signature.Record, error) {
	rec, ok := r.list.Get(id)
	if !ok {
		return signature.Record{}, signature.ErrRecordNotFound
	}
	return rec, nil
}

func (r *InmemSignatureRepository) Save(_ context.Context, rec signature.Record) (signature.Record, error) {
	return r.list.Upsert(rec), nil
}

func (r *InmemSignatureRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return signature.ErrRecordNotFound
	}
	return nil
}

func (r *InmemSignatureRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}
