package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/aggregates/contract"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemContractRepository struct {
	list *crud.ListModel[contract.Contract]
}

func NewInmemContractRepository() *InmemContractRepository {
	return &InmemContractRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				contract.Contract.EmployeeName,
			),
			crud.WithCategory("kind", contract.Contract.Kind),
			crud.WithCategory("status", func(c contract.Contract) string { return string(c.Status()) }),
			crud.WithStringSortKey("employeeName", contract.Contract.EmployeeName),
			crud.WithDateSortKey("startDate", func(c contract.Contract) time.Time { return c.Period().Start }),
			crud.WithDateSortKey("createdAt", contract.Contract.CreatedAt),
		),
	}
}

func (r *InmemContractRepository) List(_ context.Context, params *contract.FindParams) ([]contract.Contract, error) {
	if params == nil {
		return r.list.All(), nil
	}
	contracts := r.list.Filtered(params.Query)
	return paginate(contracts, params.Offset, params.Limit), nil
}

func (r *InmemContractRepository) GetByID(_ context.Context, id uuid.UUID) (contract.Contract, error) {
	c, ok := r.list.Get(id)
	if !ok {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	return c, nil
}

func (r *InmemContractRepository) Save(_ context.Context, c contract.Contract) (contract.Contract, error) {
	return r.list.Upsert(c), nil
}

func (r *InmemContractRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return contract.ErrContractNotFound
	}
	return nil
}

func (r *InmemContractRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}
