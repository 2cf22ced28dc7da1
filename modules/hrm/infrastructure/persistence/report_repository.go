package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/report"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemReportRepository struct {
	list *crud.ListModel[report.Report]
}

func NewInmemReportRepository() *InmemReportRepository {
	return &InmemReportRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				report.Report.Title,
			),
			crud.WithCategory("status", func(r report.Report) string { return string(r.Status()) }),
			crud.WithStringSortKey("title", report.Report.Title),
			crud.WithDateSortKey("start", report.Report.Start),
			crud.WithDateSortKey("createdAt", report.Report.CreatedAt),
		),
	}
}

func (r *InmemReportRepository) List(_ context.Context, params *report.FindParams) ([]report.Report, error) {
	if params == nil {
		return r.list.All(), nil
	}
	reports := r.list.Filtered(params.Query)
	return paginate(reports, params.Offset, params.Limit), nil
}

func (r *InmemReportRepository) GetByID(_ context.Context, id uuid.UUID) (report.Report, error) {
	rep, ok := r.list.Get(id)
	if !ok {
		return report.Report{}, report.ErrReportNotFound
	}
	return rep, nil
}

func (r *InmemReportRepository) Save(_ context.Context, rep report.Report) (report.Report, error) {
	return r.list.Upsert(rep), nil
}

func (r *InmemReportRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return report.ErrReportNotFound
	}
	return nil
}

func (r *InmemReportRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}
