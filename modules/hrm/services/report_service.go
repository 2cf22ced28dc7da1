package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/report"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
)

type ReportService struct {
	repo      report.Repository
	publisher eventbus.EventBus
}

func NewReportService(repo report.Repository, publisher eventbus.EventBus) *ReportService {
	return &ReportService{repo: repo, publisher: publisher}
}

func (s *ReportService) List(ctx context.Context, params *report.FindParams) ([]report.Report, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *ReportService) GetByID(ctx context.Context, id uuid.UUID) (report.Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReportService) Create(ctx context.Context, dto *dtos.ReportDTO) (report.Report, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return report.Report{}, err
	}
	created, err := s.repo.Save(ctx, entity)
	if err != nil {
		return report.Report{}, err
	}
	s.publisher.Publish(report.CreatedEvent{Result: created})
	return created, nil
}

func (s *ReportService) Update(ctx context.Context, id uuid.UUID, dto *dtos.ReportDTO) (report.Report, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return report.Report{}, err
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		return report.Report{}, err
	}
	updated, err := s.repo.Save(ctx, entity)
	if err != nil {
		return report.Report{}, err
	}
	s.publisher.Publish(report.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(report.DeletedEvent{Result: existing})
	return nil
}

func (s *ReportService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

// NewReportFormSession assembles the report form lifecycle: date-range and
// per-section rules, persistence through the service.
func (s *ReportService) NewReportFormSession(opts ...func(*crud.SubmissionConfig[report.Report])) *crud.SubmissionController[report.Report] {
	cfg := crud.SubmissionConfig[report.Report]{
		Form:      crud.NewFormModel(dtos.ReportFormDefaults()),
		Validator: dtos.ReportFormValidator(),
		Persist: func(ctx context.Context, d crud.Draft) (report.Report, error) {
			dto, err := dtos.ReportFromDraft(d)
			if err != nil {
				return report.Report{}, err
			}
			return s.Create(ctx, dto)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return crud.NewSubmissionController(cfg)
}
