package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/entities/doctemplate"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
)

type DocTemplateService struct {
	repo      doctemplate.Repository
	publisher eventbus.EventBus
}

func NewDocTemplateService(repo doctemplate.Repository, publisher eventbus.EventBus) *DocTemplateService {
	return &DocTemplateService{repo: repo, publisher: publisher}
}

func (s *DocTemplateService) List(ctx context.Context, params *doctemplate.FindParams) ([]doctemplate.DocTemplate, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *DocTemplateService) GetByID(ctx context.Context, id uuid.UUID) (doctemplate.DocTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DocTemplateService) Create(ctx context.Context, dto *dtos.DocTemplateDTO) (doctemplate.DocTemplate, error) {
	created, err := s.repo.Save(ctx, dto.ToEntity())
	if err != nil {
		return doctemplate.DocTemplate{}, err
	}
	s.publisher.Publish(doctemplate.CreatedEvent{Result: created})
	return created, nil
}

func (s *DocTemplateService) Update(ctx context.Context, id uuid.UUID, dto *dtos.DocTemplateDTO) (doctemplate.DocTemplate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return doctemplate.DocTemplate{}, err
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		return doctemplate.DocTemplate{}, err
	}
	updated, err := s.repo.Save(ctx, entity)
	if err != nil {
		return doctemplate.DocTemplate{}, err
	}
	s.publisher.Publish(doctemplate.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *DocTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(doctemplate.DeletedEvent{Result: existing})
	return nil
}

func (s *DocTemplateService) ToggleFavorite(ctx context.Context, id uuid.UUID) (doctemplate.DocTemplate, error) {
	toggled, err := s.repo.ToggleFavorite(ctx, id)
	if err != nil {
		return doctemplate.DocTemplate{}, err
	}
	s.publisher.Publish(doctemplate.UpdatedEvent{Result: toggled})
	return toggled, nil
}

func (s *DocTemplateService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}
