package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/aggregates/contract"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
)

type ContractService struct {
	repo      contract.Repository
	publisher eventbus.EventBus
}

func NewContractService(repo contract.Repository, publisher eventbus.EventBus) *ContractService {
	return &ContractService{repo: repo, publisher: publisher}
}

func (s *ContractService) List(ctx context.Context, params *contract.FindParams) ([]contract.Contract, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (contract.Contract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContractService) Create(ctx context.Context, dto *dtos.ContractDTO) (contract.Contract, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return contract.Contract{}, err
	}
	created, err := s.repo.Save(ctx, entity)
	if err != nil {
		return contract.Contract{}, err
	}
	s.publisher.Publish(contract.CreatedEvent{Result: created})
	return created, nil
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, dto *dtos.ContractDTO) (contract.Contract, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return contract.Contract{}, err
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		return contract.Contract{}, err
	}
	updated, err := s.repo.Save(ctx, entity)
	if err != nil {
		return contract.Contract{}, err
	}
	s.publisher.Publish(contract.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(contract.DeletedEvent{Result: existing})
	return nil
}

func (s *ContractService) Activate(ctx context.Context, id uuid.UUID) (contract.Contract, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return contract.Contract{}, err
	}
	updated, err := s.repo.Save(ctx, existing.Activate())
	if err != nil {
		return contract.Contract{}, err
	}
	s.publisher.Publish(contract.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ContractService) Terminate(ctx context.Context, id uuid.UUID) (contract.Contract, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return contract.Contract{}, err
	}
	updated, err := s.repo.Save(ctx, existing.Terminate())
	if err != nil {
		return contract.Contract{}, err
	}
	s.publisher.Publish(contract.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *ContractService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

// NewContractFormSession assembles the contract form lifecycle with the
// nested period group and its date-order rule.
func (s *ContractService) NewContractFormSession(opts ...func(*crud.SubmissionConfig[contract.Contract])) *crud.SubmissionController[contract.Contract] {
	cfg := crud.SubmissionConfig[contract.Contract]{
		Form:      crud.NewFormModel(dtos.ContractFormDefaults()),
		Validator: dtos.ContractFormValidator(),
		Persist: func(ctx context.Context, d crud.Draft) (contract.Contract, error) {
			dto, err := dtos.ContractFromDraft(d)
			if err != nil {
				return contract.Contract{}, err
			}
			return s.Create(ctx, dto)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return crud.NewSubmissionController(cfg)
}
