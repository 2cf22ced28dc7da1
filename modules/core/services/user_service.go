package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
)

type UserService struct {
	repo      user.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{repo: repo, publisher: publisher}
}

func (s *UserService) List(ctx context.Context, params *user.FindParams) ([]user.User, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, dto *dtos.CreateUserDTO) (user.User, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return user.User{}, err
	}
	if existing, err := s.repo.GetByEmail(ctx, entity.Email()); err == nil && !existing.IsZero() {
		return user.User{}, user.ErrEmailTaken
	}
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return user.User{}, err
	}
	s.publisher.Publish(user.CreatedEvent{Result: created})
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, dto *dtos.UpdateUserDTO) (user.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		return user.User{}, err
	}
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return user.User{}, err
	}
	s.publisher.Publish(user.UpdatedEvent{Result: updated})
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(user.DeletedEvent{Result: existing})
	return nil
}

func (s *UserService) ToggleActive(ctx context.Context, id uuid.UUID) (user.User, error) {
	toggled, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	s.publisher.Publish(user.UpdatedEvent{Result: toggled})
	return toggled, nil
}

func (s *UserService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

// NewUserFormSession assembles the registration form lifecycle: blank draft,
// draft-level validation and persistence through the service.
func (s *UserService) NewUserFormSession(opts ...func(*crud.SubmissionConfig[user.User])) *crud.SubmissionController[user.User] {
	cfg := crud.SubmissionConfig[user.User]{
		Form:      crud.NewFormModel(dtos.UserFormDefaults()),
		Validator: dtos.UserFormValidator(),
		Persist: func(ctx context.Context, d crud.Draft) (user.User, error) {
			dto, err := dtos.CreateUserFromDraft(d)
			if err != nil {
				return user.User{}, err
			}
			return s.Create(ctx, dto)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return crud.NewSubmissionController(cfg)
}
