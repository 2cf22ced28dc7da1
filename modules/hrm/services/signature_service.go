package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/signature"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

type SignatureService struct {
	repo      signature.Repository
	publisher eventbus.EventBus
	notifier  *notify.Notifier
}

func NewSignatureService(repo signature.Repository, publisher eventbus.EventBus, notifier *notify.Notifier) *SignatureService {
	return &SignatureService{repo: repo, publisher: publisher, notifier: notifier}
}

func (s *SignatureService) List(ctx context.Context, params *signature.FindParams) ([]signature.Record, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *SignatureService) GetByID(ctx context.Context, id uuid.UUID) (signature.Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SignatureService) Request(ctx context.Context, dto *dtos.SignatureRequestDTO) (signature.Record, error) {
	created, err := s.repo.Save(ctx, dto.ToEntity())
	if err != nil {
		return signature.Record{}, err
	}
	if s.notifier != nil {
		s.notifier.Info("Signature requested from " + created.Signer())
	}
	return created, nil
}

func (s *SignatureService) Sign(ctx context.Context, id uuid.UUID) (signature.Record, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return signature.Record{}, err
	}
	signed, err := existing.Sign(time.Now())
	if err != nil {
		return signature.Record{}, err
	}
	saved, err := s.repo.Save(ctx, signed)
	if err != nil {
		return signature.Record{}, err
	}
	if s.notifier != nil {
		s.notifier.Success("Document signed by " + saved.Signer())
	}
	return saved, nil
}

func (s *SignatureService) Decline(ctx context.Context, id uuid.UUID) (signature.Record, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return signature.Record{}, err
	}
	declined, err := existing.Decline()
	if err != nil {
		return signature.Record{}, err
	}
	saved, err := s.repo.Save(ctx, declined)
	if err != nil {
		return signature.Record{}, err
	}
	if s.notifier != nil {
		s.notifier.Error("Signature declined by " + saved.Signer())
	}
	return saved, nil
}

func (s *SignatureService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}
