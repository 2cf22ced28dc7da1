package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

var (
	ErrUserNotFound = serrors.NewError("USER_NOT_FOUND", "user not found", "")
	ErrEmailTaken   = serrors.NewError("EMAIL_TAKEN", "email already in use", "")
)

type FindParams struct {
	Query  crud.Query
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (User, error)
	SortBy(key string, direction ...crud.SortDirection) error
}
