package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

// InmemUserRepository keeps the canonical user collection in memory,
// insertion-ordered and unique by id.
type InmemUserRepository struct {
	list *crud.ListModel[user.User]
}

func NewInmemUserRepository() *InmemUserRepository {
	return &InmemUserRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				func(u user.User) string { return u.FullName() },
				func(u user.User) string { return u.Email() },
			),
			crud.WithCategory("status", func(u user.User) string { return string(u.Status()) }),
			crud.WithCategory("role", func(u user.User) string { return u.Role() }),
			crud.WithStringSortKey("name", func(u user.User) string { return u.FullName() }),
			crud.WithStringSortKey("email", func(u user.User) string { return u.Email() }),
			crud.WithDateSortKey("createdAt", user.User.CreatedAt),
			crud.WithToggle("isActive", user.User.ToggleActive),
		),
	}
}

func (r *InmemUserRepository) List(_ context.Context, params *user.FindParams) ([]user.User, error) {
	if params == nil {
		return r.list.All(), nil
	}
	users := r.list.Filtered(params.Query)
	return paginate(users, params.Offset, params.Limit), nil
}

func (r *InmemUserRepository) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.list.Get(id)
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *InmemUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.list.All() {
		if strings.EqualFold(u.Email(), email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *InmemUserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	return r.list.Upsert(u), nil
}

func (r *InmemUserRepository) Update(_ context.Context, u user.User) (user.User, error) {
	if _, ok := r.list.Get(u.ID()); !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.list.Upsert(u), nil
}

func (r *InmemUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *InmemUserRepository) ToggleActive(_ context.Context, id uuid.UUID) (user.User, error) {
	u, err := r.list.Toggle(id, "isActive")
	if err != nil {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *InmemUserRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
