package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/modules/core/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
)

func setupUserService(t *testing.T) *services.UserService {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	return services.NewUserService(persistence.NewInmemUserRepository(), bus)
}

func TestUserService_CreateAndFetch(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.CreateUserDTO{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@dzilo.test",
		Password:        "secret-passphrase",
		ConfirmPassword: "secret-passphrase",
		Language:        "en",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID())
	assert.Equal(t, "Ada Lovelace", created.FullName())
	assert.WithinDuration(t, time.Now(), created.CreatedAt(), time.Minute)
	assert.True(t, created.CheckPassword("secret-passphrase"))

	got, err := svc.GetByEmail(ctx, "ADA@dzilo.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())
}

func TestUserService_CreateRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	dto := &dtos.CreateUserDTO{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@dzilo.test",
		Password:        "secret-passphrase",
		ConfirmPassword: "secret-passphrase",
		Language:        "en",
	}
	_, err := svc.Create(ctx, dto)
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto)
	require.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestUserService_FormSessionSubmitsOnce(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	session := svc.NewUserFormSession()
	require.NoError(t, session.Form().SetField("firstName", "Ada"))
	require.NoError(t, session.Form().SetField("lastName", "Lovelace"))
	require.NoError(t, session.Form().SetField("email", "ada@dzilo.test"))
	require.NoError(t, session.Form().SetField("password", "secret-passphrase"))
	require.NoError(t, session.Form().SetField("confirmPassword", "secret-passphrase"))

	res := session.Submit(ctx)
	require.False(t, res.Ignored)
	require.NoError(t, res.Err)
	require.True(t, res.Errors.Empty())
	require.Equal(t, crud.StateSucceeded, res.State)

	again := session.Submit(ctx)
	assert.True(t, again.Ignored)

	users, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ada@dzilo.test", users[0].Email())
	assert.Equal(t, time.Now().Format("2006-01-02"), users[0].CreatedAt().Format("2006-01-02"))
}

func TestUserService_FormSessionBlocksInvalidDraft(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	session := svc.NewUserFormSession()
	require.NoError(t, session.Form().SetField("firstName", "Ada"))
	require.NoError(t, session.Form().SetField("email", "not-an-email"))
	require.NoError(t, session.Form().SetField("password", "short"))
	require.NoError(t, session.Form().SetField("confirmPassword", "different"))

	res := session.Submit(ctx)
	require.False(t, res.Ignored)
	assert.Equal(t, crud.StateIdle, res.State)
	assert.Contains(t, res.Errors.Fields(), "lastName")
	assert.Contains(t, res.Errors.Fields(), "email")
	assert.Contains(t, res.Errors.Fields(), "password")
	assert.Contains(t, res.Errors.Fields(), "confirmPassword")

	users, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserService_UpdateAndToggle(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.CreateUserDTO{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "grace@dzilo.test",
		Password:        "secret-passphrase",
		ConfirmPassword: "secret-passphrase",
		Language:        "en",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID(), &dtos.UpdateUserDTO{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "g.hopper@dzilo.test",
		Language:  "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, "g.hopper@dzilo.test", updated.Email())
	assert.Equal(t, user.UILanguageFR, updated.Language())
	assert.True(t, updated.CheckPassword("secret-passphrase"))

	toggled, err := svc.ToggleActive(ctx, created.ID())
	require.NoError(t, err)
	assert.False(t, toggled.IsActive())
}

func TestUserService_ListSortFlips(t *testing.T) {
	t.Parallel()
	svc := setupUserService(t)
	ctx := context.Background()

	for _, u := range []struct{ first, last, email string }{
		{"Ada", "Lovelace", "ada@dzilo.test"},
		{"Grace", "Hopper", "grace@dzilo.test"},
	} {
		_, err := svc.Create(ctx, &dtos.CreateUserDTO{
			FirstName:       u.first,
			LastName:        u.last,
			Email:           u.email,
			Password:        "secret-passphrase",
			ConfirmPassword: "secret-passphrase",
			Language:        "en",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.SortBy("name"))
	users, err := svc.List(ctx, &user.FindParams{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada Lovelace", users[0].FullName())

	require.NoError(t, svc.SortBy("name"))
	users, err = svc.List(ctx, &user.FindParams{})
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", users[0].FullName())
}
