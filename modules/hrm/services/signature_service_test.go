package services_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/signature"
	"github.com/10021987z/dzilo-sub003/modules/hrm/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

func setupSignatureService(t *testing.T) (*services.SignatureService, *notify.Notifier) {
	t.Helper()
	log := logging.ConsoleLogger(logrus.ErrorLevel)
	notifier := notify.New(log, notify.DefaultTTL)
	t.Cleanup(notifier.Dispose)
	svc := services.NewSignatureService(
		persistence.NewInmemSignatureRepository(),
		eventbus.NewEventPublisher(log),
		notifier,
	)
	return svc, notifier
}

func TestSignatureService_SignResolvesPendingRequest(t *testing.T) {
	t.Parallel()
	svc, notifier := setupSignatureService(t)
	ctx := context.Background()

	created, err := svc.Request(ctx, &dtos.SignatureRequestDTO{
		Document: "Offer letter - Ada Lovelace",
		Signer:   "Ada Lovelace",
	})
	require.NoError(t, err)
	require.Equal(t, signature.StatusPending, created.Status())
	assert.True(t, created.SignedAt().IsZero())

	signed, err := svc.Sign(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, signature.StatusSigned, signed.Status())
	assert.False(t, signed.SignedAt().IsZero())

	// Signing again is a data error, not a state change.
	_, err = svc.Sign(ctx, created.ID())
	require.ErrorIs(t, err, signature.ErrAlreadyResolved)

	notices := notifier.Active()
	require.NotEmpty(t, notices)
}

func TestSignatureService_DeclineIsFinal(t *testing.T) {
	t.Parallel()
	svc, _ := setupSignatureService(t)
	ctx := context.Background()

	created, err := svc.Request(ctx, &dtos.SignatureRequestDTO{
		Document: "NDA agreement",
		Signer:   "Grace Hopper",
	})
	require.NoError(t, err)

	declined, err := svc.Decline(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, signature.StatusDeclined, declined.Status())

	_, err = svc.Sign(ctx, created.ID())
	require.ErrorIs(t, err, signature.ErrAlreadyResolved)
}
