package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/aggregates/contract"
	"github.com/10021987z/dzilo-sub003/modules/hrm/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
)

func setupContractService(t *testing.T) *services.ContractService {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	return services.NewContractService(persistence.NewInmemContractRepository(), bus)
}

func TestContractService_FormSessionNestedPeriod(t *testing.T) {
	t.Parallel()
	svc := setupContractService(t)
	ctx := context.Background()

	session := svc.NewContractFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("employeeName", "Ada Lovelace"))
	require.NoError(t, form.SetField("kind", "permanent"))
	require.NoError(t, form.SetField("period.startDate", "2026-01-01"))
	require.NoError(t, form.SetField("period.endDate", "2026-12-31"))

	// Setting one leg of the period leaves the other intact.
	assert.Equal(t, "2026-01-01", form.Draft().String("period.startDate"))

	res := session.Submit(ctx)
	require.NoError(t, res.Err)
	require.Equal(t, crud.StateSucceeded, res.State)

	contracts, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Ada Lovelace", contracts[0].EmployeeName())
	assert.Equal(t, "2026-12-31", contracts[0].Period().End.Format("2006-01-02"))
}

func TestContractService_InvertedPeriodAttachesToEndDate(t *testing.T) {
	t.Parallel()
	svc := setupContractService(t)
	ctx := context.Background()

	session := svc.NewContractFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("employeeName", "Ada Lovelace"))
	require.NoError(t, form.SetField("kind", "fixed-term"))
	require.NoError(t, form.SetField("period.startDate", "2026-12-31"))
	require.NoError(t, form.SetField("period.endDate", "2026-01-01"))

	res := session.Submit(ctx)
	require.Equal(t, crud.StateIdle, res.State)
	fields := res.Errors.Fields()
	assert.Contains(t, fields, "period.endDate")
	assert.NotContains(t, fields, "period.startDate")

	contracts, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, contracts)
}

func TestContractService_Lifecycle(t *testing.T) {
	t.Parallel()
	svc := setupContractService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.ContractDTO{
		EmployeeName: "Grace Hopper",
		Kind:         "permanent",
		Period: dtos.ContractPeriodDTO{
			StartDate: "2026-01-01",
			EndDate:   "2026-12-31",
		},
	})
	require.NoError(t, err)
	require.Equal(t, contract.StatusDraft, created.Status())

	active, err := svc.Activate(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, contract.StatusActive, active.Status())

	terminated, err := svc.Terminate(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, contract.StatusTerminated, terminated.Status())

	// Termination is final.
	still, err := svc.Activate(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, contract.StatusTerminated, still.Status())
}

func TestNewPeriod_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	start := mustDate(t, "2026-06-01")
	end := mustDate(t, "2026-05-01")
	_, err := contract.NewPeriod(start, end)
	require.ErrorIs(t, err, contract.ErrPeriodInverted)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return day
}
