package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/domain/entities/event"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/services"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
)

func setupEventService(t *testing.T) *services.EventService {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	return services.NewEventService(persistence.NewInmemEventRepository(), bus)
}

func TestEventService_CreateDerivesDuration(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.EventDTO{
		Title:     "Sprint review",
		Date:      "2026-03-16",
		StartTime: "10:00",
		EndTime:   "11:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 90, created.DurationMinutes())
	assert.Equal(t, event.StatusScheduled, created.Status())
	assert.Equal(t, event.SourceInternal, created.Source())
}

func TestEventService_CreateRejectsInvertedTimes(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.EventDTO{
		Title:     "Backwards",
		Date:      "2026-03-16",
		StartTime: "11:30",
		EndTime:   "10:00",
	})
	require.ErrorIs(t, err, event.ErrBadTimeRange)

	events, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_RescheduleKeepsIdentityAndRecomputesDuration(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.EventDTO{
		Title:     "Interview",
		Date:      "2026-03-16",
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	require.NoError(t, err)

	newDay, err := time.Parse("2006-01-02", "2026-03-18")
	require.NoError(t, err)
	moved, err := svc.Reschedule(ctx, created.ID(), newDay, "09:00", "09:45")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), moved.ID())
	assert.Equal(t, event.StatusRescheduled, moved.Status())
	assert.Equal(t, 45, moved.DurationMinutes())
	assert.Equal(t, "2026-03-18", moved.Day())

	events, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestEventService_MonthGridPlacesEvents(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.EventDTO{
		Title:     "Kickoff",
		Date:      "2024-03-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	anchor, err := time.Parse("2006-01-02", "2024-03-01")
	require.NoError(t, err)
	cells, err := svc.MonthGrid(ctx, anchor)
	require.NoError(t, err)

	// March 2024 starts on a Friday: four leading padding cells.
	require.Len(t, cells, 35)
	for i := 0; i < 4; i++ {
		assert.Nil(t, cells[i].Day)
	}

	var found bool
	for _, cell := range cells {
		if cell.Day != nil && cell.Day.Day() == 15 {
			require.Len(t, cell.Events, 1)
			assert.Equal(t, "Kickoff", cell.Events[0].Title())
			found = true
		}
	}
	assert.True(t, found)
}

func TestEventService_DaySlotsBucketByStartHour(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	for _, dto := range []dtos.EventDTO{
		{Title: "Standup", Date: "2026-03-16", StartTime: "09:00", EndTime: "09:15"},
		{Title: "Review", Date: "2026-03-16", StartTime: "09:45", EndTime: "10:30"},
		{Title: "Lunch", Date: "2026-03-16", StartTime: "12:00", EndTime: "13:00"},
	} {
		dto := dto
		_, err := svc.Create(ctx, &dto)
		require.NoError(t, err)
	}

	day, err := time.Parse("2006-01-02", "2026-03-16")
	require.NoError(t, err)
	slots, err := svc.DaySlots(ctx, day, 8, 18)
	require.NoError(t, err)

	require.Len(t, slots["9:00"], 2)
	require.Len(t, slots["12:00"], 1)
	assert.Empty(t, slots["8:00"])
}

func TestEventService_FormSessionBlocksMissingTimes(t *testing.T) {
	t.Parallel()
	svc := setupEventService(t)
	ctx := context.Background()

	session := svc.NewEventFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("title", "No times"))
	require.NoError(t, form.SetField("date", "2026-03-16"))

	res := session.Submit(ctx)
	require.Equal(t, crud.StateIdle, res.State)
	fields := res.Errors.Fields()
	assert.Contains(t, fields, "startTime")
	assert.Contains(t, fields, "endTime")
}
