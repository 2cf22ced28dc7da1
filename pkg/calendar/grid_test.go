package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/calendar"
)

type dayEvent struct {
	day   string
	title string
}

func (e dayEvent) Day() string { return e.day }

func TestDaysInMonth_LeadingPadding(t *testing.T) {
	t.Parallel()
	// March 2024 starts on a Friday: four leading nils (Mon..Thu).
	grid := calendar.DaysInMonth(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	require.Len(t, grid, 4+31)
	for i := 0; i < 4; i++ {
		assert.Nil(t, grid[i])
	}
	require.NotNil(t, grid[4])
	assert.Equal(t, 1, grid[4].Day())
	assert.Equal(t, 31, grid[len(grid)-1].Day())
}

func TestDaysInMonth_MondayStartHasNoPadding(t *testing.T) {
	t.Parallel()
	// April 2024 starts on a Monday.
	grid := calendar.DaysInMonth(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, grid, 30)
	require.NotNil(t, grid[0])
	assert.Equal(t, 1, grid[0].Day())
}

func TestWeekOf(t *testing.T) {
	t.Parallel()
	// 2024-03-15 is a Friday; its week starts Monday 2024-03-11.
	week := calendar.WeekOf(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-11", week[0].Format(calendar.DateLayout))
	assert.Equal(t, "2024-03-17", week[6].Format(calendar.DateLayout))
	for i := 1; i < 7; i++ {
		assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
}

func TestEventsOn(t *testing.T) {
	t.Parallel()
	events := []dayEvent{
		{day: "2024-03-11", title: "standup"},
		{day: "2024-03-12", title: "1:1"},
		{day: "2024-03-11", title: "review"},
	}

	got := calendar.EventsOn(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), events)

	require.Len(t, got, 2)
	assert.Equal(t, "standup", got[0].title)
	assert.Equal(t, "review", got[1].title)

	assert.Empty(t, calendar.EventsOn(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), events))
}

func TestHourSlots(t *testing.T) {
	t.Parallel()
	slots := calendar.HourSlots(8, 18)

	require.Len(t, slots, 11)
	assert.Equal(t, "8:00", slots[0])
	assert.Equal(t, "18:00", slots[10])

	assert.Nil(t, calendar.HourSlots(18, 8))
}

func TestSlotFor(t *testing.T) {
	t.Parallel()
	slot, ok := calendar.SlotFor("09:45")
	require.True(t, ok)
	assert.Equal(t, "9:00", slot, "events bucket by truncating to the hour")

	_, ok = calendar.SlotFor("not-a-time")
	assert.False(t, ok)
}

func TestDuration(t *testing.T) {
	t.Parallel()
	minutes, ok := calendar.Duration("09:30", "11:00")
	require.True(t, ok)
	assert.Equal(t, 90, minutes)

	minutes, ok = calendar.Duration("11:00", "09:30")
	require.True(t, ok)
	assert.Equal(t, -90, minutes)

	_, ok = calendar.Duration("", "11:00")
	assert.False(t, ok)
}
