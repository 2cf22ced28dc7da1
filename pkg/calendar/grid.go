package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DaysInMonth returns the month grid for the month containing d: leading nil
// entries pad the first week so day 1 lands under its weekday column, then
// every day of the month in order. Weeks start on Monday.
func DaysInMonth(d time.Time) []*time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())

	lead := mondayIndex(first.Weekday())
	grid := make([]*time.Time, 0, lead+31)
	for i := 0; i < lead; i++ {
		grid = append(grid, nil)
	}

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		day := day
		grid = append(grid, &day)
	}
	return grid
}

// WeekOf returns the 7 consecutive days of the week containing d, starting
// on Monday.
func WeekOf(d time.Time) [7]time.Time {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	start = start.AddDate(0, 0, -mondayIndex(start.Weekday()))

	var week [7]time.Time
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

func mondayIndex(w time.Weekday) int {
	// time.Weekday counts from Sunday.
	return (int(w) + 6) % 7
}

// Dated is anything carrying a calendar day.
type Dated interface {
	Day() string
}

// EventsOn is the single day-equality lookup shared by the month grid and
// agenda views, so filtering can never diverge between them.
func EventsOn[T Dated](day time.Time, events []T) []T {
	want := day.Format(DateLayout)
	var out []T
	for _, e := range events {
		if e.Day() == want {
			out = append(out, e)
		}
	}
	return out
}

// HourSlots returns "H:00" labels for [startHour, endHour] inclusive.
func HourSlots(startHour, endHour int) []string {
	if endHour < startHour {
		return nil
	}
	slots := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, fmt.Sprintf("%d:00", h))
	}
	return slots
}

// SlotFor buckets a "HH:MM" start time into its hour slot label.
func SlotFor(startTime string) (string, bool) {
	h, _, ok := parseClock(startTime)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d:00", h), true
}

// Duration returns the whole minutes between two "HH:MM" clock values.
// Callers recompute it from start and end whenever both are set instead of
// trusting a stored value.
func Duration(startTime, endTime string) (int, bool) {
	sh, sm, ok := parseClock(startTime)
	if !ok {
		return 0, false
	}
	eh, em, ok := parseClock(endTime)
	if !ok {
		return 0, false
	}
	return (eh*60 + em) - (sh*60 + sm), true
}

func parseClock(v string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
