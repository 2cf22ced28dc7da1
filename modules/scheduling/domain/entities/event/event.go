package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/calendar"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

type Source string

const (
	SourceInternal Source = "internal"
	SourceGoogle   Source = "google"
	SourceOutlook  Source = "outlook"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceInternal, SourceGoogle, SourceOutlook:
		return true
	}
	return false
}

type SyncStatus string

const (
	SyncNone    SyncStatus = ""
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

var ErrBadTimeRange = serrors.NewError(
	"EVENT_BAD_TIME_RANGE",
	"event end time precedes start time",
	"ValidationErrors.dateOrder",
)

type Option func(e *Event)

func WithID(id uuid.UUID) Option {
	return func(e *Event) { e.id = id }
}

func WithSource(source Source, syncStatus SyncStatus) Option {
	return func(e *Event) {
		e.source = source
		e.syncStatus = syncStatus
	}
}

func WithStatus(status Status) Option {
	return func(e *Event) { e.status = status }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(e *Event) { e.createdAt = createdAt }
}

// Event is one calendar entry. Times are wall-clock "HH:MM" strings on a
// calendar day; the duration in minutes is always recomputed from the pair,
// never stored independently.
type Event struct {
	id         uuid.UUID
	title      string
	date       time.Time
	startTime  string
	endTime    string
	source     Source
	syncStatus SyncStatus
	status     Status
	createdAt  time.Time
}

func New(title string, date time.Time, startTime, endTime string, opts ...Option) (Event, error) {
	if _, ok := calendar.Duration(startTime, endTime); !ok {
		return Event{}, ErrBadTimeRange
	}
	e := Event{
		id:        uuid.New(),
		title:     strings.TrimSpace(title),
		date:      date,
		startTime: startTime,
		endTime:   endTime,
		source:    SourceInternal,
		status:    StatusScheduled,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e, nil
}

func Hydrate(
	id uuid.UUID,
	title string,
	date time.Time,
	startTime, endTime string,
	source Source,
	syncStatus SyncStatus,
	status Status,
	createdAt time.Time,
) Event {
	return Event{
		id:         id,
		title:      strings.TrimSpace(title),
		date:       date,
		startTime:  startTime,
		endTime:    endTime,
		source:     source,
		syncStatus: syncStatus,
		status:     status,
		createdAt:  createdAt,
	}
}

func (e Event) ID() uuid.UUID          { return e.id }
func (e Event) Title() string          { return e.title }
func (e Event) Date() time.Time        { return e.date }
func (e Event) StartTime() string      { return e.startTime }
func (e Event) EndTime() string        { return e.endTime }
func (e Event) Source() Source         { return e.source }
func (e Event) SyncStatus() SyncStatus { return e.syncStatus }
func (e Event) Status() Status         { return e.status }
func (e Event) CreatedAt() time.Time   { return e.createdAt }
func (e Event) IsZero() bool           { return e.id == uuid.Nil }

// Day renders the calendar date the way grid lookups expect it.
func (e Event) Day() string {
	return e.date.Format(calendar.DateLayout)
}

// DurationMinutes is derived from the time pair on every call.
func (e Event) DurationMinutes() int {
	minutes, _ := calendar.Duration(e.startTime, e.endTime)
	return minutes
}

func (e Event) Retitle(title string) Event {
	e.title = strings.TrimSpace(title)
	return e
}

// Reschedule moves the event to a new day and time window, keeping its
// identity and flipping the status.
func (e Event) Reschedule(date time.Time, startTime, endTime string) (Event, error) {
	if _, ok := calendar.Duration(startTime, endTime); !ok {
		return Event{}, ErrBadTimeRange
	}
	e.date = date
	e.startTime = startTime
	e.endTime = endTime
	e.status = StatusRescheduled
	if e.source != SourceInternal {
		e.syncStatus = SyncPending
	}
	return e, nil
}

func (e Event) Confirm() Event {
	if e.status == StatusScheduled || e.status == StatusRescheduled {
		e.status = StatusConfirmed
	}
	return e
}

func (e Event) Complete() Event {
	e.status = StatusCompleted
	return e
}

func (e Event) Cancel() Event {
	e.status = StatusCancelled
	return e
}

func (e Event) MarkSynced() Event {
	if e.source != SourceInternal {
		e.syncStatus = SyncSynced
	}
	return e
}
