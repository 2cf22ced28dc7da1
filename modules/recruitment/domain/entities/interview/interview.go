package interview

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

var ErrBadTimeRange = serrors.NewError(
	"INTERVIEW_BAD_TIME_RANGE",
	"interview end time precedes start time",
	"ValidationErrors.dateOrder",
)

type Option func(i *Interview)

func WithID(id uuid.UUID) Option {
	return func(i *Interview) { i.id = id }
}

func WithStatus(status Status) Option {
	return func(i *Interview) { i.status = status }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(i *Interview) { i.createdAt = createdAt }
}

// Interview books a candidate and an interviewer into a time slot.
type Interview struct {
	id          uuid.UUID
	candidateID uuid.UUID
	interviewer string
	date        time.Time
	startTime   string
	endTime     string
	status      Status
	createdAt   time.Time
}

func New(candidateID uuid.UUID, interviewer string, date time.Time, startTime, endTime string, opts ...Option) (Interview, error) {
	if _, ok := calendar.Duration(startTime, endTime); !ok {
		return Interview{}, ErrBadTimeRange
	}
	i := Interview{
		id:          uuid.New(),
		candidateID: candidateID,
		interviewer: strings.TrimSpace(interviewer),
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		status:      StatusScheduled,
		createdAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i, nil
}

func Hydrate(
	id, candidateID uuid.UUID,
	interviewer string,
	date time.Time,
	startTime, endTime string,
	status Status,
	createdAt time.Time,
) Interview {
	return Interview{
		id:          id,
		candidateID: candidateID,
		interviewer: strings.TrimSpace(interviewer),
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		status:      status,
		createdAt:   createdAt,
	}
}

func (i Interview) ID() uuid.UUID          { return i.id }
func (i Interview) CandidateID() uuid.UUID { return i.candidateID }
func (i Interview) Interviewer() string    { return i.interviewer }
func (i Interview) Date() time.Time        { return i.date }
func (i Interview) StartTime() string      { return i.startTime }
func (i Interview) EndTime() string        { return i.endTime }
func (i Interview) Status() Status         { return i.status }
func (i Interview) CreatedAt() time.Time   { return i.createdAt }
func (i Interview) IsZero() bool           { return i.id == uuid.Nil }

func (i Interview) Day() string {
	return i.date.Format(calendar.DateLayout)
}

func (i Interview) DurationMinutes() int {
	minutes, _ := calendar.Duration(i.startTime, i.endTime)
	return minutes
}

// Reschedule moves the booking, keeping its identity and flipping the
// status.
func (i Interview) Reschedule(date time.Time, startTime, endTime string) (Interview, error) {
	if _, ok := calendar.Duration(startTime, endTime); !ok {
		return Interview{}, ErrBadTimeRange
	}
	i.date = date
	i.startTime = startTime
	i.endTime = endTime
	i.status = StatusRescheduled
	return i, nil
}

func (i Interview) Confirm() Interview {
	if i.status == StatusScheduled || i.status == StatusRescheduled {
		i.status = StatusConfirmed
	}
	return i
}

func (i Interview) Complete() Interview {
	i.status = StatusCompleted
	return i
}

func (i Interview) Cancel() Interview {
	i.status = StatusCancelled
	return i
}
