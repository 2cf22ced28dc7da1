package contract

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusTerminated:
		return true
	}
	return false
}

var ErrPeriodInverted = serrors.NewError(
	"CONTRACT_PERIOD_INVERTED",
	"contract end date precedes start date",
	"ValidationErrors.dateOrder",
)

// Period is the contract validity window. End is inclusive and must not
// precede Start.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrPeriodInverted
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) Contains(day time.Time) bool {
	return !day.Before(p.Start) && !day.After(p.End)
}

type Option func(c *Contract)

func WithID(id uuid.UUID) Option {
	return func(c *Contract) { c.id = id }
}

func WithStatus(status Status) Option {
	return func(c *Contract) { c.status = status }
}

func WithSalaryNote(note string) Option {
	return func(c *Contract) { c.salaryNote = note }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(c *Contract) { c.createdAt = createdAt }
}

// Contract ties an employee to a validity period and a contract type such
// as "permanent" or "fixed-term".
type Contract struct {
	id           uuid.UUID
	employeeName string
	kind         string
	period       Period
	salaryNote   string
	status       Status
	createdAt    time.Time
}

func New(employeeName, kind string, period Period, opts ...Option) Contract {
	c := Contract{
		id:           uuid.New(),
		employeeName: strings.TrimSpace(employeeName),
		kind:         strings.TrimSpace(kind),
		period:       period,
		status:       StatusDraft,
		createdAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func Hydrate(
	id uuid.UUID,
	employeeName, kind string,
	period Period,
	salaryNote string,
	status Status,
	createdAt time.Time,
) Contract {
	return Contract{
		id:           id,
		employeeName: strings.TrimSpace(employeeName),
		kind:         strings.TrimSpace(kind),
		period:       period,
		salaryNote:   salaryNote,
		status:       status,
		createdAt:    createdAt,
	}
}

func (c Contract) ID() uuid.UUID        { return c.id }
func (c Contract) EmployeeName() string { return c.employeeName }
func (c Contract) Kind() string         { return c.kind }
func (c Contract) Period() Period       { return c.period }
func (c Contract) SalaryNote() string   { return c.salaryNote }
func (c Contract) Status() Status       { return c.status }
func (c Contract) CreatedAt() time.Time { return c.createdAt }
func (c Contract) IsZero() bool         { return c.id == uuid.Nil }

func (c Contract) SetEmployeeName(name string) Contract {
	c.employeeName = strings.TrimSpace(name)
	return c
}

func (c Contract) SetKind(kind string) Contract {
	c.kind = strings.TrimSpace(kind)
	return c
}

func (c Contract) SetPeriod(period Period) Contract {
	c.period = period
	return c
}

func (c Contract) SetSalaryNote(note string) Contract {
	c.salaryNote = note
	return c
}

func (c Contract) SetStatus(status Status) Contract {
	c.status = status
	return c
}

// Activate moves a draft contract into force. Terminated contracts stay
// terminated.
func (c Contract) Activate() Contract {
	if c.status == StatusDraft {
		c.status = StatusActive
	}
	return c
}

func (c Contract) Terminate() Contract {
	c.status = StatusTerminated
	return c
}
