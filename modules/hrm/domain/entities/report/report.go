package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved:
		return true
	}
	return false
}

// Section is one titled block of report body text.
type Section struct {
	Title   string
	Content string
}

type Option func(r *Report)

func WithID(id uuid.UUID) Option {
	return func(r *Report) { r.id = id }
}

func WithStatus(status Status) Option {
	return func(r *Report) { r.status = status }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(r *Report) { r.createdAt = createdAt }
}

// Report is a periodic activity write-up: a covered date range plus an
// ordered list of sections.
type Report struct {
	id        uuid.UUID
	title     string
	start     time.Time
	end       time.Time
	sections  []Section
	status    Status
	createdAt time.Time
}

func New(title string, start, end time.Time, sections []Section, opts ...Option) Report {
	r := Report{
		id:        uuid.New(),
		title:     strings.TrimSpace(title),
		start:     start,
		end:       end,
		sections:  append([]Section(nil), sections...),
		status:    StatusDraft,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func Hydrate(
	id uuid.UUID,
	title string,
	start, end time.Time,
	sections []Section,
	status Status,
	createdAt time.Time,
) Report {
	return Report{
		id:        id,
		title:     strings.TrimSpace(title),
		start:     start,
		end:       end,
		sections:  append([]Section(nil), sections...),
		status:    status,
		createdAt: createdAt,
	}
}

func (r Report) ID() uuid.UUID        { return r.id }
func (r Report) Title() string        { return r.title }
func (r Report) Start() time.Time     { return r.start }
func (r Report) End() time.Time       { return r.end }
func (r Report) Sections() []Section  { return append([]Section(nil), r.sections...) }
func (r Report) Status() Status       { return r.status }
func (r Report) CreatedAt() time.Time { return r.createdAt }
func (r Report) IsZero() bool         { return r.id == uuid.Nil }

func (r Report) Retitle(title string) Report {
	r.title = strings.TrimSpace(title)
	return r
}

func (r Report) SetRange(start, end time.Time) Report {
	r.start = start
	r.end = end
	return r
}

func (r Report) SetSections(sections []Section) Report {
	r.sections = append([]Section(nil), sections...)
	return r
}

func (r Report) SetStatus(status Status) Report {
	r.status = status
	return r
}
