package jobposting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed:
		return true
	}
	return false
}

type Option func(p *Posting)

func WithID(id uuid.UUID) Option {
	return func(p *Posting) { p.id = id }
}

func WithStatus(status Status) Option {
	return func(p *Posting) { p.status = status }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(p *Posting) { p.createdAt = createdAt }
}

// Posting is an open role candidates apply to.
type Posting struct {
	id         uuid.UUID
	title      string
	department string
	location   string
	status     Status
	createdAt  time.Time
}

func New(title, department, location string, opts ...Option) Posting {
	p := Posting{
		id:         uuid.New(),
		title:      strings.TrimSpace(title),
		department: strings.TrimSpace(department),
		location:   strings.TrimSpace(location),
		status:     StatusDraft,
		createdAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func Hydrate(id uuid.UUID, title, department, location string, status Status, createdAt time.Time) Posting {
	return Posting{
		id:         id,
		title:      strings.TrimSpace(title),
		department: strings.TrimSpace(department),
		location:   strings.TrimSpace(location),
		status:     status,
		createdAt:  createdAt,
	}
}

func (p Posting) ID() uuid.UUID        { return p.id }
func (p Posting) Title() string        { return p.title }
func (p Posting) Department() string   { return p.department }
func (p Posting) Location() string     { return p.location }
func (p Posting) Status() Status       { return p.status }
func (p Posting) CreatedAt() time.Time { return p.createdAt }
func (p Posting) IsZero() bool         { return p.id == uuid.Nil }

func (p Posting) Retitle(title string) Posting {
	p.title = strings.TrimSpace(title)
	return p
}

func (p Posting) SetDepartment(department string) Posting {
	p.department = strings.TrimSpace(department)
	return p
}

func (p Posting) SetLocation(location string) Posting {
	p.location = strings.TrimSpace(location)
	return p
}

func (p Posting) Publish() Posting {
	if p.status == StatusDraft {
		p.status = StatusPublished
	}
	return p
}

func (p Posting) Close() Posting {
	p.status = StatusClosed
	return p
}
