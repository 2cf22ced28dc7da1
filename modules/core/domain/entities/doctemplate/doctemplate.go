package doctemplate

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Option func(t *DocTemplate)

func WithID(id uuid.UUID) Option {
	return func(t *DocTemplate) { t.id = id }
}

func WithStatus(status Status) Option {
	return func(t *DocTemplate) { t.status = status }
}

func WithFavorite(favorite bool) Option {
	return func(t *DocTemplate) { t.favorite = favorite }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(t *DocTemplate) { t.createdAt = createdAt }
}

// DocTemplate is a reusable document blueprint: a named set of merge fields
// filed under a category such as "hr" or "legal".
type DocTemplate struct {
	id        uuid.UUID
	name      string
	category  string
	fields    []string
	status    Status
	favorite  bool
	createdAt time.Time
}

func New(name, category string, fields []string, opts ...Option) DocTemplate {
	t := DocTemplate{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		category:  strings.TrimSpace(category),
		fields:    append([]string(nil), fields...),
		status:    StatusDraft,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func Hydrate(
	id uuid.UUID,
	name, category string,
	fields []string,
	status Status,
	favorite bool,
	createdAt time.Time,
) DocTemplate {
	return DocTemplate{
		id:        id,
		name:      strings.TrimSpace(name),
		category:  strings.TrimSpace(category),
		fields:    append([]string(nil), fields...),
		status:    status,
		favorite:  favorite,
		createdAt: createdAt,
	}
}

func (t DocTemplate) ID() uuid.UUID        { return t.id }
func (t DocTemplate) Name() string         { return t.name }
func (t DocTemplate) Category() string     { return t.category }
func (t DocTemplate) Fields() []string     { return append([]string(nil), t.fields...) }
func (t DocTemplate) Status() Status       { return t.status }
func (t DocTemplate) IsFavorite() bool     { return t.favorite }
func (t DocTemplate) CreatedAt() time.Time { return t.createdAt }
func (t DocTemplate) IsZero() bool         { return t.id == uuid.Nil }

func (t DocTemplate) Rename(name string) DocTemplate {
	t.name = strings.TrimSpace(name)
	return t
}

func (t DocTemplate) SetCategory(category string) DocTemplate {
	t.category = strings.TrimSpace(category)
	return t
}

func (t DocTemplate) SetFields(fields []string) DocTemplate {
	t.fields = append([]string(nil), fields...)
	return t
}

func (t DocTemplate) SetStatus(status Status) DocTemplate {
	t.status = status
	return t
}

// ToggleFavorite flips the starred flag; applying it twice restores the
// original value.
func (t DocTemplate) ToggleFavorite() DocTemplate {
	t.favorite = !t.favorite
	return t
}
