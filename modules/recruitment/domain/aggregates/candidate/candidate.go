package candidate

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

// nextStage is the single forward step of the hiring pipeline. Rejection is
// reachable from any stage and is terminal, as is hired.
var nextStage = map[Stage]Stage{
	StageApplied:   StageScreening,
	StageScreening: StageInterview,
	StageInterview: StageOffer,
	StageOffer:     StageHired,
}

var ErrIllegalTransition = serrors.NewError(
	"CANDIDATE_ILLEGAL_TRANSITION",
	"illegal pipeline transition",
	"",
)

// CanMoveTo reports whether the pipeline allows moving from s to target.
func (s Stage) CanMoveTo(target Stage) bool {
	if !target.IsValid() || s == StageRejected || s == StageHired {
		return false
	}
	if target == StageRejected {
		return true
	}
	return nextStage[s] == target
}

type Option func(c *Candidate)

func WithID(id uuid.UUID) Option {
	return func(c *Candidate) { c.id = id }
}

func WithStage(stage Stage) Option {
	return func(c *Candidate) { c.stage = stage }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(c *Candidate) { c.createdAt = createdAt }
}

// Candidate is an applicant moving through the hiring pipeline of one
// posting.
type Candidate struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	postingID uuid.UUID
	stage     Stage
	createdAt time.Time
}

func New(firstName, lastName, email string, postingID uuid.UUID, opts ...Option) Candidate {
	c := Candidate{
		id:        uuid.New(),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		postingID: postingID,
		stage:     StageApplied,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func Hydrate(
	id uuid.UUID,
	firstName, lastName, email string,
	postingID uuid.UUID,
	stage Stage,
	createdAt time.Time,
) Candidate {
	return Candidate{
		id:        id,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		postingID: postingID,
		stage:     stage,
		createdAt: createdAt,
	}
}

func (c Candidate) ID() uuid.UUID        { return c.id }
func (c Candidate) FirstName() string    { return c.firstName }
func (c Candidate) LastName() string     { return c.lastName }
func (c Candidate) Email() string        { return c.email }
func (c Candidate) PostingID() uuid.UUID { return c.postingID }
func (c Candidate) Stage() Stage         { return c.stage }
func (c Candidate) CreatedAt() time.Time { return c.createdAt }
func (c Candidate) IsZero() bool         { return c.id == uuid.Nil }

func (c Candidate) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// MoveTo applies one pipeline transition. An illegal move is refused as a
// data error and leaves the candidate unchanged.
func (c Candidate) MoveTo(target Stage) (Candidate, error) {
	if !c.stage.CanMoveTo(target) {
		return Candidate{}, ErrIllegalTransition.WithDetail(
			"cannot move from %s to %s", c.stage, target,
		)
	}
	c.stage = target
	return c, nil
}

// Advance moves the candidate one step forward in the pipeline.
func (c Candidate) Advance() (Candidate, error) {
	target, ok := nextStage[c.stage]
	if !ok {
		return Candidate{}, ErrIllegalTransition.WithDetail(
			"no forward step from %s", c.stage,
		)
	}
	return c.MoveTo(target)
}

func (c Candidate) Reject() (Candidate, error) {
	return c.MoveTo(StageRejected)
}
