package signature

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusSigned   Status = "signed"
	StatusDeclined Status = "declined"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSigned, StatusDeclined:
		return true
	}
	return false
}

var ErrAlreadyResolved = serrors.NewError(
	"SIGNATURE_RESOLVED",
	"signature request already resolved",
	"",
)

// Record tracks one signature request on a generated document.
type Record struct {
	id        uuid.UUID
	document  string
	signer    string
	status    Status
	signedAt  time.Time
	createdAt time.Time
}

func New(document, signer string) Record {
	return Record{
		id:        uuid.New(),
		document:  strings.TrimSpace(document),
		signer:    strings.TrimSpace(signer),
		status:    StatusPending,
		createdAt: time.Now(),
	}
}

func Hydrate(id uuid.UUID, document, signer string, status Status, signedAt, createdAt time.Time) Record {
	return Record{
		id:        id,
		document:  strings.TrimSpace(document),
		signer:    strings.TrimSpace(signer),
		status:    status,
		signedAt:  signedAt,
		createdAt: createdAt,
	}
}

func (r Record) ID() uuid.UUID        { return r.id }
func (r Record) Document() string     { return r.document }
func (r Record) Signer() string       { return r.signer }
func (r Record) Status() Status       { return r.status }
func (r Record) SignedAt() time.Time  { return r.signedAt }
func (r Record) CreatedAt() time.Time { return r.createdAt }
func (r Record) IsZero() bool         { return r.id == uuid.Nil }

// Sign resolves a pending request. Resolving twice is a data error.
func (r Record) Sign(at time.Time) (Record, error) {
	if r.status != StatusPending {
		return Record{}, ErrAlreadyResolved
	}
	r.status = StatusSigned
	r.signedAt = at
	return r, nil
}

func (r Record) Decline() (Record, error) {
	if r.status != StatusPending {
		return Record{}, ErrAlreadyResolved
	}
	r.status = StatusDeclined
	return r, nil
}
