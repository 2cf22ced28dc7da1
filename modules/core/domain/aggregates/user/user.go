package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	language     UILanguage
	role         string
	status       Status
	createdAt    time.Time
}

type Option func(*User)

func WithID(id uuid.UUID) Option {
	return func(u *User) { u.id = id }
}

func WithRole(role string) Option {
	return func(u *User) { u.role = strings.TrimSpace(role) }
}

func WithStatus(status Status) Option {
	return func(u *User) { u.status = status }
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *User) { u.createdAt = createdAt }
}

func New(firstName, lastName, email string, language UILanguage, opts ...Option) User {
	u := User{
		id:        uuid.New(),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		language:  language,
		status:    StatusActive,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func Hydrate(
	id uuid.UUID,
	firstName, lastName, email, passwordHash string,
	language UILanguage,
	role string,
	status Status,
	createdAt time.Time,
) User {
	return User{
		id:           id,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		email:        strings.TrimSpace(email),
		passwordHash: passwordHash,
		language:     language,
		role:         role,
		status:       status,
		createdAt:    createdAt,
	}
}

func (u User) ID() uuid.UUID          { return u.id }
func (u User) FirstName() string      { return u.firstName }
func (u User) LastName() string       { return u.lastName }
func (u User) Email() string          { return u.email }
func (u User) PasswordHash() string   { return u.passwordHash }
func (u User) Language() UILanguage   { return u.language }
func (u User) Role() string           { return u.role }
func (u User) Status() Status         { return u.status }
func (u User) CreatedAt() time.Time   { return u.createdAt }
func (u User) IsActive() bool         { return u.status == StatusActive }
func (u User) FullName() string       { return strings.TrimSpace(u.firstName + " " + u.lastName) }
func (u User) IsZero() bool           { return u.id == uuid.Nil }

func (u User) SetName(firstName, lastName string) User {
	u.firstName = strings.TrimSpace(firstName)
	u.lastName = strings.TrimSpace(lastName)
	return u
}

func (u User) SetEmail(email string) User {
	u.email = strings.TrimSpace(email)
	return u
}

func (u User) SetLanguage(language UILanguage) User {
	u.language = language
	return u
}

func (u User) SetRole(role string) User {
	u.role = strings.TrimSpace(role)
	return u
}

func (u User) SetStatus(status Status) User {
	u.status = status
	return u
}

// ToggleActive flips between active and inactive; pending resolves to active.
func (u User) ToggleActive() User {
	if u.status == StatusActive {
		u.status = StatusInactive
	} else {
		u.status = StatusActive
	}
	return u
}

// SetPassword stores only the bcrypt hash of the raw password.
func (u User) SetPassword(raw string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.passwordHash = string(hash)
	return u, nil
}

func (u User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(raw)) == nil
}
