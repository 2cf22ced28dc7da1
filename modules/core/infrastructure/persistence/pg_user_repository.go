package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

const (
	selectUserColumns = `id, first_name, last_name, email, password_hash, language, role, status, created_at`

	insertUserQuery = `
		INSERT INTO users (id, first_name, last_name, email, password_hash, language, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateUserQuery = `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password_hash = $5,
		    language = $6, role = $7, status = $8
		WHERE id = $1`
)

// PgUserRepository is the Postgres persistence collaborator behind the same
// interface as the in-memory repository. Sort state is applied at query
// time, mirroring the list-model contract.
type PgUserRepository struct {
	pool    *pgxpool.Pool
	sortKey string
	sortDir crud.SortDirection
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{
		pool:    pool,
		sortKey: "createdAt",
		sortDir: crud.SortAsc,
	}
}

var pgUserSortColumns = map[string]string{
	"name":      "first_name",
	"email":     "email",
	"createdAt": "created_at",
}

func (r *PgUserRepository) List(ctx context.Context, params *user.FindParams) ([]user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users`, selectUserColumns)
	args := []any{}

	if params != nil && params.Query.Search != "" {
		query += ` WHERE (first_name || ' ' || last_name) ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+params.Query.Search+"%")
	}

	column := pgUserSortColumns[r.sortKey]
	if column == "" {
		column = "created_at"
	}
	dir := "ASC"
	if r.sortDir == crud.SortDesc {
		dir = "DESC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, column, dir)

	if params != nil && params.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, params.Limit, params.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, selectUserColumns), id)
	return scanUserRow(row)
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE lower(email) = lower($1)`, selectUserColumns), email)
	return scanUserRow(row)
}

func (r *PgUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	_, err := r.pool.Exec(ctx, insertUserQuery,
		u.ID(), u.FirstName(), u.LastName(), u.Email(), u.PasswordHash(),
		string(u.Language()), u.Role(), string(u.Status()), u.CreatedAt(),
	)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *PgUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	tag, err := r.pool.Exec(ctx, updateUserQuery,
		u.ID(), u.FirstName(), u.LastName(), u.Email(), u.PasswordHash(),
		string(u.Language()), u.Role(), string(u.Status()),
	)
	if err != nil {
		return user.User{}, err
	}
	if tag.RowsAffected() == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *PgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *PgUserRepository) ToggleActive(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	return r.Update(ctx, u.ToggleActive())
}

func (r *PgUserRepository) SortBy(key string, direction ...crud.SortDirection) error {
	if _, ok := pgUserSortColumns[key]; !ok {
		return fmt.Errorf("no sort key %q", key)
	}
	switch {
	case len(direction) > 0:
		r.sortDir = direction[0]
	case r.sortKey == key:
		if r.sortDir == crud.SortAsc {
			r.sortDir = crud.SortDesc
		} else {
			r.sortDir = crud.SortAsc
		}
	default:
		r.sortDir = crud.SortAsc
	}
	r.sortKey = key
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var (
		id           uuid.UUID
		firstName    string
		lastName     string
		email        string
		passwordHash string
		language     string
		role         string
		status       string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &firstName, &lastName, &email, &passwordHash,
		&language, &role, &status, &createdAt); err != nil {
		return user.User{}, err
	}
	return user.Hydrate(
		id, firstName, lastName, email, passwordHash,
		user.UILanguage(language), role, user.Status(status), createdAt,
	), nil
}

func scanUserRow(row rowScanner) (user.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
