// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

const userColumns = `id, email, password_hash, role, name, avatar_url, is_active, created_at, updated_at`

const insertUser = `
INSERT INTO users (id, email, password_hash, role, name, avatar_url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + userColumns

const getUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const updateUserProfile = `
UPDATE users
SET name = COALESCE($2, name),
    avatar_url = COALESCE($3, avatar_url),
    updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const setUserRole = `
UPDATE users
SET role = $1, updated_at = now()
WHERE id = $2`

// Create inserts a new user and returns the persisted record.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := r.q(ctx).QueryRow(ctx, insertUser,
		u.ID, u.Email, u.PasswordHash, u.Role, u.Name, u.AvatarURL, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)

	out, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	out, err := scanUser(r.q(ctx).QueryRow(ctx, getUserByID, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	out, err := scanUser(r.q(ctx).QueryRow(ctx, getUserByEmail, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return out, nil
}

// UpdateProfile modifies name and avatar_url. Nil fields are left unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error) {
	out, err := scanUser(r.q(ctx).QueryRow(ctx, updateUserProfile, id, name, avatarURL))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out, nil
}

// SetRole changes a user's role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	tag, err := r.q(ctx).Exec(ctx, setUserRole, role, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
