// Package token implements refresh token persistence using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/adapter/postgres"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const insertToken = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tokenColumns

const getTokenByHash = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1`

const revokeToken = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllForUser = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpired = `
DELETE FROM refresh_tokens
WHERE expires_at < now() OR revoked_at IS NOT NULL`

// Create stores a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	row := r.q(ctx).QueryRow(ctx, insertToken, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	out, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.ID)
	}
	return out, nil
}

// GetByHash returns a token by its SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	out, err := scanToken(r.q(ctx).QueryRow(ctx, getTokenByHash, hash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return out, nil
}

// Revoke marks a token as revoked. Revoking an already revoked token
// returns ErrNotFound.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, revokeToken, id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh_token %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RevokeAllForUser revokes every live token belonging to the user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.q(ctx).Exec(ctx, revokeAllForUser, userID)
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes expired and revoked tokens and returns the
// number deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := r.q(ctx).Exec(ctx, deleteExpired)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
