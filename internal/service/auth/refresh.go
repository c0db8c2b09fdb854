package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/launchhub/launchpad-backend/internal/auth"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Expired, revoked and unknown tokens all return
// ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Refresh: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	if stored.IsRevoked() || stored.IsExpired(time.Now()) {
		return nil, fmt.Errorf("auth.Refresh: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("auth.Refresh: account disabled: %w", domain.ErrUnauthorized)
	}

	// Rotation: old token out, new token in, atomically.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.Revoke(txCtx, stored.ID); err != nil {
			return fmt.Errorf("revoke old token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	return result, nil
}
