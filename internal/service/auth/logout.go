package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/launchhub/launchpad-backend/internal/auth"
	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Logout revokes the presented refresh token. Unknown or already revoked
// tokens are treated as success: logout is idempotent.
func (s *Service) Logout(ctx context.Context, input RefreshInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if err := s.tokens.Revoke(ctx, stored.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.Info("user logged out", "user_id", stored.UserID)
	return nil
}

// LogoutAll revokes every live refresh token for the user.
func (s *Service) LogoutAll(ctx context.Context, actor domain.Actor) error {
	if actor.IsAnonymous() {
		return fmt.Errorf("auth.LogoutAll: %w", domain.ErrUnauthorized)
	}
	if err := s.tokens.RevokeAllForUser(ctx, actor.ID); err != nil {
		return fmt.Errorf("auth.LogoutAll: %w", err)
	}
	s.log.Info("all sessions revoked", "user_id", actor.ID)
	return nil
}
