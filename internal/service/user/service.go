// Package user implements profile reads and updates plus the admin role
// change operation.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

const maxNameLen = 200

// userRepo defines the repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) error
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// Get returns the actor's own profile.
func (s *Service) Get(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("user.Get: %w", domain.ErrUnauthorized)
	}

	u, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// UpdateProfileInput holds parameters for a profile update.
type UpdateProfileInput struct {
	Name      *string
	AvatarURL *string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	if i.Name != nil {
		if *i.Name == "" {
			return domain.NewValidationError("name", "must not be empty")
		}
		if len(*i.Name) > maxNameLen {
			return domain.NewValidationError("name", "too long")
		}
	}
	return nil
}

// UpdateProfile updates the actor's own name and avatar.
func (s *Service) UpdateProfile(ctx context.Context, actor domain.Actor, input UpdateProfileInput) (*domain.User, error) {
	if actor.IsAnonymous() {
		return nil, fmt.Errorf("user.UpdateProfile: %w", domain.ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdateProfile(ctx, actor.ID, input.Name, input.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.Info("profile updated", "user_id", actor.ID)
	return u, nil
}

// SetRole changes another user's role. Admin only; admins cannot demote
// themselves.
func (s *Service) SetRole(ctx context.Context, actor domain.Actor, id uuid.UUID, role domain.Role) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("user.SetRole: %w", domain.ErrForbidden)
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "unknown role")
	}
	if actor.ID == id {
		return domain.NewValidationError("id", "cannot change own role")
	}

	if _, err := s.users.GetByID(ctx, id); err != nil {
		return fmt.Errorf("user.SetRole: %w", err)
	}
	if err := s.users.SetRole(ctx, id, role); err != nil {
		return fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.Info("role changed", "user_id", id, "role", role.String())
	return nil
}
