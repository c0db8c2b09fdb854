package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// AttachMedia uploads a file to the media store and records it against the
// project. Only the owner or an admin may attach media. The stored URL
// becomes the project cover image when SetAsCover is set, or when the
// upload is the first image on a project without a cover.
func (s *Service) AttachMedia(ctx context.Context, actor domain.Actor, projectID uuid.UUID, input AttachMediaInput) (*domain.ProjectMedia, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.AttachMedia: %w", err)
	}
	if err := authorize(actor, current.Access(), domain.ActionUpdate); err != nil {
		return nil, fmt.Errorf("project.AttachMedia: %w", err)
	}

	url, err := s.media.Store(ctx, input.FileName, input.ContentType, input.Data)
	if err != nil {
		return nil, fmt.Errorf("project.AttachMedia store: %w", err)
	}

	media := &domain.ProjectMedia{
		ID:        uuid.New(),
		ProjectID: projectID,
		URL:       url,
		Type:      input.Type,
		CreatedAt: time.Now(),
	}
	created, err := s.projects.AddMedia(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("project.AttachMedia: %w", err)
	}

	if input.SetAsCover || (input.Type == domain.MediaImage && current.CoverImage == nil) {
		if err := s.projects.SetCoverImage(ctx, projectID, url); err != nil {
			return nil, fmt.Errorf("project.AttachMedia set cover: %w", err)
		}
	}

	s.log.Info("media attached", "project_id", projectID, "media_id", created.ID, "type", created.Type.String())
	return created, nil
}

// ListMedia returns the media attached to a project, subject to the same
// visibility rules as reading the project itself.
func (s *Service) ListMedia(ctx context.Context, actor domain.Actor, projectID uuid.UUID) ([]domain.ProjectMedia, error) {
	current, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListMedia: %w", err)
	}
	if err := authorize(actor, current.Access(), domain.ActionRead); err != nil {
		return nil, fmt.Errorf("project.ListMedia: %w", err)
	}

	media, err := s.projects.ListMedia(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListMedia: %w", err)
	}
	return media, nil
}
