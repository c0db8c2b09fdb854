package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a team submission moderated by admins.
type Project struct {
	ID          uuid.UUID
	Slug        string
	OwnerID     uuid.UUID
	Title       string
	Summary     string
	TeamName    string
	Description *string
	TeamMembers *string
	DemoLink    *string
	RepoLink    *string
	Stack       []string
	Country     *string
	CoverImage  *string
	Status      Status
	SubmittedAt *time.Time
	FeaturedAt  *time.Time
	ModNotes    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Workflow returns the workflow view of the project.
func (p *Project) Workflow() WorkflowRecord {
	return WorkflowRecord{Kind: KindProject, OwnerID: p.OwnerID, Status: p.Status}
}

// Access returns the authorization view of the project.
func (p *Project) Access() AccessRecord {
	return AccessRecord{Kind: KindProject, OwnerID: p.OwnerID, Status: p.Status}
}

// ProjectMedia is an attachment on a project. URLs come from the media
// store; this layer treats them as opaque.
type ProjectMedia struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	URL       string
	Type      MediaType
	CreatedAt time.Time
}

// ProjectFlag is a user-submitted report against a project.
type ProjectFlag struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Reason    string
	Resolved  bool
	CreatedAt time.Time
}

// ProjectUpdateParams is a partial update: nil means "leave unchanged".
type ProjectUpdateParams struct {
	Title       *string
	Slug        *string // filled in by the service when a title change produces a new slug
	Summary     *string
	TeamName    *string
	Description *string
	TeamMembers *string
	DemoLink    *string
	RepoLink    *string
	Stack       []string // nil = unchanged
	Country     *string
}

// ProjectFilter contains filtering/pagination parameters for project listings.
type ProjectFilter struct {
	Tag        *string // matches a stack tag slug
	Team       *string // case-insensitive substring on team name
	Stack      *string // stack array membership
	Country    *string
	Status     *Status  // admin-only
	Statuses   []Status // status set, used to pin public listings
	AdminOrder bool     // review-queue order instead of featured-first
	Page       PageRequest
}
