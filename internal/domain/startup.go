package domain

import (
	"time"

	"github.com/google/uuid"
)

// Startup is a directory entry reviewed by reviewers/admins.
type Startup struct {
	ID          uuid.UUID
	Slug        string
	OwnerID     uuid.UUID
	Name        string
	Pitch       *string
	Industry    *string
	Stage       *string
	Country     *string
	Tags        []string
	Featured    bool
	Status      Status
	SubmittedAt *time.Time
	ModNotes    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Workflow returns the workflow view of the startup.
func (s *Startup) Workflow() WorkflowRecord {
	return WorkflowRecord{Kind: KindStartup, OwnerID: s.OwnerID, Status: s.Status}
}

// Access returns the authorization view of the startup.
func (s *Startup) Access() AccessRecord {
	return AccessRecord{Kind: KindStartup, OwnerID: s.OwnerID, Status: s.Status}
}

// StartupUpdateParams is a partial update: nil means "leave unchanged".
type StartupUpdateParams struct {
	Name     *string
	Pitch    *string
	Industry *string
	Stage    *string
	Country  *string
	Tags     []string // nil = unchanged
}

// StartupFilter contains filtering parameters for the startup directory.
type StartupFilter struct {
	Tag      *string
	Stage    *string
	Country  *string
	Industry *string
	Status   *Status // reviewer/admin only
	Page     PageRequest
}
