package domain

import (
	"time"

	"github.com/google/uuid"
)

// InternshipApplication is an applicant record. It has no slug and no
// public status set: only the owner and reviewers/admins may read it.
type InternshipApplication struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	FullName    *string
	Email       *string
	University  *string
	ResumeURL   *string
	CoverLetter *string
	Score       *int
	Status      Status
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Workflow returns the workflow view of the application.
func (a *InternshipApplication) Workflow() WorkflowRecord {
	return WorkflowRecord{Kind: KindInternship, OwnerID: a.OwnerID, Status: a.Status}
}

// Access returns the authorization view of the application.
func (a *InternshipApplication) Access() AccessRecord {
	return AccessRecord{Kind: KindInternship, OwnerID: a.OwnerID, Status: a.Status}
}

// InternshipUpdateParams is a partial update: nil means "leave unchanged".
type InternshipUpdateParams struct {
	FullName    *string
	Email       *string
	University  *string
	ResumeURL   *string
	CoverLetter *string
}

// InternshipFilter contains filtering parameters for admin listings.
type InternshipFilter struct {
	Status   *Status
	ScoreMin *int
	Page     PageRequest
}
