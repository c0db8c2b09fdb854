package internship

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxCoverLetterLen = 10000
	minScore          = 0
	maxScore          = 100
)

// ApplyInput holds parameters for starting an application draft.
type ApplyInput struct {
	FullName    *string
	Email       *string
	University  *string
	ResumeURL   *string
	CoverLetter *string
}

// Validate validates the apply input.
func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil && len(*i.FullName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.Email != nil {
		if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}
	if i.CoverLetter != nil && len(*i.CoverLetter) > maxCoverLetterLen {
		errs = append(errs, domain.FieldError{Field: "cover_letter", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial application update.
type UpdateInput struct {
	domain.InternshipUpdateParams
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil && len(*i.FullName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.Email != nil {
		if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}
	if i.CoverLetter != nil && len(*i.CoverLetter) > maxCoverLetterLen {
		errs = append(errs, domain.FieldError{Field: "cover_letter", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ScoreInput holds the reviewer score for an application.
type ScoreInput struct {
	Score int
}

// Validate validates the score input.
func (i ScoreInput) Validate() error {
	if i.Score < minScore || i.Score > maxScore {
		return domain.NewValidationError("score", "must be between 0 and 100")
	}
	return nil
}

// AdvanceInput holds parameters for moving an application through the
// pipeline. Target must be a known application status.
type AdvanceInput struct {
	Target domain.Status
}

// Validate validates the advance input.
func (i AdvanceInput) Validate() error {
	if i.Target == "" {
		return domain.NewValidationError("target", "required")
	}
	if !domain.KnownStatus(domain.KindInternship, i.Target) {
		return domain.NewValidationError("target", "unknown status")
	}
	return nil
}

// BulkStatusInput holds parameters for a bulk status move.
type BulkStatusInput struct {
	IDs    []uuid.UUID
	Target domain.Status
}

// Validate validates the bulk input against the configured ID cap.
func (i BulkStatusInput) Validate(maxIDs int) error {
	var errs []domain.FieldError

	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "required"})
	} else if len(i.IDs) > maxIDs {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "too many ids"})
	}
	if i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	} else if !domain.KnownStatus(domain.KindInternship, i.Target) {
		errs = append(errs, domain.FieldError{Field: "target", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
