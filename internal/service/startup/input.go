package startup

import (
	"github.com/launchhub/launchpad-backend/internal/domain"
)

const (
	maxNameLen  = 200
	maxPitchLen = 2000
	maxTagCount = 10
	maxNotesLen = 2000
)

// CreateInput holds parameters for creating a startup entry.
type CreateInput struct {
	Name     string
	Pitch    *string
	Industry *string
	Stage    *string
	Country  *string
	Tags     []string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	} else if domain.Slugify(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must contain letters or digits"})
	}

	if i.Pitch != nil && len(*i.Pitch) > maxPitchLen {
		errs = append(errs, domain.FieldError{Field: "pitch", Message: "too long"})
	}
	if len(i.Tags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial startup update.
type UpdateInput struct {
	domain.StartupUpdateParams
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Pitch != nil && len(*i.Pitch) > maxPitchLen {
		errs = append(errs, domain.FieldError{Field: "pitch", Message: "too long"})
	}
	if len(i.Tags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecisionInput holds parameters for the reviewer decision on a submitted
// startup. Target must be a known startup status; notes are optional.
type DecisionInput struct {
	Target domain.Status
	Notes  string
}

// Validate validates the decision input.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	} else if !domain.KnownStatus(domain.KindStartup, i.Target) {
		errs = append(errs, domain.FieldError{Field: "target", Message: "unknown status"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
