package project

import (
	"github.com/launchhub/launchpad-backend/internal/domain"
)

const (
	maxTitleLen   = 300
	maxSummaryLen = 1000
	maxStackLen   = 20
	maxReasonLen  = 2000
	maxNotesLen   = 2000
	maxMediaBytes = 10 << 20 // 10 MiB
)

// CreateInput holds parameters for creating a project.
type CreateInput struct {
	Title       string
	Summary     string
	TeamName    string
	Description *string
	TeamMembers *string
	DemoLink    *string
	RepoLink    *string
	Stack       []string
	Country     *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	} else if domain.Slugify(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must contain letters or digits"})
	}

	if i.Summary == "" {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "required"})
	} else if len(i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
	}

	if i.TeamName == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "required"})
	}
	if len(i.Stack) > maxStackLen {
		errs = append(errs, domain.FieldError{Field: "stack", Message: "too many entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial project update.
type UpdateInput struct {
	domain.ProjectUpdateParams
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Summary != nil {
		if *i.Summary == "" {
			errs = append(errs, domain.FieldError{Field: "summary", Message: "must not be empty"})
		} else if len(*i.Summary) > maxSummaryLen {
			errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
		}
	}
	if i.TeamName != nil && *i.TeamName == "" {
		errs = append(errs, domain.FieldError{Field: "team_name", Message: "must not be empty"})
	}
	if len(i.Stack) > maxStackLen {
		errs = append(errs, domain.FieldError{Field: "stack", Message: "too many entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds parameters for project approval.
type ApproveInput struct {
	Featured bool
}

// ModerateInput holds parameters for reject and request-changes.
type ModerateInput struct {
	Notes string
}

// Validate validates the moderation input.
func (i ModerateInput) Validate() error {
	var errs []domain.FieldError

	if i.Notes == "" {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "required"})
	} else if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttachMediaInput holds parameters for attaching media to a project.
type AttachMediaInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Type        domain.MediaType
	SetAsCover  bool
}

// Validate validates the media input.
func (i AttachMediaInput) Validate() error {
	var errs []domain.FieldError

	if i.FileName == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "required"})
	} else if len(i.Data) > maxMediaBytes {
		errs = append(errs, domain.FieldError{Field: "data", Message: "file too large"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be IMAGE or VIDEO"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FlagInput holds parameters for reporting a project.
type FlagInput struct {
	Reason string
}

// Validate validates the flag input.
func (i FlagInput) Validate() error {
	var errs []domain.FieldError

	if i.Reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if len(i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
