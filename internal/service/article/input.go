package article

import (
	"time"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

const (
	maxTitleLen   = 300
	maxSummaryLen = 1000
	maxTagCount   = 10
)

// CreateInput holds parameters for creating an article draft.
type CreateInput struct {
	Title           string
	Content         string
	Summary         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
	CategorySlug    *string
	CategoryName    *string
	Tags            []string
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

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Summary != nil && len(*i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
	}
	if len(i.Tags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial article update.
type UpdateInput struct {
	domain.ArticleUpdateParams
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
	if i.Content != nil && *i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}
	if i.Summary != nil && len(*i.Summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long"})
	}
	if len(i.Tags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ScheduleInput holds parameters for scheduling an article.
type ScheduleInput struct {
	PublishAt time.Time
}

// Validate validates the schedule input.
func (i ScheduleInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.PublishAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "publish_at", Message: "required"})
	} else if !i.PublishAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "publish_at", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
