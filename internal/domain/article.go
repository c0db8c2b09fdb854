package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is an editorial record. Category and tags are carried denormalized
// as slugs; they are opaque to the workflow engine.
type Article struct {
	ID              uuid.UUID
	Slug            string
	OwnerID         uuid.UUID
	Title           string
	Content         string
	Summary         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
	CategorySlug    *string
	CategoryName    *string
	Tags            []string
	Status          Status
	PublishedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Workflow returns the workflow view of the article.
func (a *Article) Workflow() WorkflowRecord {
	return WorkflowRecord{Kind: KindArticle, OwnerID: a.OwnerID, Status: a.Status}
}

// Access returns the authorization view of the article.
func (a *Article) Access() AccessRecord {
	return AccessRecord{Kind: KindArticle, OwnerID: a.OwnerID, Status: a.Status}
}

// ArticleUpdateParams is a partial update: nil means "leave unchanged".
// Slug is filled in by the service when a title change produces a new slug.
type ArticleUpdateParams struct {
	Title           *string
	Slug            *string
	Content         *string
	Summary         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
	CategorySlug    *string
	CategoryName    *string
	Tags            []string // nil = unchanged, empty = clear
}

// ArticleFilter contains filtering/pagination parameters for article listings.
type ArticleFilter struct {
	Tag        *string
	Category   *string
	Status     *Status // admin-only; public listings are pinned to PUBLISHED
	PublicOnly bool    // hide rows whose published_at is still in the future
	Page       PageRequest
}
