package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/apperr"
)

const (
	// DefaultSite is the destination every article belongs to unless told otherwise.
	DefaultSite = "rbiomeds"
	// PartnerSite is the second publishing destination.
	PartnerSite = "abc-international"

	DefaultCategory = "General"

	// PlaceholderImage is used when an article is created without an image URL.
	PlaceholderImage = "https://media.rbiomeds.com/articles/placeholder.png"
)

// Article is the sole persisted entity: a piece of editorial content flagged
// as published to one or more named sites.
type Article struct {
	ID          uuid.UUID
	Title       string
	Description string
	Image       string
	Category    string
	Sites       []string
	Date        time.Time
	CreatedAt   time.Time
}

// Draft carries the editable fields of an article as supplied by a caller.
// Zero values mean "not provided".
type Draft struct {
	Title       string
	Description string
	Image       string
	Category    string
	Sites       []string
	Date        time.Time
}

// NewArticle validates a draft and builds an article with creation defaults
// applied. The ID is left zero; the store assigns it on first save.
// CreatedAt is set to now and never changes afterwards.
func NewArticle(d Draft, now time.Time) (Article, error) {
	if d.Title == "" {
		return Article{}, apperr.NewValidation("title is required")
	}
	if d.Description == "" {
		return Article{}, apperr.NewValidation("description is required")
	}

	a := Article{
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Category:    d.Category,
		Sites:       d.Sites,
		Date:        d.Date,
		CreatedAt:   now,
	}
	if a.Image == "" {
		a.Image = PlaceholderImage
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if len(a.Sites) == 0 {
		a.Sites = []string{DefaultSite}
	}
	if a.Date.IsZero() {
		a.Date = now
	}
	return a, nil
}

// ApplyUpdate replaces the editable fields of a with the draft's values.
// Image and category fall back to their creation defaults when omitted, and
// an omitted sites list resets to the single-element default rather than
// keeping the stored value. An omitted date keeps the stored one. Title and
// description are only replaced when provided. ID and CreatedAt never change.
func (a Article) ApplyUpdate(d Draft) Article {
	if d.Title != "" {
		a.Title = d.Title
	}
	if d.Description != "" {
		a.Description = d.Description
	}

	a.Image = d.Image
	if a.Image == "" {
		a.Image = PlaceholderImage
	}
	a.Category = d.Category
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	a.Sites = d.Sites
	if len(a.Sites) == 0 {
		a.Sites = []string{DefaultSite}
	}
	if !d.Date.IsZero() {
		a.Date = d.Date
	}
	return a
}
