package storage

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
)

// Storer maps the article entity onto a persistent document store.
type Storer interface {
	// Create validates the draft, applies field defaults and persists a new
	// record. Returns the stored article with its assigned id.
	Create(ctx context.Context, draft domain.Draft) (domain.Article, error)
	// Find returns every record matching the visibility filter, ordered by
	// editorial date descending with creation time as tiebreaker. A miss is
	// an empty slice, never an error.
	Find(ctx context.Context, filter sitequery.Filter) ([]domain.Article, error)
	// Update replaces the editable fields of the identified record.
	Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (domain.Article, error)
	// Delete removes the identified record. Hard delete, no tombstone.
	Delete(ctx context.Context, id uuid.UUID) error
}

type Type string

const (
	ES    Type = "es"
	PG         = "pg"
	InMem      = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// SortArticles orders newest editorial date first, ties broken by the most
// recently created record. Backends that cannot push the ordering into the
// store use this.
func SortArticles(articles []domain.Article) {
	slices.SortFunc(articles, func(a, b domain.Article) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// MatchesFilter evaluates a visibility filter against a single article the
// way the document store would: membership checks on the sites sequence,
// with records lacking the field matched only when the filter says so.
func MatchesFilter(a domain.Article, f sitequery.Filter) bool {
	if f.MatchAll {
		return true
	}
	if len(a.Sites) == 0 {
		return f.IncludeMissing
	}
	for _, site := range f.Contains {
		if !slices.Contains(a.Sites, site) {
			return false
		}
	}
	return true
}
