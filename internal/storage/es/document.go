package es

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/domain"
)

// document is the article shape persisted in the index. Sites is omitted
// when empty so records written before the field existed and records written
// now share one mapping.
type document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Sites       []string  `json:"sites,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDocument(a domain.Article) document {
	return document{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Category:    a.Category,
		Sites:       a.Sites,
		Date:        a.Date,
		CreatedAt:   a.CreatedAt,
	}
}

func (d document) toArticle() (domain.Article, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to parse article id %q: %w", d.ID, err)
	}
	return domain.Article{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Category:    d.Category,
		Sites:       d.Sites,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}, nil
}
