package dto

import (
	"time"

	"github.com/rbiomeds/newsdesk/internal/caldate"
	"github.com/rbiomeds/newsdesk/internal/domain"
)

// Article is the public JSON shape. The store's internal identifier is
// rendered as an opaque id string and the editorial date as a display
// string; store-internal versioning metadata is never exposed.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Sites       []string  `json:"sites"`
	Date        string    `json:"date" example:"March 05, 2024"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromArticle(a domain.Article) Article {
	return Article{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Category:    a.Category,
		Sites:       a.Sites,
		Date:        caldate.Display(a.Date),
		CreatedAt:   a.CreatedAt,
	}
}

func FromArticles(articles []domain.Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromArticle(a))
	}
	return out
}
