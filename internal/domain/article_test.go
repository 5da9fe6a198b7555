package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbiomeds/newsdesk/internal/apperr"
)

func TestNewArticle_AppliesDefaults(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 30, 0, 0, time.Local)

	article, err := NewArticle(Draft{Title: "T", Description: "D"}, now)
	require.NoError(t, err)

	assert.Equal(t, PlaceholderImage, article.Image)
	assert.Equal(t, DefaultCategory, article.Category)
	assert.Equal(t, []string{DefaultSite}, article.Sites)
	assert.Equal(t, now, article.Date)
	assert.Equal(t, now, article.CreatedAt)
}

func TestNewArticle_KeepsProvidedFields(t *testing.T) {
	now := time.Now()
	date := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)

	article, err := NewArticle(Draft{
		Title:       "T",
		Description: "D",
		Image:       "https://cdn.example.com/cover.png",
		Category:    "Research",
		Sites:       []string{PartnerSite},
		Date:        date,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/cover.png", article.Image)
	assert.Equal(t, "Research", article.Category)
	assert.Equal(t, []string{PartnerSite}, article.Sites)
	assert.Equal(t, date, article.Date)
}

func TestNewArticle_RequiresTitleAndDescription(t *testing.T) {
	now := time.Now()

	var ve *apperr.ValidationError

	_, err := NewArticle(Draft{Description: "D"}, now)
	require.ErrorAs(t, err, &ve)

	_, err = NewArticle(Draft{Title: "T"}, now)
	require.ErrorAs(t, err, &ve)
}

func TestNewArticle_DuplicateSitesAreKept(t *testing.T) {
	article, err := NewArticle(Draft{
		Title:       "T",
		Description: "D",
		Sites:       []string{DefaultSite, DefaultSite},
	}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultSite, DefaultSite}, article.Sites)
}

func TestApplyUpdate_ResetsOmittedSitesToDefault(t *testing.T) {
	article, err := NewArticle(Draft{
		Title:       "T",
		Description: "D",
		Sites:       []string{DefaultSite, PartnerSite},
	}, time.Now())
	require.NoError(t, err)

	updated := article.ApplyUpdate(Draft{Title: "T2", Description: "D2"})

	assert.Equal(t, []string{DefaultSite}, updated.Sites)
}

func TestApplyUpdate_KeepsDateWhenOmitted(t *testing.T) {
	date := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	article, err := NewArticle(Draft{Title: "T", Description: "D", Date: date}, time.Now())
	require.NoError(t, err)

	updated := article.ApplyUpdate(Draft{Title: "T2"})

	assert.Equal(t, date, updated.Date)
}

func TestApplyUpdate_ReplacesDateWhenProvided(t *testing.T) {
	article, err := NewArticle(Draft{Title: "T", Description: "D"}, time.Now())
	require.NoError(t, err)

	newDate := time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)
	updated := article.ApplyUpdate(Draft{Date: newDate})

	assert.Equal(t, newDate, updated.Date)
}

func TestApplyUpdate_RedefaultsImageAndCategory(t *testing.T) {
	article, err := NewArticle(Draft{
		Title:       "T",
		Description: "D",
		Image:       "https://cdn.example.com/cover.png",
		Category:    "Research",
	}, time.Now())
	require.NoError(t, err)

	updated := article.ApplyUpdate(Draft{})

	assert.Equal(t, PlaceholderImage, updated.Image)
	assert.Equal(t, DefaultCategory, updated.Category)
}

func TestApplyUpdate_NeverTouchesIdentityFields(t *testing.T) {
	now := time.Now()
	article, err := NewArticle(Draft{Title: "T", Description: "D"}, now)
	require.NoError(t, err)

	updated := article.ApplyUpdate(Draft{Title: "T2"})

	assert.Equal(t, article.ID, updated.ID)
	assert.Equal(t, now, updated.CreatedAt)
}
