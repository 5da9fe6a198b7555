package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
)

func TestStorer_Create_AppliesDefaults(t *testing.T) {
	s := NewStorer()

	article, err := s.Create(context.Background(), domain.Draft{Title: "T", Description: "D"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, article.ID)
	assert.Equal(t, []string{domain.DefaultSite}, article.Sites)
	assert.Equal(t, domain.DefaultCategory, article.Category)
	assert.Equal(t, domain.PlaceholderImage, article.Image)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestStorer_Create_RejectsMissingFields(t *testing.T) {
	s := NewStorer()

	var ve *apperr.ValidationError
	_, err := s.Create(context.Background(), domain.Draft{Description: "D"})
	require.ErrorAs(t, err, &ve)
}

func TestStorer_Find_EmptyStoreIsEmptySlice(t *testing.T) {
	s := NewStorer()

	articles, err := s.Find(context.Background(), sitequery.Filter{MatchAll: true})
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestStorer_Find_FiltersBySiteMembership(t *testing.T) {
	s := NewStorer()
	ctx := context.Background()

	_, err := s.Create(ctx, domain.Draft{Title: "default-only", Description: "D"})
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.Draft{Title: "partner-only", Description: "D", Sites: []string{domain.PartnerSite}})
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.Draft{Title: "everywhere", Description: "D", Sites: []string{domain.DefaultSite, domain.PartnerSite}})
	require.NoError(t, err)

	reg := sitequery.DefaultRegistry()

	partner, err := s.Find(ctx, reg.Filter(domain.PartnerSite))
	require.NoError(t, err)
	titles := titlesOf(partner)
	assert.ElementsMatch(t, []string{"partner-only", "everywhere"}, titles)

	both, err := s.Find(ctx, reg.Filter(sitequery.AllSelector))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"everywhere"}, titlesOf(both))

	all, err := s.Find(ctx, reg.Filter(""))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStorer_Find_DefaultSiteIncludesLegacyRecords(t *testing.T) {
	s := NewStorer()
	ctx := context.Background()

	// A record written before the sites field existed.
	s.Seed(domain.Article{Title: "legacy", Description: "D", Date: time.Now(), CreatedAt: time.Now()})

	_, err := s.Create(ctx, domain.Draft{Title: "modern", Description: "D"})
	require.NoError(t, err)

	reg := sitequery.DefaultRegistry()

	articles, err := s.Find(ctx, reg.Filter(domain.DefaultSite))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"legacy", "modern"}, titlesOf(articles))

	// The legacy record stays invisible to every other selector.
	partner, err := s.Find(ctx, reg.Filter(domain.PartnerSite))
	require.NoError(t, err)
	assert.Empty(t, partner)
}

func TestStorer_Find_OrdersByDateThenCreation(t *testing.T) {
	s := NewStorer()

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.Local) }
	s.Seed(domain.Article{Title: "older", Date: day(1), CreatedAt: day(1), Sites: []string{domain.DefaultSite}})
	s.Seed(domain.Article{Title: "tie-early", Date: day(2), CreatedAt: day(1), Sites: []string{domain.DefaultSite}})
	s.Seed(domain.Article{Title: "tie-late", Date: day(2), CreatedAt: day(3), Sites: []string{domain.DefaultSite}})

	articles, err := s.Find(context.Background(), sitequery.Filter{MatchAll: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"tie-late", "tie-early", "older"}, titlesOf(articles))
}

func TestStorer_Update_ResetsOmittedSites(t *testing.T) {
	s := NewStorer()
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Draft{
		Title:       "T",
		Description: "D",
		Sites:       []string{domain.DefaultSite, domain.PartnerSite},
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, domain.Draft{Title: "T2"})
	require.NoError(t, err)

	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, []string{domain.DefaultSite}, updated.Sites)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestStorer_Update_MissingTarget(t *testing.T) {
	s := NewStorer()

	var nfe *apperr.NotFoundError
	_, err := s.Update(context.Background(), uuid.New(), domain.Draft{Title: "T"})
	require.ErrorAs(t, err, &nfe)
}

func TestStorer_Delete(t *testing.T) {
	s := NewStorer()
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Draft{Title: "T", Description: "D"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	articles, err := s.Find(ctx, sitequery.Filter{MatchAll: true})
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestStorer_Delete_MissingTargetIsNotSilent(t *testing.T) {
	s := NewStorer()

	var nfe *apperr.NotFoundError
	err := s.Delete(context.Background(), uuid.New())
	require.ErrorAs(t, err, &nfe)
}

func titlesOf(articles []domain.Article) []string {
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title)
	}
	return titles
}
