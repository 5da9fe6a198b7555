package in_mem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
	"github.com/rbiomeds/newsdesk/internal/storage"
)

// Storer keeps articles in a process-local map. Used by tests and local dev;
// it implements the full store contract, including the legacy missing-sites
// arm of the visibility filter.
type Storer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Article
}

func NewStorer() *Storer {
	return &Storer{
		storage: make(map[uuid.UUID]domain.Article),
	}
}

func (s *Storer) Create(ctx context.Context, draft domain.Draft) (domain.Article, error) {
	article, err := domain.NewArticle(draft, time.Now())
	if err != nil {
		return domain.Article{}, err
	}
	article.ID = uuid.New()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[article.ID] = article

	return article, nil
}

func (s *Storer) Find(ctx context.Context, filter sitequery.Filter) ([]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	articles := make([]domain.Article, 0, len(s.storage))
	for _, article := range s.storage {
		if storage.MatchesFilter(article, filter) {
			articles = append(articles, article)
		}
	}

	storage.SortArticles(articles)
	return articles, nil
}

func (s *Storer) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (domain.Article, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	existing, ok := s.storage[id]
	if !ok {
		return domain.Article{}, apperr.NewNotFound("article", id.String())
	}

	updated := existing.ApplyUpdate(draft)
	s.storage[id] = updated
	return updated, nil
}

func (s *Storer) Delete(ctx context.Context, id uuid.UUID) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[id]; !ok {
		return apperr.NewNotFound("article", id.String())
	}
	delete(s.storage, id)
	return nil
}

// Seed inserts an article as-is, bypassing validation and defaults. Tests
// use it to create legacy records that have no sites field.
func (s *Storer) Seed(article domain.Article) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	s.storage[article.ID] = article
}
