package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/result"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
)

// maxResults caps a single listing. There is no pagination on the API, so
// this bounds the search window instead.
const maxResults = 1000

// Storer persists articles in an Elasticsearch index, one document per
// article, document id equal to the article id.
type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (s *Storer) Create(ctx context.Context, draft domain.Draft) (domain.Article, error) {
	article, err := domain.NewArticle(draft, time.Now())
	if err != nil {
		return domain.Article{}, err
	}
	article.ID = uuid.New()

	if err := s.index(ctx, article); err != nil {
		return domain.Article{}, err
	}

	slog.Info("Article created", "id", article.ID, "index", s.indexName)
	return article, nil
}

func (s *Storer) Find(ctx context.Context, filter sitequery.Filter) ([]domain.Article, error) {
	sortOrderDesc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(buildQuery(filter)).
		Size(maxResults).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"date": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode search hit: %w", err)
		}
		article, err := doc.toArticle()
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func (s *Storer) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (domain.Article, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	updated := existing.ApplyUpdate(draft)
	if err := s.index(ctx, updated); err != nil {
		return domain.Article{}, err
	}

	slog.Info("Article updated", "id", id, "index", s.indexName)
	return updated, nil
}

func (s *Storer) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.client.Delete(s.indexName, id.String()).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		if isNotFound(err) {
			return apperr.NewNotFound("article", id.String())
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if res.Result == result.Notfound {
		return apperr.NewNotFound("article", id.String())
	}

	slog.Info("Article deleted", "id", id, "index", s.indexName)
	return nil
}

func (s *Storer) get(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.Article{}, apperr.NewNotFound("article", id.String())
		}
		return domain.Article{}, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found {
		return domain.Article{}, apperr.NewNotFound("article", id.String())
	}

	var doc document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return domain.Article{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc.toArticle()
}

// index writes the full document, replacing any previous version. Writes
// refresh immediately so a following read observes them.
func (s *Storer) index(ctx context.Context, article domain.Article) error {
	doc := toDocument(article)
	_, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	return nil
}

// buildQuery renders the visibility filter as a bool query. Membership
// checks become term filters on the sites keyword field; the legacy arm
// matches documents with no sites field at all.
func buildQuery(filter sitequery.Filter) *types.Query {
	if filter.MatchAll {
		return &types.Query{MatchAll: &types.MatchAllQuery{}}
	}

	musts := make([]types.Query, 0, len(filter.Contains))
	for _, site := range filter.Contains {
		musts = append(musts, types.Query{
			Term: map[string]types.TermQuery{
				"sites": {Value: site},
			},
		})
	}

	if !filter.IncludeMissing {
		return &types.Query{Bool: &types.BoolQuery{Filter: musts}}
	}

	minimumShouldMatch := 1
	return &types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{
				{Bool: &types.BoolQuery{Filter: musts}},
				{Bool: &types.BoolQuery{
					MustNot: []types.Query{
						{Exists: &types.ExistsQuery{Field: "sites"}},
					},
				}},
			},
			MinimumShouldMatch: minimumShouldMatch,
		},
	}
}

func isNotFound(err error) bool {
	var esErr *types.ElasticsearchError
	return errors.As(err, &esErr) && esErr.Status == http.StatusNotFound
}

func (s *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	numberOfShards := "1"
	numberOfReplicas := "0"
	settings := types.IndexSettings{
		NumberOfShards:   &numberOfShards,
		NumberOfReplicas: &numberOfReplicas,
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"title":       types.NewTextProperty(),
			"description": types.NewTextProperty(),
			"image":       types.NewKeywordProperty(),
			"category":    types.NewKeywordProperty(),
			"sites":       types.NewKeywordProperty(),
			"date":        types.NewDateProperty(),
			"created_at":  types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}
