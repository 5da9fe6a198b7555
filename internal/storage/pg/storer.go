package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rbiomeds/newsdesk/internal/apperr"
	"github.com/rbiomeds/newsdesk/internal/domain"
	"github.com/rbiomeds/newsdesk/internal/sitequery"
)

// Storer keeps articles in a single document-flavored table. The sites
// sequence lives in a jsonb column so visibility filters can use jsonb
// containment, and rows from before the column existed stay NULL.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(ctx context.Context, pool *ConnectionPool) (*Storer, error) {
	s := &Storer{db: pool.GetConn()}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure articles table: %w", err)
	}
	return s, nil
}

func (s *Storer) ensureSchema(ctx context.Context) error {
	cmd := `
        CREATE TABLE IF NOT EXISTS articles (
            id UUID PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            image TEXT NOT NULL,
            category TEXT NOT NULL,
            sites JSONB,
            date TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        );
    `
	_, err := s.db.Exec(ctx, cmd)
	return err
}

func (s *Storer) Create(ctx context.Context, draft domain.Draft) (domain.Article, error) {
	article, err := domain.NewArticle(draft, time.Now())
	if err != nil {
		return domain.Article{}, err
	}
	article.ID = uuid.New()

	sitesJSON, err := json.Marshal(article.Sites)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to marshal sites: %w", err)
	}

	cmd := `
        INSERT INTO articles (id, title, description, image, category, sites, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err = s.db.Exec(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Description,
		article.Image,
		article.Category,
		sitesJSON,
		article.Date,
		article.CreatedAt,
	)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to insert article: %w", err)
	}

	return article, nil
}

func (s *Storer) Find(ctx context.Context, filter sitequery.Filter) ([]domain.Article, error) {
	query := `
        SELECT id, title, description, image, category, sites, date, created_at
        FROM articles
    `
	var args []any
	if !filter.MatchAll {
		containsJSON, err := json.Marshal(filter.Contains)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal site filter: %w", err)
		}
		args = append(args, containsJSON)
		if filter.IncludeMissing {
			query += ` WHERE (sites @> $1::jsonb OR sites IS NULL)`
		} else {
			query += ` WHERE sites @> $1::jsonb`
		}
	}
	query += ` ORDER BY date DESC, created_at DESC;`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return articles, nil
}

func (s *Storer) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (domain.Article, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	updated := existing.ApplyUpdate(draft)

	sitesJSON, err := json.Marshal(updated.Sites)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to marshal sites: %w", err)
	}

	cmd := `
        UPDATE articles
        SET title = $2, description = $3, image = $4, category = $5, sites = $6, date = $7
        WHERE id = $1;
    `
	_, err = s.db.Exec(
		ctx,
		cmd,
		updated.ID,
		updated.Title,
		updated.Description,
		updated.Image,
		updated.Category,
		sitesJSON,
		updated.Date,
	)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	return updated, nil
}

func (s *Storer) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("article", id.String())
	}
	return nil
}

func (s *Storer) get(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, title, description, image, category, sites, date, created_at
        FROM articles
        WHERE id = $1;
    `, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, apperr.NewNotFound("article", id.String())
		}
		return domain.Article{}, err
	}
	return article, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var (
		article   domain.Article
		sitesJSON []byte
	)
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Description,
		&article.Image,
		&article.Category,
		&sitesJSON,
		&article.Date,
		&article.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("failed to scan article row: %w", err)
	}

	if len(sitesJSON) > 0 {
		if err := json.Unmarshal(sitesJSON, &article.Sites); err != nil {
			return domain.Article{}, fmt.Errorf("failed to unmarshal sites: %w", err)
		}
	}
	return article, nil
}
