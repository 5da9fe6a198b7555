package factory

import (
	"context"
	"fmt"

	"github.com/rbiomeds/newsdesk/internal/storage"
	"github.com/rbiomeds/newsdesk/internal/storage/es"
	"github.com/rbiomeds/newsdesk/internal/storage/in_mem"
	"github.com/rbiomeds/newsdesk/internal/storage/pg"
)

// NewStorer creates a storage.Storer for the configured backend.
func NewStorer(ctx context.Context, cfg StorageConfig) (storage.Storer, error) {
	switch cfg.Type {
	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStorer(ctx, *cfg.Es)

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStorer(ctx, pool)

	case storage.InMem:
		return in_mem.NewStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
