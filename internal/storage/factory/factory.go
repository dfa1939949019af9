package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/server"
)

// Backend is an opened store plus the health probe for its connection.
type Backend struct {
	Store  storage.Store
	Health server.HealthChecker
}

func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Backend{Store: pg.NewStore(pool), Health: pg.NewHealthChecker(pool)}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, Health: es.NewHealthChecker(store)}, nil

	case storage.InMem:
		return &Backend{Store: in_mem.NewStore(), Health: server.NewOkHealthChecker()}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
