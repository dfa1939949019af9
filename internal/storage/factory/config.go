package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the storage backend from STORAGE_TYPE. An unset value selects in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.InMem
	}
	if storageType != storage.ES && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = es.DefaultIndexName
		}
		if err := cfg.Es.Validate(); err != nil {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "error", err)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: %w", err)
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING environment variable is not set")
		}
	}

	return cfg, nil
}
