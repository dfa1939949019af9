package storage

import (
	"context"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/google/uuid"
)

type Reader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Check, error)
	// List returns checks newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error)
}

// Store is the check history: everything written can be read back.
type Store interface {
	Storer
	Reader
	Close()
}
