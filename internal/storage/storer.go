package storage

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, check domain.Check) (uuid.UUID, error)
	SaveBulk(ctx context.Context, checks []domain.Check) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// ErrNotFound is returned by Reader.Get for unknown ids.
var ErrNotFound = fmt.Errorf("check %w", apperr.ErrNotFound)
