package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/google/uuid"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Check
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]domain.Check),
	}
}

func (s *Store) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	check = prepare(check, time.Now())
	s.storage[check.ID] = check
	slog.Debug("Saved check to in-memory storage", "id", check.ID, "verdict", check.Verdict)
	return check.ID, nil
}

func (s *Store) SaveBulk(ctx context.Context, checks []domain.Check) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	now := time.Now()
	for _, check := range checks {
		check = prepare(check, now)
		s.storage[check.ID] = check
	}
	slog.Debug("Saved checks to in-memory storage", "count", len(checks))
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	check, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &check, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	s.storageLock.RLock()
	all := make([]domain.Check, 0, len(s.storage))
	for _, check := range s.storage {
		all = append(all, check)
	}
	s.storageLock.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() > all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	from := min(page.Offset(), len(all))
	to := min(from+page.Size, len(all))

	return pagination.NewOffsetResult(all[from:to], int64(len(all)), page.Page, page.Size), nil
}

func (s *Store) Close() {}

func prepare(check domain.Check, now time.Time) domain.Check {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CreatedAt.IsZero() {
		check.CreatedAt = now
	}
	return check
}

var _ storage.Store = (*Store)(nil)
