package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var checkColumns = []string{"id", "formula", "canonical", "verdict", "witness", "vars", "checked", "duration_ns", "created_at"}

type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool, db: pool.GetConn()}
}

func (s *Store) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	row, err := toRow(check, time.Now())
	if err != nil {
		return uuid.Nil, err
	}

	cmd := `
        INSERT INTO checks (id, formula, canonical, verdict, witness, vars, checked, duration_ns, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id;
    `
	var id uuid.UUID
	if err := s.db.QueryRow(ctx, cmd, row...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert check: %w", err)
	}

	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, checks []domain.Check) error {
	rows := make([][]any, len(checks))
	now := time.Now()

	for i, c := range checks {
		row, err := toRow(c, now)
		if err != nil {
			return fmt.Errorf("failed to prepare check %d: %w", i, err)
		}
		rows[i] = row
	}

	n, err := s.db.CopyFrom(ctx, pgx.Identifier{"checks"}, checkColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert checks: %w", err)
	}

	slog.Info("Bulk insert completed", "rows", n)
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	query := `
		SELECT id, formula, canonical, verdict, witness, vars, checked, duration_ns, created_at
		FROM checks
		WHERE id = $1
	`
	check, err := scanCheck(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check: %w", err)
	}
	return check, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM checks`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count checks: %w", err)
	}

	query := `
		SELECT id, formula, canonical, verdict, witness, vars, checked, duration_ns, created_at
		FROM checks
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []domain.Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, *check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return pagination.NewOffsetResult(checks, total, page.Page, page.Size), nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func toRow(c domain.Check, now time.Time) ([]any, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.Vars == nil {
		c.Vars = []string{}
	}

	var witnessJSON []byte
	if c.Witness != nil {
		var err error
		witnessJSON, err = json.Marshal(c.Witness)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal witness: %w", err)
		}
	}

	return []any{
		c.ID,
		c.Formula,
		c.Canonical,
		c.Verdict,
		witnessJSON,
		c.Vars,
		int64(c.Checked),
		c.Duration.Nanoseconds(),
		c.CreatedAt,
	}, nil
}

func scanCheck(row pgx.Row) (*domain.Check, error) {
	var (
		c           domain.Check
		witnessJSON []byte
		checked     int64
		durationNs  int64
	)
	if err := row.Scan(
		&c.ID,
		&c.Formula,
		&c.Canonical,
		&c.Verdict,
		&witnessJSON,
		&c.Vars,
		&checked,
		&durationNs,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	if witnessJSON != nil {
		if err := json.Unmarshal(witnessJSON, &c.Witness); err != nil {
			return nil, fmt.Errorf("failed to unmarshal witness: %w", err)
		}
	}
	c.Checked = uint64(checked)
	c.Duration = time.Duration(durationNs)
	return &c, nil
}

var _ storage.Store = (*Store)(nil)
