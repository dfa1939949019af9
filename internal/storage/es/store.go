package es

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
	// refresh makes writes visible to the next search; tests enable it.
	refresh bool
}

type Option func(*Store)

func WithRefresh() Option {
	return func(s *Store) {
		s.refresh = true
	}
}

func NewStore(ctx context.Context, config ClientConfig, opts ...Option) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) Save(ctx context.Context, check domain.Check) (uuid.UUID, error) {
	doc := toDocument(check, time.Now())

	req := s.client.Index(s.indexName).Id(doc.ID).Document(doc)
	if s.refresh {
		req = req.Refresh(refresh.True)
	}
	res, err := req.Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("Check indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return uuid.Parse(doc.ID)
}

func (s *Store) SaveBulk(ctx context.Context, checks []domain.Check) error {
	if len(checks) == 0 {
		return nil
	}

	cfg := esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	}
	if s.refresh {
		cfg.Refresh = "true"
	}
	bi, err := esutil.NewBulkIndexer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now()

	for _, check := range checks {
		doc := toDocument(check, now)

		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(checks),
		"index", s.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d checks", n, len(checks))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Check, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found || res.Source_ == nil {
		return nil, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	check, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Check], error) {
	page.Normalize()

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"created_at": {Order: &desc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	checks := make([]domain.Check, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hit: %w", err)
		}
		check, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return pagination.NewOffsetResult(checks, total, page.Page, page.Size), nil
}

func (s *Store) Close() {}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Debug("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"formula":     types.NewKeywordProperty(),
			"canonical":   types.NewKeywordProperty(),
			"verdict":     types.NewKeywordProperty(),
			"witness":     types.NewFlattenedProperty(),
			"vars":        types.NewKeywordProperty(),
			"checked":     types.NewUnsignedLongNumberProperty(),
			"duration_ns": types.NewLongNumberProperty(),
			"created_at":  types.NewDateProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}

	res, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

var _ storage.Store = (*Store)(nil)
