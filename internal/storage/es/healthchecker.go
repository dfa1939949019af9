package es

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	store *Store
}

func NewHealthChecker(store *Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	ok, err := hc.store.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
