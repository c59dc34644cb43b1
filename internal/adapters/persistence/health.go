package persistence

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/quotes-service/internal/ports"
)

var _ ports.HealthChecker = (*Store)(nil)

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "database"
}

// Check pings the connection pool.
func (s *Store) Check(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

// Collector exposes connection pool statistics as Prometheus metrics
// labelled with dbName.
func (s *Store) Collector(dbName string) prometheus.Collector {
	return collectors.NewDBStatsCollector(s.sqlDB, dbName)
}
