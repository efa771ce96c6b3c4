package sqlstore

import (
	"context"
	"fmt"
)

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database, honoring the context deadline.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}
