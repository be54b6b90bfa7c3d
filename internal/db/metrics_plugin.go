package db

import (
	"errors"
	"fmt"
	"time"

	"fleet-management/fleetboard/internal/metrics"

	"gorm.io/gorm"
)

const startedAtKey = "metrics:started_at"

// RegisterMetricsCallbacks times every GORM create, query, update and delete.
func RegisterMetricsCallbacks(db *gorm.DB, reg *metrics.MetricsRegistry) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startedAtKey, time.Now())
	}
	after := func(queryType string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			outcome := "ok"
			if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
				outcome = "error"
			}
			reg.DBQueriesTotal.WithLabelValues(queryType, outcome).Inc()

			if v, ok := tx.InstanceGet(startedAtKey); ok {
				if startedAt, ok := v.(time.Time); ok {
					reg.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startedAt).Seconds())
				}
			}
		}
	}

	cb := db.Callback()
	steps := []struct {
		name string
		err  error
	}{
		{"create", cb.Create().Before("gorm:create").Register("metrics:before_create", before)},
		{"create", cb.Create().After("gorm:create").Register("metrics:after_create", after("create"))},
		{"query", cb.Query().Before("gorm:query").Register("metrics:before_query", before)},
		{"query", cb.Query().After("gorm:query").Register("metrics:after_query", after("query"))},
		{"update", cb.Update().Before("gorm:update").Register("metrics:before_update", before)},
		{"update", cb.Update().After("gorm:update").Register("metrics:after_update", after("update"))},
		{"delete", cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before)},
		{"delete", cb.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete"))},
	}
	for _, s := range steps {
		if s.err != nil {
			return fmt.Errorf("failed to register %s metrics callback: %w", s.name, s.err)
		}
	}
	return nil
}
