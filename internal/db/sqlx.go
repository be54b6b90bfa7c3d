package db

import (
	"errors"
	"fmt"
	"time"

	"fleet-management/fleetboard/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

const connectAttempts = 10

// OpenSQLX returns the sqlx handle used for joined reads and health checks.
// Postgres gets its own pool through lib/pq; SQLite shares the GORM pool so
// both see the same database.
func OpenSQLX(cfg *config.Config, orm *gorm.DB) (*sqlx.DB, error) {
	if cfg.DBDriver == config.DriverSQLite {
		return WrapSQLX(orm)
	}

	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < connectAttempts; i++ {
		conn, err = sqlx.Connect("postgres", cfg.PostgresDSN())
		if err == nil {
			return conn, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectAttempts, err)
}

// WrapSQLX exposes the GORM connection pool through sqlx.
func WrapSQLX(orm *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access gorm pool: %w", err)
	}
	driverName := "postgres"
	if orm.Dialector.Name() == "sqlite" {
		driverName = "sqlite3"
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}

// Close releases the sqlx handle and, when it owns a separate pool, the GORM
// connection pool as well.
func Close(orm *gorm.DB, sqlxDB *sqlx.DB) error {
	var errs []error
	if sqlxDB != nil {
		if err := sqlxDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close sqlx pool: %w", err))
		}
	}
	if orm != nil {
		sqlDB, err := orm.DB()
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to access gorm pool: %w", err))
		} else if sqlxDB == nil || sqlDB != sqlxDB.DB {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close gorm pool: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}
