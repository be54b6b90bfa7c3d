package repositories

import (
	"context"
	"errors"
	"fmt"

	"fleet-management/fleetboard/internal/models/entities"
	gormModels "fleet-management/fleetboard/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RouteRepositoryGORM handles writes and point lookups on the routes table.
// Reads that need the driver go through RouteReadRepository.
type RouteRepositoryGORM struct {
	db *gorm.DB
}

// NewRouteRepositoryGORM creates a new GORM-based route repository
func NewRouteRepositoryGORM(db *gorm.DB) *RouteRepositoryGORM {
	return &RouteRepositoryGORM{db: db}
}

// Insert stores the route only; the Driver association is never written.
func (r *RouteRepositoryGORM) Insert(ctx context.Context, route *gormModels.Route) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(route).Error

	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// GetByID returns nil when the route does not exist
func (r *RouteRepositoryGORM) GetByID(ctx context.Context, id uint) (*gormModels.Route, error) {
	var route gormModels.Route

	err := r.db.WithContext(ctx).
		Where("id = ?", idArg(id)).
		First(&route).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	return &route, nil
}

// Update applies patch (column -> value) and returns the stored row. A nil
// value clears the column.
func (r *RouteRepositoryGORM) Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.Route, error) {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Route{}).
		Omit(clause.Associations).
		Where("id = ?", idArg(id)).
		Updates(patch)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update route: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("route %d: %w", id, ErrRecordNotFound)
	}

	route, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("route %d: %w", id, ErrRecordNotFound)
	}
	return route, nil
}

func (r *RouteRepositoryGORM) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Route{}, idArg(id))

	if result.Error != nil {
		return fmt.Errorf("failed to delete route: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("route %d: %w", id, ErrRecordNotFound)
	}

	return nil
}

// CountByDriver counts routes referencing the driver, whatever their status.
func (r *RouteRepositoryGORM) CountByDriver(ctx context.Context, driverID uint) (int64, error) {
	count, err := r.CountMatching(ctx, ComposeRouteFilter(entities.RouteReportFilter{DriverID: &driverID}))
	if err != nil {
		return 0, fmt.Errorf("failed to count routes for driver: %w", err)
	}

	return count, nil
}

// CountMatching counts routes satisfying the predicate without loading them.
func (r *RouteRepositoryGORM) CountMatching(ctx context.Context, p RoutePredicate) (int64, error) {
	var count int64

	tx := r.db.WithContext(ctx).Model(&gormModels.Route{})
	if err := p.Apply(tx, "").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count routes: %w", err)
	}

	return count, nil
}
