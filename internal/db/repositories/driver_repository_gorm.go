package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "fleet-management/fleetboard/internal/models/gorm"

	"gorm.io/gorm"
)

type DriverRepositoryGORM struct {
	db *gorm.DB
}

// NewDriverRepositoryGORM creates a new GORM-based driver repository
func NewDriverRepositoryGORM(db *gorm.DB) *DriverRepositoryGORM {
	return &DriverRepositoryGORM{db: db}
}

func (r *DriverRepositoryGORM) Insert(ctx context.Context, driver *gormModels.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

// GetByID returns nil when the driver does not exist
func (r *DriverRepositoryGORM) GetByID(ctx context.Context, id uint) (*gormModels.Driver, error) {
	var driver gormModels.Driver

	err := r.db.WithContext(ctx).
		Where("id = ?", idArg(id)).
		First(&driver).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}

	return &driver, nil
}

func (r *DriverRepositoryGORM) List(ctx context.Context) ([]gormModels.Driver, error) {
	var drivers []gormModels.Driver

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch drivers: %w", err)
	}

	return drivers, nil
}

// Update applies patch (column -> value) and returns the stored row.
func (r *DriverRepositoryGORM) Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.Driver, error) {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Driver{}).
		Where("id = ?", idArg(id)).
		Updates(patch)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update driver: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("driver %d: %w", id, ErrRecordNotFound)
	}

	driver, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, fmt.Errorf("driver %d: %w", id, ErrRecordNotFound)
	}
	return driver, nil
}

func (r *DriverRepositoryGORM) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Driver{}, idArg(id))

	if result.Error != nil {
		return fmt.Errorf("failed to delete driver: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("driver %d: %w", id, ErrRecordNotFound)
	}

	return nil
}
