package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "fleet-management/fleetboard/internal/models/gorm"

	"gorm.io/gorm"
)

type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

func (r *UserRepositoryGORM) Insert(ctx context.Context, user *gormModels.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID returns nil when the user does not exist
func (r *UserRepositoryGORM) GetByID(ctx context.Context, id uint) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("id = ?", idArg(id)).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryGORM) List(ctx context.Context) ([]gormModels.User, error) {
	var users []gormModels.User

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

// Update applies patch (column -> value) and returns the stored row.
func (r *UserRepositoryGORM) Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.User, error) {
	result := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("id = ?", idArg(id)).
		Updates(patch)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("user %d: %w", id, ErrRecordNotFound)
	}

	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrRecordNotFound)
	}
	return user, nil
}

func (r *UserRepositoryGORM) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.User{}, idArg(id))

	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrRecordNotFound)
	}

	return nil
}
