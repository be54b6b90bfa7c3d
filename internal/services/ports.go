package services

import (
	"context"

	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/models/entities"
	gormModels "fleet-management/fleetboard/internal/models/gorm"
)

// UserStore is the record store surface used by UserService.
type UserStore interface {
	Insert(ctx context.Context, user *gormModels.User) error
	GetByID(ctx context.Context, id uint) (*gormModels.User, error)
	List(ctx context.Context) ([]gormModels.User, error)
	Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.User, error)
	Delete(ctx context.Context, id uint) error
}

type DriverStore interface {
	Insert(ctx context.Context, driver *gormModels.Driver) error
	GetByID(ctx context.Context, id uint) (*gormModels.Driver, error)
	List(ctx context.Context) ([]gormModels.Driver, error)
	Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.Driver, error)
	Delete(ctx context.Context, id uint) error
}

type RouteStore interface {
	Insert(ctx context.Context, route *gormModels.Route) error
	GetByID(ctx context.Context, id uint) (*gormModels.Route, error)
	Update(ctx context.Context, id uint, patch map[string]interface{}) (*gormModels.Route, error)
	Delete(ctx context.Context, id uint) error
	CountByDriver(ctx context.Context, driverID uint) (int64, error)
}

// RouteReader returns routes joined with their drivers.
type RouteReader interface {
	SelectJoined(ctx context.Context, p repositories.RoutePredicate) ([]entities.RouteWithDriver, error)
	GetJoinedByID(ctx context.Context, id uint) (*entities.RouteWithDriver, error)
}

var (
	_ UserStore   = (*repositories.UserRepositoryGORM)(nil)
	_ DriverStore = (*repositories.DriverRepositoryGORM)(nil)
	_ RouteStore  = (*repositories.RouteRepositoryGORM)(nil)
	_ RouteReader = (*repositories.RouteReadRepository)(nil)
)
