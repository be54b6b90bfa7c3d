package api

import (
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/metrics"
	"fleet-management/fleetboard/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Users       *repositories.UserRepositoryGORM
	Drivers     *repositories.DriverRepositoryGORM
	Routes      *repositories.RouteRepositoryGORM
	RouteReader *repositories.RouteReadRepository
}

type Services struct {
	User   *services.UserService
	Driver *services.DriverService
	Route  *services.RouteService
	Report *services.ReportService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	SQLX     *sqlx.DB
}

// InitDependencies wires repositories and services over the two handles:
// gorm for writes and point lookups, sqlx for joined reads.
func InitDependencies(orm *gorm.DB, sqlxDB *sqlx.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Users:       repositories.NewUserRepositoryGORM(orm),
		Drivers:     repositories.NewDriverRepositoryGORM(orm),
		Routes:      repositories.NewRouteRepositoryGORM(orm),
		RouteReader: repositories.NewRouteReadRepository(sqlxDB),
	}

	svcs := &Services{
		User:   services.NewUserService(repos.Users),
		Driver: services.NewDriverService(repos.Drivers, repos.Routes),
		Route:  services.NewRouteService(repos.Routes, repos.Drivers, repos.RouteReader),
		Report: services.NewReportService(repos.RouteReader),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		SQLX:     sqlxDB,
	}, nil
}
