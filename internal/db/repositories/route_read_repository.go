package repositories

import (
	"context"
	"fmt"
	"time"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// RouteReadRepository serves routes joined with their drivers using sqlx.
type RouteReadRepository struct {
	db *sqlx.DB
}

func NewRouteReadRepository(db *sqlx.DB) *RouteReadRepository {
	return &RouteReadRepository{db: db}
}

type routeWithDriverRow struct {
	entities.Route
	DriverName                string                       `db:"driver_name"`
	DriverEmail               string                       `db:"driver_email"`
	DriverPhone               string                       `db:"driver_phone"`
	DriverLicenseNumber       string                       `db:"driver_license_number"`
	DriverVehicleMake         string                       `db:"driver_vehicle_make"`
	DriverVehicleModel        string                       `db:"driver_vehicle_model"`
	DriverVehicleLicensePlate string                       `db:"driver_vehicle_license_plate"`
	DriverAvailabilityStatus  constants.AvailabilityStatus `db:"driver_availability_status"`
	DriverCreatedAt           time.Time                    `db:"driver_created_at"`
}

func (row routeWithDriverRow) toEntity() entities.RouteWithDriver {
	return entities.RouteWithDriver{
		Route: row.Route,
		Driver: entities.Driver{
			ID:                  row.DriverID,
			Name:                row.DriverName,
			Email:               row.DriverEmail,
			Phone:               row.DriverPhone,
			LicenseNumber:       row.DriverLicenseNumber,
			VehicleMake:         row.DriverVehicleMake,
			VehicleModel:        row.DriverVehicleModel,
			VehicleLicensePlate: row.DriverVehicleLicensePlate,
			AvailabilityStatus:  row.DriverAvailabilityStatus,
			CreatedAt:           row.DriverCreatedAt,
		},
	}
}

// SelectJoined returns routes matching p, each with its driver, ordered by
// route id. Routes whose driver row is missing are skipped by the inner join.
func (r *RouteReadRepository) SelectJoined(ctx context.Context, p RoutePredicate) ([]entities.RouteWithDriver, error) {
	query := constants.SelectRoutesWithDriver
	where, args := p.SQL(constants.RouteTableAlias)
	if where != "" {
		query += " WHERE " + where
	}
	query = r.db.Rebind(query + constants.OrderRoutesByID)

	var rows []routeWithDriverRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select routes with driver: %w", err)
	}

	routes := make([]entities.RouteWithDriver, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, row.toEntity())
	}
	return routes, nil
}

// GetJoinedByID returns nil when the route does not exist.
func (r *RouteReadRepository) GetJoinedByID(ctx context.Context, id uint) (*entities.RouteWithDriver, error) {
	routes, err := r.SelectJoined(ctx, RouteByID(id))
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, nil
	}
	return &routes[0], nil
}
