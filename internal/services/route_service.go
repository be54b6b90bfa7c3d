package services

import (
	"context"
	"errors"
	"time"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/models/dtos"
	"fleet-management/fleetboard/internal/models/entities"
	gormModels "fleet-management/fleetboard/internal/models/gorm"

	"github.com/shopspring/decimal"
)

// RouteService guards the route lifecycle. The driver must exist and be
// available when a route is created; availability is read, never written.
type RouteService struct {
	routes  RouteStore
	drivers DriverStore
	reader  RouteReader
}

func NewRouteService(routes RouteStore, drivers DriverStore, reader RouteReader) *RouteService {
	return &RouteService{routes: routes, drivers: drivers, reader: reader}
}

func (s *RouteService) Create(ctx context.Context, input dtos.CreateRouteInput) (*entities.Route, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	distance, err := normalizeDistance(input.Distance)
	if err != nil {
		return nil, err
	}
	start, err := normalizeTime("start_datetime", input.StartDatetime)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if input.EndDatetime != nil {
		utc := input.EndDatetime.UTC()
		end = &utc
	}
	status := input.RouteStatus
	if status == "" {
		status = constants.RouteStatusPending
	}

	driver, err := s.drivers.GetByID(ctx, input.DriverID)
	if err != nil {
		return nil, storageError("failed to fetch driver", err)
	}
	if driver == nil {
		return nil, notFoundError(constants.MsgDriverNotFound, input.DriverID)
	}
	if !driver.ToEntity().IsAvailable() {
		return nil, conflictError(constants.MsgDriverNotAvailable, input.DriverID)
	}

	route := &gormModels.Route{
		DriverID:          input.DriverID,
		Origin:            input.Origin,
		Destination:       input.Destination,
		Distance:          distance,
		EstimatedDuration: input.EstimatedDuration,
		StartDatetime:     start,
		EndDatetime:       end,
		RouteStatus:       status,
	}
	if err := s.routes.Insert(ctx, route); err != nil {
		return nil, storageError("failed to create route", err)
	}

	logging.Info("route created", "route_id", route.ID, "driver_id", route.DriverID, "route_status", route.RouteStatus)
	out := route.ToEntity()
	return &out, nil
}

// List returns every route joined with its driver, in id order.
func (s *RouteService) List(ctx context.Context) ([]entities.RouteWithDriver, error) {
	routes, err := s.reader.SelectJoined(ctx, repositories.RoutePredicate{})
	if err != nil {
		return nil, storageError("failed to list routes", err)
	}
	return routes, nil
}

// GetByID returns nil, nil when the route does not exist.
func (s *RouteService) GetByID(ctx context.Context, id uint) (*entities.RouteWithDriver, error) {
	route, err := s.reader.GetJoinedByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch route", err)
	}
	return route, nil
}

// Update applies only the supplied fields. A null end_datetime clears it.
// A new driver_id must resolve to an existing driver; its availability is
// not checked.
func (s *RouteService) Update(ctx context.Context, id uint, input dtos.UpdateRouteInput) (*entities.Route, error) {
	patch, err := routePatch(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch route", err)
	}
	if existing == nil {
		return nil, notFoundError(constants.MsgRouteNotFound, id)
	}
	if len(patch) == 0 {
		out := existing.ToEntity()
		return &out, nil
	}

	if driverID, ok := input.DriverID.Get(); ok {
		driver, err := s.drivers.GetByID(ctx, driverID)
		if err != nil {
			return nil, storageError("failed to fetch driver", err)
		}
		if driver == nil {
			return nil, notFoundError(constants.MsgDriverNotFound, driverID)
		}
	}

	updated, err := s.routes.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, notFoundError(constants.MsgRouteNotFound, id)
		}
		return nil, storageError("failed to update route", err)
	}

	logging.Info("route updated", "route_id", id, "fields", len(patch))
	out := updated.ToEntity()
	return &out, nil
}

// Delete is allowed only for pending and cancelled routes.
func (s *RouteService) Delete(ctx context.Context, id uint) error {
	existing, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return storageError("failed to fetch route", err)
	}
	if existing == nil {
		return notFoundError(constants.MsgRouteNotFound, id)
	}
	if !existing.RouteStatus.Deletable() {
		return conflictError(constants.MsgRouteNotDeletable, existing.RouteStatus)
	}

	if err := s.routes.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFoundError(constants.MsgRouteNotFound, id)
		}
		return storageError("failed to delete route", err)
	}

	logging.Info("route deleted", "route_id", id, "route_status", existing.RouteStatus)
	return nil
}

func routePatch(input dtos.UpdateRouteInput) (map[string]interface{}, error) {
	patch := make(map[string]interface{})
	for _, err := range []error{
		patchField(patch, "driver_id", input.DriverID, false, func(v uint) (interface{}, error) {
			if err := validateValue("driver_id", v, "required"); err != nil {
				return nil, err
			}
			return v, nil
		}),
		patchField(patch, "origin", input.Origin, false, stringRule("origin", "required")),
		patchField(patch, "destination", input.Destination, false, stringRule("destination", "required")),
		patchField(patch, "distance", input.Distance, false, func(v decimal.Decimal) (interface{}, error) {
			return normalizeDistance(v)
		}),
		patchField(patch, "estimated_duration", input.EstimatedDuration, false, func(v int) (interface{}, error) {
			if err := validateValue("estimated_duration", v, "gt=0"); err != nil {
				return nil, err
			}
			return v, nil
		}),
		patchField(patch, "start_datetime", input.StartDatetime, false, func(v time.Time) (interface{}, error) {
			return normalizeTime("start_datetime", v)
		}),
		patchField(patch, "end_datetime", input.EndDatetime, true, func(v time.Time) (interface{}, error) {
			return v.UTC(), nil
		}),
		patchField(patch, "route_status", input.RouteStatus, false, func(v constants.RouteStatus) (interface{}, error) {
			if !v.IsValid() {
				return nil, validationError("route_status must be one of [pending, in_progress, completed, cancelled]")
			}
			return v, nil
		}),
	} {
		if err != nil {
			return nil, err
		}
	}
	return patch, nil
}
