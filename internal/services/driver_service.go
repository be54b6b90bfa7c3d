package services

import (
	"context"
	"errors"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/models/dtos"
	"fleet-management/fleetboard/internal/models/entities"
	gormModels "fleet-management/fleetboard/internal/models/gorm"
)

// DriverService guards the driver lifecycle. A driver referenced by any
// route cannot be deleted.
type DriverService struct {
	drivers DriverStore
	routes  RouteStore
}

func NewDriverService(drivers DriverStore, routes RouteStore) *DriverService {
	return &DriverService{drivers: drivers, routes: routes}
}

func (s *DriverService) Create(ctx context.Context, input dtos.CreateDriverInput) (*entities.Driver, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	status := input.AvailabilityStatus
	if status == "" {
		status = constants.AvailabilityAvailable
	}

	driver := &gormModels.Driver{
		Name:                input.Name,
		Email:               input.Email,
		Phone:               input.Phone,
		LicenseNumber:       input.LicenseNumber,
		VehicleMake:         input.VehicleMake,
		VehicleModel:        input.VehicleModel,
		VehicleLicensePlate: input.VehicleLicensePlate,
		AvailabilityStatus:  status,
	}
	if err := s.drivers.Insert(ctx, driver); err != nil {
		return nil, storageError("failed to create driver", err)
	}

	logging.Info("driver created", "driver_id", driver.ID, "availability_status", driver.AvailabilityStatus)
	out := driver.ToEntity()
	return &out, nil
}

func (s *DriverService) List(ctx context.Context) ([]entities.Driver, error) {
	rows, err := s.drivers.List(ctx)
	if err != nil {
		return nil, storageError("failed to list drivers", err)
	}

	drivers := make([]entities.Driver, 0, len(rows))
	for _, row := range rows {
		drivers = append(drivers, row.ToEntity())
	}
	return drivers, nil
}

// GetByID returns nil, nil when the driver does not exist.
func (s *DriverService) GetByID(ctx context.Context, id uint) (*entities.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch driver", err)
	}
	if driver == nil {
		return nil, nil
	}

	out := driver.ToEntity()
	return &out, nil
}

// Update applies only the supplied fields. An empty patch returns the
// stored driver untouched.
func (s *DriverService) Update(ctx context.Context, id uint, input dtos.UpdateDriverInput) (*entities.Driver, error) {
	patch := make(map[string]interface{})
	for _, err := range []error{
		patchField(patch, "name", input.Name, false, stringRule("name", "required")),
		patchField(patch, "email", input.Email, false, stringRule("email", "required,email")),
		patchField(patch, "phone", input.Phone, false, stringRule("phone", "required")),
		patchField(patch, "license_number", input.LicenseNumber, false, stringRule("license_number", "required")),
		patchField(patch, "vehicle_make", input.VehicleMake, false, stringRule("vehicle_make", "required")),
		patchField(patch, "vehicle_model", input.VehicleModel, false, stringRule("vehicle_model", "required")),
		patchField(patch, "vehicle_license_plate", input.VehicleLicensePlate, false, stringRule("vehicle_license_plate", "required")),
		patchField(patch, "availability_status", input.AvailabilityStatus, false, checkAvailability),
	} {
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("failed to fetch driver", err)
	}
	if existing == nil {
		return nil, notFoundError(constants.MsgDriverNotFound, id)
	}
	if len(patch) == 0 {
		out := existing.ToEntity()
		return &out, nil
	}

	updated, err := s.drivers.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, notFoundError(constants.MsgDriverNotFound, id)
		}
		return nil, storageError("failed to update driver", err)
	}

	logging.Info("driver updated", "driver_id", id, "fields", len(patch))
	out := updated.ToEntity()
	return &out, nil
}

// Delete refuses while any route, in any status, references the driver.
func (s *DriverService) Delete(ctx context.Context, id uint) error {
	existing, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return storageError("failed to fetch driver", err)
	}
	if existing == nil {
		return notFoundError(constants.MsgDriverNotFound, id)
	}

	count, err := s.routes.CountByDriver(ctx, id)
	if err != nil {
		return storageError("failed to count driver routes", err)
	}
	if count > 0 {
		return conflictError(constants.MsgDriverHasRoutes, id)
	}

	if err := s.drivers.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return notFoundError(constants.MsgDriverNotFound, id)
		}
		return storageError("failed to delete driver", err)
	}

	logging.Info("driver deleted", "driver_id", id)
	return nil
}

func checkAvailability(v constants.AvailabilityStatus) (interface{}, error) {
	if !v.IsValid() {
		return nil, validationError("availability_status must be one of [available, unavailable]")
	}
	return v, nil
}
