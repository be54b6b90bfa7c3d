package dtos

import (
	"fleet-management/fleetboard/internal/constants"
	"time"

	"github.com/shopspring/decimal"
)

type CreateUserInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type UpdateUserInput struct {
	Name    Optional[string] `json:"name,omitzero"`
	Email   Optional[string] `json:"email,omitzero"`
	Phone   Optional[string] `json:"phone,omitzero"`
	Address Optional[string] `json:"address,omitzero"`
}

// CreateDriverInput leaves AvailabilityStatus empty to take the default.
type CreateDriverInput struct {
	Name                string                       `json:"name" validate:"required"`
	Email               string                       `json:"email" validate:"required,email"`
	Phone               string                       `json:"phone" validate:"required"`
	LicenseNumber       string                       `json:"license_number" validate:"required"`
	VehicleMake         string                       `json:"vehicle_make" validate:"required"`
	VehicleModel        string                       `json:"vehicle_model" validate:"required"`
	VehicleLicensePlate string                       `json:"vehicle_license_plate" validate:"required"`
	AvailabilityStatus  constants.AvailabilityStatus `json:"availability_status,omitempty" validate:"omitempty,oneof=available unavailable"`
}

type UpdateDriverInput struct {
	Name                Optional[string]                       `json:"name,omitzero"`
	Email               Optional[string]                       `json:"email,omitzero"`
	Phone               Optional[string]                       `json:"phone,omitzero"`
	LicenseNumber       Optional[string]                       `json:"license_number,omitzero"`
	VehicleMake         Optional[string]                       `json:"vehicle_make,omitzero"`
	VehicleModel        Optional[string]                       `json:"vehicle_model,omitzero"`
	VehicleLicensePlate Optional[string]                       `json:"vehicle_license_plate,omitzero"`
	AvailabilityStatus  Optional[constants.AvailabilityStatus] `json:"availability_status,omitzero"`
}

// CreateRouteInput leaves RouteStatus empty to take the default and
// EndDatetime nil while the route is not finished.
type CreateRouteInput struct {
	DriverID          uint                  `json:"driver_id" validate:"required"`
	Origin            string                `json:"origin" validate:"required"`
	Destination       string                `json:"destination" validate:"required"`
	Distance          decimal.Decimal       `json:"distance"`
	EstimatedDuration int                   `json:"estimated_duration" validate:"gt=0"`
	StartDatetime     time.Time             `json:"start_datetime"`
	EndDatetime       *time.Time            `json:"end_datetime,omitempty"`
	RouteStatus       constants.RouteStatus `json:"route_status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

// UpdateRouteInput accepts null only for EndDatetime.
type UpdateRouteInput struct {
	DriverID          Optional[uint]                  `json:"driver_id,omitzero"`
	Origin            Optional[string]                `json:"origin,omitzero"`
	Destination       Optional[string]                `json:"destination,omitzero"`
	Distance          Optional[decimal.Decimal]       `json:"distance,omitzero"`
	EstimatedDuration Optional[int]                   `json:"estimated_duration,omitzero"`
	StartDatetime     Optional[time.Time]             `json:"start_datetime,omitzero"`
	EndDatetime       Optional[time.Time]             `json:"end_datetime,omitzero"`
	RouteStatus       Optional[constants.RouteStatus] `json:"route_status,omitzero"`
}
