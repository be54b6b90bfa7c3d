package entities

import (
	"fleet-management/fleetboard/internal/constants"
	"time"
)

type Driver struct {
	ID                  uint                         `json:"id" db:"id"`
	Name                string                       `json:"name" db:"name"`
	Email               string                       `json:"email" db:"email"`
	Phone               string                       `json:"phone" db:"phone"`
	LicenseNumber       string                       `json:"license_number" db:"license_number"`
	VehicleMake         string                       `json:"vehicle_make" db:"vehicle_make"`
	VehicleModel        string                       `json:"vehicle_model" db:"vehicle_model"`
	VehicleLicensePlate string                       `json:"vehicle_license_plate" db:"vehicle_license_plate"`
	AvailabilityStatus  constants.AvailabilityStatus `json:"availability_status" db:"availability_status"`
	CreatedAt           time.Time                    `json:"created_at" db:"created_at"`
}

func (d Driver) IsAvailable() bool {
	return d.AvailabilityStatus == constants.AvailabilityAvailable
}
