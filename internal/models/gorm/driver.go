package gorm

import (
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"
	"time"
)

type Driver struct {
	ID                  uint                         `gorm:"column:id;primaryKey;autoIncrement"`
	Name                string                       `gorm:"column:name;not null"`
	Email               string                       `gorm:"column:email;not null"`
	Phone               string                       `gorm:"column:phone;not null"`
	LicenseNumber       string                       `gorm:"column:license_number;not null"`
	VehicleMake         string                       `gorm:"column:vehicle_make;not null"`
	VehicleModel        string                       `gorm:"column:vehicle_model;not null"`
	VehicleLicensePlate string                       `gorm:"column:vehicle_license_plate;not null"`
	AvailabilityStatus  constants.AvailabilityStatus `gorm:"column:availability_status;type:varchar(16);not null;default:available"`
	CreatedAt           time.Time                    `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Driver) TableName() string {
	return "drivers"
}

func (d Driver) ToEntity() entities.Driver {
	return entities.Driver{
		ID:                  d.ID,
		Name:                d.Name,
		Email:               d.Email,
		Phone:               d.Phone,
		LicenseNumber:       d.LicenseNumber,
		VehicleMake:         d.VehicleMake,
		VehicleModel:        d.VehicleModel,
		VehicleLicensePlate: d.VehicleLicensePlate,
		AvailabilityStatus:  d.AvailabilityStatus,
		CreatedAt:           d.CreatedAt,
	}
}
