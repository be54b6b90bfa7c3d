package gorm

import (
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"
	"time"

	"github.com/shopspring/decimal"
)

type Route struct {
	ID                uint                  `gorm:"column:id;primaryKey;autoIncrement"`
	DriverID          uint                  `gorm:"column:driver_id;not null;index"`
	Origin            string                `gorm:"column:origin;not null"`
	Destination       string                `gorm:"column:destination;not null"`
	Distance          decimal.Decimal       `gorm:"column:distance;type:numeric(10,2);not null"`
	EstimatedDuration int                   `gorm:"column:estimated_duration;not null"`
	StartDatetime     time.Time             `gorm:"column:start_datetime;not null;index"`
	EndDatetime       *time.Time            `gorm:"column:end_datetime"`
	RouteStatus       constants.RouteStatus `gorm:"column:route_status;type:varchar(16);not null;default:pending"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Driver Driver `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}

func (r Route) ToEntity() entities.Route {
	return entities.Route{
		ID:                r.ID,
		DriverID:          r.DriverID,
		Origin:            r.Origin,
		Destination:       r.Destination,
		Distance:          entities.NewDistance(r.Distance),
		EstimatedDuration: r.EstimatedDuration,
		StartDatetime:     r.StartDatetime,
		EndDatetime:       r.EndDatetime,
		RouteStatus:       r.RouteStatus,
		CreatedAt:         r.CreatedAt,
	}
}

// Models lists every table managed by AutoMigrate, parents first.
func Models() []interface{} {
	return []interface{}{&User{}, &Driver{}, &Route{}}
}
