package entities

import (
	"time"

	"fleet-management/fleetboard/internal/constants"

	"github.com/shopspring/decimal"
)

// Distance is an exact decimal that encodes as a bare JSON number.
type Distance struct {
	decimal.Decimal
}

func NewDistance(d decimal.Decimal) Distance {
	return Distance{Decimal: d}
}

func (d Distance) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

type Route struct {
	ID                uint                  `json:"id" db:"id"`
	DriverID          uint                  `json:"driver_id" db:"driver_id"`
	Origin            string                `json:"origin" db:"origin"`
	Destination       string                `json:"destination" db:"destination"`
	Distance          Distance              `json:"distance" db:"distance"`
	EstimatedDuration int                   `json:"estimated_duration" db:"estimated_duration"`
	StartDatetime     time.Time             `json:"start_datetime" db:"start_datetime"`
	EndDatetime       *time.Time            `json:"end_datetime" db:"end_datetime"`
	RouteStatus       constants.RouteStatus `json:"route_status" db:"route_status"`
	CreatedAt         time.Time             `json:"created_at" db:"created_at"`
}

// RouteWithDriver is a route joined with a snapshot of its driver taken at
// query time.
type RouteWithDriver struct {
	Route
	Driver Driver `json:"driver"`
}
