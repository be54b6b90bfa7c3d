package entities

import (
	"time"

	"fleet-management/fleetboard/internal/constants"
)

// RouteReportFilter fields are optional and combined with AND.
type RouteReportFilter struct {
	DriverID    *uint                  `json:"driver_id,omitempty"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	RouteStatus *constants.RouteStatus `json:"route_status,omitempty"`
}

func (f RouteReportFilter) IsEmpty() bool {
	return f.DriverID == nil && f.StartDate == nil && f.EndDate == nil && f.RouteStatus == nil
}

type RouteReportSummary struct {
	TotalRoutes      int               `json:"total_routes"`
	CompletedRoutes  int               `json:"completed_routes"`
	PendingRoutes    int               `json:"pending_routes"`
	InProgressRoutes int               `json:"in_progress_routes"`
	CancelledRoutes  int               `json:"cancelled_routes"`
	TotalDistance    Distance          `json:"total_distance"`
	TotalDuration    int               `json:"total_duration"`
	Routes           []RouteWithDriver `json:"routes"`
}
