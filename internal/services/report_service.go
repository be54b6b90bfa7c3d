package services

import (
	"context"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/models/entities"

	"github.com/shopspring/decimal"
)

// ReportService aggregates routes selected by a RouteReportFilter.
type ReportService struct {
	reader RouteReader
}

func NewReportService(reader RouteReader) *ReportService {
	return &ReportService{reader: reader}
}

// Generate selects the matching routes with their drivers and summarizes
// them. A filter matching nothing, including an unknown driver, yields a
// zeroed summary with an empty route list.
func (s *ReportService) Generate(ctx context.Context, filter entities.RouteReportFilter) (*entities.RouteReportSummary, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, validationError(constants.MsgReportDateRange)
	}
	if filter.RouteStatus != nil && !filter.RouteStatus.IsValid() {
		return nil, validationError("route_status must be one of [pending, in_progress, completed, cancelled]")
	}

	predicate := repositories.ComposeRouteFilter(filter)
	routes, err := s.reader.SelectJoined(ctx, predicate)
	if err != nil {
		return nil, storageError("failed to select routes for report", err)
	}

	summary := summarizeRoutes(routes)
	logging.Debug("route report generated", "clauses", predicate.Len(), "total_routes", summary.TotalRoutes)
	return summary, nil
}

// summarizeRoutes keeps the rows in the order given.
func summarizeRoutes(routes []entities.RouteWithDriver) *entities.RouteReportSummary {
	summary := &entities.RouteReportSummary{
		TotalDistance: entities.NewDistance(decimal.Zero),
		Routes:        make([]entities.RouteWithDriver, 0, len(routes)),
	}

	for _, r := range routes {
		summary.TotalRoutes++
		summary.TotalDistance = entities.NewDistance(summary.TotalDistance.Add(r.Distance.Decimal))
		summary.TotalDuration += r.EstimatedDuration

		switch r.RouteStatus {
		case constants.RouteStatusCompleted:
			summary.CompletedRoutes++
		case constants.RouteStatusPending:
			summary.PendingRoutes++
		case constants.RouteStatusInProgress:
			summary.InProgressRoutes++
		case constants.RouteStatusCancelled:
			summary.CancelledRoutes++
		}

		summary.Routes = append(summary.Routes, r)
	}

	return summary
}
