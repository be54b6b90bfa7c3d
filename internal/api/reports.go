package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"
)

// RouteReport handles GET /api/v1/reports/routes
//
// Query: driver_id, start_date, end_date (RFC3339 or YYYY-MM-DD), route_status.
func (h *Handlers) RouteReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, err := ParseReportFilter(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		summary, err := h.deps.Services.Report.Generate(r.Context(), filter)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityReport, err)
			return
		}

		if h.deps.Metrics != nil {
			h.deps.Metrics.ReportsGenerated.Inc()
			h.deps.Metrics.ReportRoutesMatched.Observe(float64(summary.TotalRoutes))
		}
		common.RespondSuccess(w, initTime, constants.MsgReportGenerated, summary)
	}
}

// ParseReportFilter reads the sparse report filter from query parameters.
// Empty parameters are treated as absent.
func ParseReportFilter(q url.Values) (entities.RouteReportFilter, error) {
	var filter entities.RouteReportFilter

	if raw := q.Get("driver_id"); raw != "" {
		driverID, err := common.ParseID(raw)
		if err != nil {
			return filter, fmt.Errorf("driver_id: %w", err)
		}
		filter.DriverID = &driverID
	}

	start, err := common.ParseDateParam(q.Get("start_date"))
	if err != nil {
		return filter, fmt.Errorf("start_date: %w", err)
	}
	filter.StartDate = start

	end, err := common.ParseDateParam(q.Get("end_date"))
	if err != nil {
		return filter, fmt.Errorf("end_date: %w", err)
	}
	filter.EndDate = end

	if raw := q.Get("route_status"); raw != "" {
		status, err := constants.ParseRouteStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.RouteStatus = &status
	}

	return filter, nil
}
