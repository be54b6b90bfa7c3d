package api

import (
	"context"
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck
//
// Pings the database and reports uptime. Responds 503 when the database is
// unreachable.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		services := make(map[string]entities.ServiceStatus)

		dbStatus := string(constants.APIStatusOk)
		dbDetails := "Database connected (" + db.DriverName() + ")"
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := string(constants.APIStatusOk)
		for _, svc := range services {
			if svc.Status != string(constants.APIStatusOk) {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != string(constants.APIStatusOk) {
			code = http.StatusServiceUnavailable
		}
		common.RespondSuccess(w, initTime, "Health check", resp, code)
	}
}
