package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_EmptyFilterCountsEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	d := env.mustDriver(t, "wade", "")
	env.mustRoute(t, d, "1.10", 10, constants.RouteStatusPending)
	env.mustRoute(t, d, "2.20", 20, constants.RouteStatusInProgress)
	env.mustRoute(t, d, "3.30", 30, constants.RouteStatusCompleted)
	env.mustRoute(t, d, "4.40", 40, constants.RouteStatusCancelled)
	env.mustRoute(t, d, "5.50", 50, constants.RouteStatusCompleted)

	s, err := env.reports.Generate(ctx, entities.RouteReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalRoutes)
	assert.Equal(t, 2, s.CompletedRoutes)
	assert.Equal(t, 1, s.PendingRoutes)
	assert.Equal(t, 1, s.InProgressRoutes)
	assert.Equal(t, 1, s.CancelledRoutes)
	assert.Equal(t, s.TotalRoutes, s.CompletedRoutes+s.PendingRoutes+s.InProgressRoutes+s.CancelledRoutes)
	assert.True(t, s.TotalDistance.Equal(decimal.RequireFromString("16.50")), s.TotalDistance.String())
	assert.Equal(t, 150, s.TotalDuration)
	require.Len(t, s.Routes, 5)
	for i := 1; i < len(s.Routes); i++ {
		assert.Less(t, s.Routes[i-1].ID, s.Routes[i].ID)
	}
}

func TestReportService_ByDriverExactSum(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	d1 := env.mustDriver(t, "xena", "")
	d2 := env.mustDriver(t, "yuri", "")
	env.mustRoute(t, d1, "10.50", 20, constants.RouteStatusPending)
	env.mustRoute(t, d2, "99.99", 60, constants.RouteStatusPending)
	env.mustRoute(t, d1, "15.75", 25, constants.RouteStatusCompleted)

	s, err := env.reports.Generate(ctx, entities.RouteReportFilter{DriverID: &d1})
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalRoutes)
	assert.Equal(t, "26.25", s.TotalDistance.StringFixed(2))
	assert.True(t, s.TotalDistance.Equal(decimal.RequireFromString("26.25")))
	for _, r := range s.Routes {
		assert.Equal(t, d1, r.DriverID)
		assert.Equal(t, "xena", r.Driver.Name)
	}
}

func TestReportService_CompletedOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	d := env.mustDriver(t, "zoe", "")
	env.mustRoute(t, d, "10.5", 30, constants.RouteStatusCompleted)
	env.mustRoute(t, d, "4.00", 12, constants.RouteStatusPending)
	env.mustRoute(t, d, "6.00", 18, constants.RouteStatusCancelled)

	status := constants.RouteStatusCompleted
	s, err := env.reports.Generate(ctx, entities.RouteReportFilter{RouteStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalRoutes)
	assert.Equal(t, 1, s.CompletedRoutes)
	assert.True(t, s.TotalDistance.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, 30, s.TotalDuration)
}

func TestReportService_UnknownDriverIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	d := env.mustDriver(t, "abe", "")
	env.mustRoute(t, d, "1.00", 5, "")

	missing := d + 1000
	s, err := env.reports.Generate(context.Background(), entities.RouteReportFilter{DriverID: &missing})
	require.NoError(t, err)
	assert.Zero(t, s.TotalRoutes)
	assert.True(t, s.TotalDistance.IsZero())
	assert.Zero(t, s.TotalDuration)
	require.NotNil(t, s.Routes)
	assert.Empty(t, s.Routes)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"routes":[]`)
	assert.Contains(t, string(b), `"total_distance":0`)
}

func TestReportService_DateRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	d := env.mustDriver(t, "bea", "")

	early := routeInput(d, "1.00", 10, "")
	early.StartDatetime = time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	late := routeInput(d, "2.00", 10, "")
	late.StartDatetime = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	_, err := env.routes.Create(ctx, early)
	require.NoError(t, err)
	lateRoute, err := env.routes.Create(ctx, late)
	require.NoError(t, err)

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	s, err := env.reports.Generate(ctx, entities.RouteReportFilter{StartDate: &from, EndDate: &to})
	require.NoError(t, err)
	require.Equal(t, 1, s.TotalRoutes)
	assert.Equal(t, lateRoute.ID, s.Routes[0].ID)

	_, err = env.reports.Generate(ctx, entities.RouteReportFilter{StartDate: &to, EndDate: &from})
	requireKind(t, err, KindValidation)
}

func TestSummarizeRoutes_Pure(t *testing.T) {
	s := summarizeRoutes(nil)
	assert.NotNil(t, s.Routes)
	assert.True(t, s.TotalDistance.IsZero())

	rows := []entities.RouteWithDriver{
		{Route: entities.Route{ID: 2, Distance: entities.NewDistance(decimal.RequireFromString("0.10")), EstimatedDuration: 1, RouteStatus: constants.RouteStatusPending}},
		{Route: entities.Route{ID: 1, Distance: entities.NewDistance(decimal.RequireFromString("0.20")), EstimatedDuration: 2, RouteStatus: constants.RouteStatusCancelled}},
	}
	s = summarizeRoutes(rows)
	assert.Equal(t, "0.3", s.TotalDistance.String())
	assert.Equal(t, 3, s.TotalDuration)
	assert.Equal(t, uint(2), s.Routes[0].ID, "rows keep scan order")
}
