package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/dtos"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteService_CreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	driverID := env.mustDriver(t, "kim", "")

	r, err := env.routes.Create(ctx, routeInput(driverID, "7.95", 25, ""))
	require.NoError(t, err)
	assert.Equal(t, constants.RouteStatusPending, r.RouteStatus)
	assert.Nil(t, r.EndDatetime)
	assert.Equal(t, "7.95", r.Distance.String())
	assert.True(t, r.StartDatetime.Equal(testStart))

	got, err := env.routes.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Distance.Equal(decimal.RequireFromString("7.95")))
	assert.Equal(t, "kim", got.Driver.Name)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"distance":7.95`)
	assert.Contains(t, string(b), `"end_datetime":null`)

	// Availability is a precondition, never a side effect.
	d, err := env.drivers.GetByID(ctx, driverID)
	require.NoError(t, err)
	assert.Equal(t, constants.AvailabilityAvailable, d.AvailabilityStatus)
}

func TestRouteService_CreateRoundsDistance(t *testing.T) {
	env := newTestEnv(t)
	driverID := env.mustDriver(t, "lee", "")

	r, err := env.routes.Create(context.Background(), routeInput(driverID, "12.345", 10, ""))
	require.NoError(t, err)
	assert.Equal(t, "12.35", r.Distance.String())
}

func TestRouteService_CreateDriverGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	busy := env.mustDriver(t, "mia", constants.AvailabilityUnavailable)

	_, err := env.routes.Create(ctx, routeInput(busy, "5.00", 10, ""))
	requireKind(t, err, KindConflict)
	assert.Contains(t, err.Error(), "not available")

	_, err = env.routes.Create(ctx, routeInput(busy+99, "5.00", 10, ""))
	requireKind(t, err, KindNotFound)
	assert.Contains(t, err.Error(), "not found")

	routes, err := env.routes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRouteService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	driverID := env.mustDriver(t, "ned", "")

	cases := map[string]func(*dtos.CreateRouteInput){
		"zero distance":     func(in *dtos.CreateRouteInput) { in.Distance = decimal.Zero },
		"negative distance": func(in *dtos.CreateRouteInput) { in.Distance = decimal.RequireFromString("-1.5") },
		"rounds to zero":    func(in *dtos.CreateRouteInput) { in.Distance = decimal.RequireFromString("0.004") },
		"too far":           func(in *dtos.CreateRouteInput) { in.Distance = decimal.RequireFromString("100000000") },
		"zero duration":     func(in *dtos.CreateRouteInput) { in.EstimatedDuration = 0 },
		"negative duration": func(in *dtos.CreateRouteInput) { in.EstimatedDuration = -5 },
		"empty origin":      func(in *dtos.CreateRouteInput) { in.Origin = "" },
		"empty destination": func(in *dtos.CreateRouteInput) { in.Destination = "" },
		"missing start":     func(in *dtos.CreateRouteInput) { in.StartDatetime = time.Time{} },
		"missing driver":    func(in *dtos.CreateRouteInput) { in.DriverID = 0 },
		"unknown status":    func(in *dtos.CreateRouteInput) { in.RouteStatus = "lost" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := routeInput(driverID, "5.00", 10, "")
			mutate(&in)
			_, err := env.routes.Create(ctx, in)
			requireKind(t, err, KindValidation)
		})
	}

	// Validation runs before the driver lookup.
	in := routeInput(driverID+50, "5.00", 0, "")
	_, err := env.routes.Create(ctx, in)
	requireKind(t, err, KindValidation)
}

func TestRouteService_UpdateEndDatetime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	driverID := env.mustDriver(t, "olga", "")
	id := env.mustRoute(t, driverID, "9.99", 40, constants.RouteStatusInProgress)

	finished, err := env.routes.Update(ctx, id, decodeJSON[dtos.UpdateRouteInput](t,
		`{"end_datetime":"2024-01-15T11:30:00Z","route_status":"completed"}`))
	require.NoError(t, err)
	require.NotNil(t, finished.EndDatetime)
	assert.True(t, finished.EndDatetime.Equal(time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, constants.RouteStatusCompleted, finished.RouteStatus)

	cleared, err := env.routes.Update(ctx, id, decodeJSON[dtos.UpdateRouteInput](t, `{"end_datetime":null}`))
	require.NoError(t, err)
	assert.Nil(t, cleared.EndDatetime)
	assert.Equal(t, constants.RouteStatusCompleted, cleared.RouteStatus)
	assert.Equal(t, "9.99", cleared.Distance.String())
	assert.Equal(t, 40, cleared.EstimatedDuration)

	same, err := env.routes.Update(ctx, id, dtos.UpdateRouteInput{})
	require.NoError(t, err)
	assert.Nil(t, same.EndDatetime)
	assert.Equal(t, "Warehouse", same.Origin)
}

func TestRouteService_UpdateDriver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := env.mustDriver(t, "pam", "")
	other := env.mustDriver(t, "quinn", constants.AvailabilityUnavailable)
	id := env.mustRoute(t, first, "3.30", 15, "")

	// Availability is not re-checked on update.
	moved, err := env.routes.Update(ctx, id, dtos.UpdateRouteInput{DriverID: dtos.Some(other)})
	require.NoError(t, err)
	assert.Equal(t, other, moved.DriverID)

	_, err = env.routes.Update(ctx, id, dtos.UpdateRouteInput{DriverID: dtos.Some(other + 100)})
	requireKind(t, err, KindNotFound)

	joined, err := env.routes.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "quinn", joined.Driver.Name)
}

func TestRouteService_UpdateRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	driverID := env.mustDriver(t, "rita", "")
	id := env.mustRoute(t, driverID, "3.30", 15, "")

	_, err := env.routes.Update(ctx, id+1, dtos.UpdateRouteInput{Origin: dtos.Some("x")})
	requireKind(t, err, KindNotFound)

	for _, raw := range []string{
		`{"distance":0}`,
		`{"distance":null}`,
		`{"estimated_duration":-1}`,
		`{"origin":""}`,
		`{"start_datetime":null}`,
		`{"route_status":null}`,
		`{"driver_id":null}`,
	} {
		_, err := env.routes.Update(ctx, id, decodeJSON[dtos.UpdateRouteInput](t, raw))
		requireKind(t, err, KindValidation)
	}

	r, err := env.routes.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "3.3", r.Distance.String())
}

func TestRouteService_DeleteEligibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	driverID := env.mustDriver(t, "sam", "")

	for _, status := range []constants.RouteStatus{constants.RouteStatusInProgress, constants.RouteStatusCompleted} {
		id := env.mustRoute(t, driverID, "8.00", 30, status)
		err := env.routes.Delete(ctx, id)
		requireKind(t, err, KindConflict)
		assert.Contains(t, err.Error(), "'"+string(status)+"'")

		still, err := env.routes.GetByID(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, still)
	}

	for _, status := range []constants.RouteStatus{constants.RouteStatusPending, constants.RouteStatusCancelled} {
		id := env.mustRoute(t, driverID, "8.00", 30, status)
		require.NoError(t, env.routes.Delete(ctx, id))

		gone, err := env.routes.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, gone)
	}

	requireKind(t, env.routes.Delete(ctx, 9999), KindNotFound)
}

func TestRouteService_ListWithDriver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.mustDriver(t, "tess", "")
	b := env.mustDriver(t, "uma", "")
	r1 := env.mustRoute(t, b, "1.00", 5, "")
	r2 := env.mustRoute(t, a, "2.00", 5, "")

	routes, err := env.routes.List(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, r1, routes[0].ID)
	assert.Equal(t, "uma", routes[0].Driver.Name)
	assert.Equal(t, r2, routes[1].ID)
	assert.Equal(t, "tess", routes[1].Driver.Name)
}

// create D1, route R1, a no-op update, then the delete guards in order.
func TestFleetLifecycleScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d1 := env.mustDriver(t, "victor", constants.AvailabilityAvailable)
	r1 := env.mustRoute(t, d1, "25.5", 45, constants.RouteStatusPending)

	_, err := env.drivers.Update(ctx, d1, dtos.UpdateDriverInput{})
	require.NoError(t, err)

	requireKind(t, env.drivers.Delete(ctx, d1), KindConflict)
	require.NoError(t, env.routes.Delete(ctx, r1))
	require.NoError(t, env.drivers.Delete(ctx, d1))
}
