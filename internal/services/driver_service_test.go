package services

import (
	"context"
	"errors"
	"testing"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/dtos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverService_CreateDefaultsAvailability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d, err := env.drivers.Create(ctx, driverInput("alice"))
	require.NoError(t, err)
	assert.NotZero(t, d.ID)
	assert.Equal(t, constants.AvailabilityAvailable, d.AvailabilityStatus)
	assert.False(t, d.CreatedAt.IsZero())

	in := driverInput("bob")
	in.AvailabilityStatus = constants.AvailabilityUnavailable
	d, err = env.drivers.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, constants.AvailabilityUnavailable, d.AvailabilityStatus)
}

func TestDriverService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := map[string]func(*dtos.CreateDriverInput){
		"empty name":      func(in *dtos.CreateDriverInput) { in.Name = "" },
		"bad email":       func(in *dtos.CreateDriverInput) { in.Email = "not-an-email" },
		"empty plate":     func(in *dtos.CreateDriverInput) { in.VehicleLicensePlate = "" },
		"unknown status":  func(in *dtos.CreateDriverInput) { in.AvailabilityStatus = "on_break" },
		"empty license":   func(in *dtos.CreateDriverInput) { in.LicenseNumber = "" },
		"empty vehicle":   func(in *dtos.CreateDriverInput) { in.VehicleMake = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := driverInput("carol")
			mutate(&in)
			_, err := env.drivers.Create(ctx, in)
			requireKind(t, err, KindValidation)
		})
	}

	drivers, err := env.drivers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, drivers)
}

func TestDriverService_UpdateMergePatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustDriver(t, "dave", "")

	before, err := env.drivers.GetByID(ctx, id)
	require.NoError(t, err)

	same, err := env.drivers.Update(ctx, id, dtos.UpdateDriverInput{})
	require.NoError(t, err)
	assert.Equal(t, before, same)

	renamed, err := env.drivers.Update(ctx, id, dtos.UpdateDriverInput{Name: dtos.Some("David")})
	require.NoError(t, err)
	assert.Equal(t, "David", renamed.Name)
	assert.Equal(t, before.Email, renamed.Email)
	assert.Equal(t, before.VehicleLicensePlate, renamed.VehicleLicensePlate)
	assert.Equal(t, before.AvailabilityStatus, renamed.AvailabilityStatus)

	off, err := env.drivers.Update(ctx, id, decodeJSON[dtos.UpdateDriverInput](t, `{"availability_status":"unavailable"}`))
	require.NoError(t, err)
	assert.Equal(t, constants.AvailabilityUnavailable, off.AvailabilityStatus)
	assert.Equal(t, "David", off.Name)
}

func TestDriverService_UpdateRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustDriver(t, "erin", "")

	_, err := env.drivers.Update(ctx, id+10, dtos.UpdateDriverInput{Name: dtos.Some("x")})
	requireKind(t, err, KindNotFound)
	assert.Contains(t, err.Error(), "not found")

	_, err = env.drivers.Update(ctx, id+10, dtos.UpdateDriverInput{})
	requireKind(t, err, KindNotFound)

	_, err = env.drivers.Update(ctx, id, dtos.UpdateDriverInput{Email: dtos.Some("nope")})
	requireKind(t, err, KindValidation)

	_, err = env.drivers.Update(ctx, id, decodeJSON[dtos.UpdateDriverInput](t, `{"name":null}`))
	requireKind(t, err, KindValidation)

	_, err = env.drivers.Update(ctx, id, dtos.UpdateDriverInput{Phone: dtos.Some("")})
	requireKind(t, err, KindValidation)
}

func TestDriverService_DeleteGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, status := range constants.RouteStatuses {
		t.Run(string(status), func(t *testing.T) {
			id := env.mustDriver(t, "frank-"+string(status), "")
			env.mustRoute(t, id, "12.00", 20, status)

			err := env.drivers.Delete(ctx, id)
			requireKind(t, err, KindConflict)
			assert.Contains(t, err.Error(), "associated routes")

			still, err := env.drivers.GetByID(ctx, id)
			require.NoError(t, err)
			assert.NotNil(t, still)
		})
	}
}

func TestDriverService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.mustDriver(t, "gina", "")

	require.NoError(t, env.drivers.Delete(ctx, id))

	gone, err := env.drivers.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	requireKind(t, env.drivers.Delete(ctx, id), KindNotFound)
}

func TestDriverService_ListInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	a := env.mustDriver(t, "hank", "")
	b := env.mustDriver(t, "iris", constants.AvailabilityUnavailable)

	drivers, err := env.drivers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, a, drivers[0].ID)
	assert.Equal(t, b, drivers[1].ID)
}

func TestDriverService_StorageFailure(t *testing.T) {
	svc := NewDriverService(failingStore{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, driverInput("jade"))
	requireKind(t, err, KindStorage)
	assert.True(t, errors.Is(err, errStoreDown))

	_, err = svc.GetByID(ctx, 1)
	requireKind(t, err, KindStorage)

	_, err = svc.List(ctx)
	assert.True(t, IsStorage(err))

	requireKind(t, svc.Delete(ctx, 1), KindStorage)
}
