package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/db/dbtest"
	"fleet-management/fleetboard/internal/db/repositories"
	"fleet-management/fleetboard/internal/models/dtos"
	gormModels "fleet-management/fleetboard/internal/models/gorm"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users   *UserService
	drivers *DriverService
	routes  *RouteService
	reports *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	orm, sx := dbtest.New(t)

	userRepo := repositories.NewUserRepositoryGORM(orm)
	driverRepo := repositories.NewDriverRepositoryGORM(orm)
	routeRepo := repositories.NewRouteRepositoryGORM(orm)
	reader := repositories.NewRouteReadRepository(sx)

	return &testEnv{
		users:   NewUserService(userRepo),
		drivers: NewDriverService(driverRepo, routeRepo),
		routes:  NewRouteService(routeRepo, driverRepo, reader),
		reports: NewReportService(reader),
	}
}

var testStart = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func driverInput(name string) dtos.CreateDriverInput {
	return dtos.CreateDriverInput{
		Name:                name,
		Email:               name + "@fleet.test",
		Phone:               "555-0100",
		LicenseNumber:       "LIC-" + name,
		VehicleMake:         "Ford",
		VehicleModel:        "Transit",
		VehicleLicensePlate: "PLT-" + name,
	}
}

func routeInput(driverID uint, distance string, duration int, status constants.RouteStatus) dtos.CreateRouteInput {
	return dtos.CreateRouteInput{
		DriverID:          driverID,
		Origin:            "Warehouse",
		Destination:       "Downtown",
		Distance:          decimal.RequireFromString(distance),
		EstimatedDuration: duration,
		StartDatetime:     testStart,
		RouteStatus:       status,
	}
}

func (e *testEnv) mustDriver(t *testing.T, name string, status constants.AvailabilityStatus) uint {
	t.Helper()
	in := driverInput(name)
	in.AvailabilityStatus = status
	d, err := e.drivers.Create(context.Background(), in)
	require.NoError(t, err)
	return d.ID
}

func (e *testEnv) mustRoute(t *testing.T, driverID uint, distance string, duration int, status constants.RouteStatus) uint {
	t.Helper()
	r, err := e.routes.Create(context.Background(), routeInput(driverID, distance, duration, status))
	require.NoError(t, err)
	return r.ID
}

// decodeJSON builds patch inputs the way the HTTP layer does.
func decodeJSON[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	got, ok := KindOf(err)
	require.True(t, ok, "expected a ServiceError, got %v", err)
	require.Equal(t, kind, got, err.Error())
}

var errStoreDown = errors.New("connection refused")

// failingStore fails every call, standing in for an unreachable database.
type failingStore struct{}

func (failingStore) Insert(context.Context, *gormModels.Driver) error { return errStoreDown }
func (failingStore) GetByID(context.Context, uint) (*gormModels.Driver, error) {
	return nil, errStoreDown
}
func (failingStore) List(context.Context) ([]gormModels.Driver, error) { return nil, errStoreDown }
func (failingStore) Update(context.Context, uint, map[string]interface{}) (*gormModels.Driver, error) {
	return nil, errStoreDown
}
func (failingStore) Delete(context.Context, uint) error { return errStoreDown }
