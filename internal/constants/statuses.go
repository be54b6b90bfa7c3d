package constants

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AvailabilityStatus mirrors the Postgres ENUM 'driver_availability_status'
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

func (s AvailabilityStatus) String() string { return string(s) }

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityUnavailable:
		return true
	}
	return false
}

// ParseAvailabilityStatus rejects anything outside the closed set.
func ParseAvailabilityStatus(raw string) (AvailabilityStatus, error) {
	s := AvailabilityStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid availability_status %q: expected one of available, unavailable", raw)
	}
	return s, nil
}

func (s *AvailabilityStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("availability_status must be a string: %w", err)
	}
	parsed, err := ParseAvailabilityStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Scan implements the sql.Scanner interface
func (s *AvailabilityStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = AvailabilityStatus(v)
	case []byte:
		*s = AvailabilityStatus(v)
	default:
		return fmt.Errorf("AvailabilityStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s AvailabilityStatus) Value() (driver.Value, error) { return string(s), nil }

// RouteStatus mirrors the Postgres ENUM 'route_status'
type RouteStatus string

const (
	RouteStatusPending    RouteStatus = "pending"
	RouteStatusInProgress RouteStatus = "in_progress"
	RouteStatusCompleted  RouteStatus = "completed"
	RouteStatusCancelled  RouteStatus = "cancelled"
)

// RouteStatuses lists every route status in report order.
var RouteStatuses = []RouteStatus{
	RouteStatusPending,
	RouteStatusInProgress,
	RouteStatusCompleted,
	RouteStatusCancelled,
}

func (s RouteStatus) String() string { return string(s) }

func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusPending, RouteStatusInProgress, RouteStatusCompleted, RouteStatusCancelled:
		return true
	}
	return false
}

// Deletable reports whether a route in this status may be removed.
// In-progress and completed routes are kept as history.
func (s RouteStatus) Deletable() bool {
	return s == RouteStatusPending || s == RouteStatusCancelled
}

func ParseRouteStatus(raw string) (RouteStatus, error) {
	s := RouteStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid route_status %q: expected one of pending, in_progress, completed, cancelled", raw)
	}
	return s, nil
}

func (s *RouteStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("route_status must be a string: %w", err)
	}
	parsed, err := ParseRouteStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Scan implements the sql.Scanner interface
func (s *RouteStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = RouteStatus(v)
	case []byte:
		*s = RouteStatus(v)
	default:
		return fmt.Errorf("RouteStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s RouteStatus) Value() (driver.Value, error) { return string(s), nil }
