package models

import "time"

// RouteStatus represents the status of a route owned by the route service
type RouteStatus string

const (
	RouteStatusAssigned   RouteStatus = "assigned"
	RouteStatusInProgress RouteStatus = "in_progress"
	RouteStatusCompleted  RouteStatus = "completed"
)

// Route is a driver assignment between two places
type Route struct {
	RouteID       string      `json:"id" db:"id"`
	DriverID      string      `json:"driverId" db:"driver_id"`
	StartLocation string      `json:"startLocation" db:"start_location"`
	EndLocation   string      `json:"endLocation" db:"end_location"`
	DistanceKm    float64     `json:"distanceKm" db:"distance_km"`
	Status        RouteStatus `json:"status" db:"status"`
	UpdatedAt     time.Time   `json:"updatedAt,omitempty" db:"updated_at"`
}

// Startable reports whether a trip may be started against the route
func (r Route) Startable() bool {
	return r.Status == RouteStatusAssigned || r.Status == RouteStatusInProgress
}

// TripStatus maps the route status onto the driver's trip status
func (s RouteStatus) TripStatus() TripStatus {
	switch s {
	case RouteStatusAssigned:
		return TripStatusAssigned
	case RouteStatusInProgress:
		return TripStatusActive
	case RouteStatusCompleted:
		return TripStatusCompleted
	default:
		return TripStatusIdle
	}
}

// Booking is a customer booking that can be served by a route
type Booking struct {
	BookingID        string `json:"id" db:"id"`
	AssignedDriverID string `json:"assignedDriverId,omitempty" db:"assigned_driver_id"`
	RouteID          string `json:"routeId,omitempty" db:"route_id"`
	Status           string `json:"status" db:"status"`
}

// AssignDriverRequest is the body sent to the booking service
type AssignDriverRequest struct {
	DriverID string `json:"driverId" validate:"required"`
	RouteID  string `json:"routeId" validate:"required"`
}
