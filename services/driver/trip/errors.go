package trip

import "errors"

var (
	// ErrMissingVehicle means no vehicle is selected for the session
	ErrMissingVehicle = errors.New("no vehicle selected")
	// ErrNoRoute means no route is assigned to the driver
	ErrNoRoute = errors.New("no route assigned")
	// ErrInvalidRouteState means the route cannot be started in its current status
	ErrInvalidRouteState = errors.New("route is not startable")
	// ErrNoActiveTrip means there is no trip to end
	ErrNoActiveTrip = errors.New("no active trip")
	// ErrInvalidTransition means the operation is not allowed from the current status
	ErrInvalidTransition = errors.New("invalid trip transition")
	// ErrTripInProgress means the driver already has an open trip
	ErrTripInProgress = errors.New("trip already in progress")
)
