package fleet

import "errors"

// ErrInvalidAssignment is returned when an assignment misses the driver or route
var ErrInvalidAssignment = errors.New("invalid driver assignment")
