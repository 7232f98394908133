package constants

// WebSocket event types pushed on the fleet stream
const (
	EventError     = "error"
	EventPing      = "ping"
	EventPong      = "pong"
	EventFleetView = "fleet_view"
)

// Message bus topics
const (
	TopicLocationUpdated = "driver.location.updated"
)
