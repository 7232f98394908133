package nsq

import (
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
	nsqpkg "github.com/piresc/fleettrack/internal/pkg/nsq"
)

// Nudger is anything that can be asked to refresh early
type Nudger interface {
	Nudge()
}

// LocationUpdated returns a handler that refreshes the dashboard when a driver moves.
// Malformed events are dropped rather than requeued.
func LocationUpdated(poller Nudger) nsqpkg.MessageHandler {
	return func(message []byte) error {
		var event models.LocationEvent
		if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
			logger.Warn("Dropping malformed location event", logger.Err(err))
			return nil
		}
		logger.Debug("Location event received", logger.String("driver_id", event.DriverID))
		poller.Nudge()
		return nil
	}
}
