package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/services/location"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// LocationGW publishes location events on NSQ
type LocationGW struct {
	publisher Publisher
	topic     string
}

var _ location.LocationGW = (*LocationGW)(nil)

// NewLocationGW creates a new NSQ location gateway
func NewLocationGW(publisher Publisher, topic string) *LocationGW {
	return &LocationGW{publisher: publisher, topic: topic}
}

// PublishLocationUpdated publishes an accepted location update
func (g *LocationGW) PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.publisher.Publish(g.topic, event); err != nil {
		return fmt.Errorf("failed to publish location event: %w", err)
	}
	return nil
}
