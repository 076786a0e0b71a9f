package metrics

import (
	"context"

	"github.com/medikit/ClinicStock_Go/internal/event"
)

// EventMetricsCollector subscribes to domain events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.UsageRecorded,
		event.OrderCreated,
		event.RestockExecuted,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.UsageRecordedPayloadV1:
		UsageRecorded.WithLabelValues(payload.ItemName).Inc()
		UnitsConsumed.Add(float64(payload.Quantity))
		if payload.LowStock {
			LowStockEvents.WithLabelValues(payload.ItemName).Inc()
		}

	case event.OrderCreatedPayloadV1:
		automated := "false"
		if payload.Automated {
			automated = "true"
		}
		OrdersCreated.WithLabelValues(automated).Inc()
		UnitsOrdered.Add(float64(payload.TotalQuantity))

	case event.RestockExecutedPayloadV1:
		ItemsRestocked.Add(float64(payload.ItemsRestocked))
	}

	return nil
}
