package event

import (
	"context"
	"fmt"
	"sync"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event types published by the inventory services.
const (
	UsageRecorded   Type = "usage.recorded"
	OrderCreated    Type = "order.created"
	RestockExecuted Type = "restock.executed"
	ItemCreated     Type = "item.created"
	ItemDeleted     Type = "item.deleted"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// UsageRecordedPayloadV1 is the typed payload for usage events.
type UsageRecordedPayloadV1 struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	StockAfter int    `json:"stock_after"`
	LowStock   bool   `json:"low_stock"`
}

// OrderCreatedPayloadV1 is the typed payload for purchase-order events.
type OrderCreatedPayloadV1 struct {
	OrderID       string `json:"order_id"`
	Supplier      string `json:"supplier"`
	Automated     bool   `json:"automated"`
	LineItems     int    `json:"line_items"`
	TotalQuantity int    `json:"total_quantity"`
}

// RestockExecutedPayloadV1 is the typed payload for automated restock runs.
type RestockExecutedPayloadV1 struct {
	OrderID        string `json:"order_id"`
	ItemsRestocked int    `json:"items_restocked"`
	TotalQuantity  int    `json:"total_quantity"`
}

// NewUsageRecordedEvent builds a usage.recorded event.
func NewUsageRecordedEvent(itemID, itemName string, quantity, stockAfter int, lowStock bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UsageRecorded,
		Payload: UsageRecordedPayloadV1{
			ItemID:     itemID,
			ItemName:   itemName,
			Quantity:   quantity,
			StockAfter: stockAfter,
			LowStock:   lowStock,
		},
	}
}

// NewOrderCreatedEvent builds an order.created event.
func NewOrderCreatedEvent(orderID, supplier string, automated bool, lineItems, totalQuantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OrderCreated,
		Payload: OrderCreatedPayloadV1{
			OrderID:       orderID,
			Supplier:      supplier,
			Automated:     automated,
			LineItems:     lineItems,
			TotalQuantity: totalQuantity,
		},
	}
}

// NewRestockExecutedEvent builds a restock.executed event.
func NewRestockExecutedEvent(orderID string, itemsRestocked, totalQuantity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RestockExecuted,
		Payload: RestockExecutedPayloadV1{
			OrderID:        orderID,
			ItemsRestocked: itemsRestocked,
			TotalQuantity:  totalQuantity,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler never blocks the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("encountered %d errors while handling event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
