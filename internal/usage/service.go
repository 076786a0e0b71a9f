package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/event"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/repository"
)

// Service defines the usage recording business logic.
type Service interface {
	// RecordUsage decrements an item's stock and appends the consumption
	// event to the ledger in one atomic commit. There is no partial
	// fulfillment: the whole quantity is deducted or nothing is.
	RecordUsage(ctx context.Context, itemID string, quantity int, notes string) (*domain.UsageEvent, error)

	// GetHistory returns the full usage ledger, newest first, with each
	// entry carrying the item's display name.
	GetHistory(ctx context.Context) ([]domain.UsageHistoryEntry, error)
}

type service struct {
	repo     repository.Store
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new usage service.
func NewService(repo repository.Store, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// RecordUsage decrements stock and appends the ledger entry atomically.
func (s *service) RecordUsage(ctx context.Context, itemID string, quantity int, notes string) (*domain.UsageEvent, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId is required", domain.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	now := s.now()
	var recorded domain.UsageEvent
	var stockAfter int
	var lowStock bool
	var itemName string

	err := s.repo.UpdateInventoryAndUsage(ctx, func(items []domain.Item, events []domain.UsageEvent) ([]domain.Item, []domain.UsageEvent, error) {
		idx := -1
		for i := range items {
			if items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, nil, domain.ErrItemNotFound
		}
		if quantity > items[idx].CurrentStock {
			return nil, nil, fmt.Errorf("%w: requested %d, have %d", domain.ErrInsufficientStock, quantity, items[idx].CurrentStock)
		}

		items[idx].CurrentStock -= quantity
		items[idx].UpdatedAt = now

		recorded = domain.UsageEvent{
			ID:       uuid.NewString(),
			ItemID:   itemID,
			Quantity: quantity,
			Notes:    notes,
			Date:     now,
		}
		events = append(events, recorded)

		itemName = items[idx].Name
		stockAfter = items[idx].CurrentStock
		lowStock = items[idx].IsLowStock()
		return items, events, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Usage recorded",
		"itemID", itemID,
		"quantity", quantity,
		"stockAfter", stockAfter)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewUsageRecordedEvent(itemID, itemName, quantity, stockAfter, lowStock)); err != nil {
			log.Warn("Failed to publish usage event", "error", err)
		}
	}

	return &recorded, nil
}

// GetHistory returns the ledger enriched with item names, newest first.
// Entries whose item was deleted keep their dangling itemId and display
// a placeholder name.
func (s *service) GetHistory(ctx context.Context) ([]domain.UsageHistoryEntry, error) {
	events, err := s.repo.GetUsageEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage events: %w", err)
	}
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	names := make(map[string]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}

	history := make([]domain.UsageHistoryEntry, 0, len(events))
	for _, ev := range events {
		name, ok := names[ev.ItemID]
		if !ok {
			name = domain.UnknownItemName
		}
		history = append(history, domain.UsageHistoryEntry{
			UsageEvent: ev,
			ItemName:   name,
		})
	}

	// Ledger order is append order; reverse for newest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	return history, nil
}
