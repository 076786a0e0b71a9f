package restock

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

// Service defines the restock analytics business logic.
type Service interface {
	// GetSuggestions returns ranked reorder recommendations for all items
	// that are low on stock or show recent consumption.
	GetSuggestions(ctx context.Context) ([]domain.RestockSuggestion, error)

	// PreviewAutomatedRestock is the dry run of ExecuteAutomatedRestock:
	// it reports what would be ordered without writing anything.
	PreviewAutomatedRestock(ctx context.Context) (*domain.RestockPreview, error)

	// ExecuteAutomatedRestock orders and immediately credits stock for every
	// item currently at or below its threshold, recording one purchase order
	// for the whole batch.
	ExecuteAutomatedRestock(ctx context.Context) (*domain.RestockResult, error)
}

type service struct {
	repo     repository.Store
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new restock service.
func NewService(repo repository.Store, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// GetSuggestions returns ranked reorder recommendations.
func (s *service) GetSuggestions(ctx context.Context) ([]domain.RestockSuggestion, error) {
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	events, err := s.repo.GetUsageEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage events: %w", err)
	}

	return BuildSuggestionsAt(items, events, s.now()), nil
}

// PreviewAutomatedRestock reports the batch an automated restock would order.
func (s *service) PreviewAutomatedRestock(ctx context.Context) (*domain.RestockPreview, error) {
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	events, err := s.repo.GetUsageEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage events: %w", err)
	}

	preview := BuildPreviewAt(items, events, s.now())
	return &preview, nil
}

// ExecuteAutomatedRestock creates the batch order and credits stock in one
// atomic commit. The urgent set is re-derived inside the mutation so a usage
// recorded between preview and execute is never missed.
func (s *service) ExecuteAutomatedRestock(ctx context.Context) (*domain.RestockResult, error) {
	log := logger.FromContext(ctx)

	usageEvents, err := s.repo.GetUsageEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage events: %w", err)
	}

	now := s.now()
	var created *domain.PurchaseOrder
	var restocked int

	err = s.repo.UpdateInventoryAndOrders(ctx, func(items []domain.Item, orders []domain.PurchaseOrder) ([]domain.Item, []domain.PurchaseOrder, error) {
		preview := BuildPreviewAt(items, usageEvents, now)
		if len(preview.Items) == 0 {
			return nil, nil, nil
		}

		quantities := make(map[string]int, len(preview.Items))
		lines := make([]domain.OrderItem, 0, len(preview.Items))
		for _, sug := range preview.Items {
			quantities[sug.ItemID] = sug.SuggestedQuantity
			lines = append(lines, domain.OrderItem{
				ItemID:   sug.ItemID,
				Name:     sug.ItemName,
				Quantity: domain.Quantity(sug.SuggestedQuantity),
			})
		}

		for i := range items {
			qty, ok := quantities[items[i].ID]
			if !ok {
				continue
			}
			items[i].CurrentStock += qty
			items[i].UpdatedAt = now
		}

		order := domain.PurchaseOrder{
			ID:        uuid.NewString(),
			Supplier:  domain.AutomatedSupplierName,
			Items:     lines,
			Status:    domain.OrderStatusSuccessful,
			Automated: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		orders = append(orders, order)

		created = &order
		restocked = len(lines)
		return items, orders, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute restock: %w", err)
	}

	if created == nil {
		return &domain.RestockResult{
			Success: false,
			Message: "No items need restocking",
		}, nil
	}

	total := created.TotalQuantity()
	log.Info("Automated restock executed",
		"orderID", created.ID,
		"itemsRestocked", restocked,
		"totalQuantity", total)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewRestockExecutedEvent(created.ID, restocked, total)); err != nil {
			log.Warn("Failed to publish restock event", "error", err)
		}
		if err := s.eventBus.Publish(ctx, event.NewOrderCreatedEvent(created.ID, created.Supplier, true, restocked, total)); err != nil {
			log.Warn("Failed to publish order event", "error", err)
		}
	}

	return &domain.RestockResult{
		Success:        true,
		Message:        fmt.Sprintf("Restocked %d items", restocked),
		ItemsRestocked: restocked,
		TotalQuantity:  total,
		Order:          created,
	}, nil
}
