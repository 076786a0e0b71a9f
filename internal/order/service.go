package order

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

// Service defines the purchase-order business logic.
type Service interface {
	// CreatePurchaseOrder records the order and credits ordered quantities
	// onto matching items in the same commit. Lines referencing unknown
	// item IDs stay on the order for audit but never touch stock.
	CreatePurchaseOrder(ctx context.Context, supplier string, lines []domain.OrderItem) (*domain.PurchaseOrder, error)

	// ListOrders returns every recorded purchase order.
	ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error)

	// UpdateStatus sets the status field on an existing order.
	UpdateStatus(ctx context.Context, id, status string) (*domain.PurchaseOrder, error)
}

type service struct {
	repo     repository.Store
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new purchase-order service.
func NewService(repo repository.Store, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// CreatePurchaseOrder records the order and fulfills it synchronously.
func (s *service) CreatePurchaseOrder(ctx context.Context, supplier string, lines []domain.OrderItem) (*domain.PurchaseOrder, error) {
	log := logger.FromContext(ctx)

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one line item", domain.ErrValidation)
	}
	for _, line := range lines {
		if line.ItemID == "" {
			return nil, fmt.Errorf("%w: line item is missing itemId", domain.ErrValidation)
		}
	}

	now := s.now()
	order := domain.PurchaseOrder{
		ID:        uuid.NewString(),
		Supplier:  supplier,
		Items:     lines,
		Status:    domain.OrderStatusSuccessful,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.UpdateInventoryAndOrders(ctx, func(items []domain.Item, orders []domain.PurchaseOrder) ([]domain.Item, []domain.PurchaseOrder, error) {
		credited := false
		for _, line := range lines {
			// Non-positive quantities contribute nothing, same as
			// unparseable input. Stock never goes below zero here.
			if line.Quantity <= 0 {
				continue
			}
			for i := range items {
				if items[i].ID == line.ItemID {
					items[i].CurrentStock += int(line.Quantity)
					items[i].UpdatedAt = now
					credited = true
					break
				}
			}
		}

		orders = append(orders, order)
		if !credited {
			// Order-only commit when no line matched an item.
			return nil, orders, nil
		}
		return items, orders, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Purchase order created",
		"orderID", order.ID,
		"supplier", supplier,
		"lineItems", len(lines),
		"totalQuantity", order.TotalQuantity())

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewOrderCreatedEvent(order.ID, supplier, false, len(lines), order.TotalQuantity())); err != nil {
			log.Warn("Failed to publish order event", "error", err)
		}
	}

	return &order, nil
}

func (s *service) ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders, err := s.repo.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (*domain.PurchaseOrder, error) {
	if status != domain.OrderStatusPending && status != domain.OrderStatusSuccessful {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	var updated domain.PurchaseOrder
	err := s.repo.UpdateOrders(ctx, func(orders []domain.PurchaseOrder) ([]domain.PurchaseOrder, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				orders[i].UpdatedAt = s.now()
				updated = orders[i]
				return orders, nil
			}
		}
		return nil, domain.ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
