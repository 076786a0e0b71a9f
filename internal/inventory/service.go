package inventory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/event"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/repository"
)

// Expiration alert windows, in days.
const (
	expiringWarningDays  = 7
	expiringCriticalDays = 3
)

// CreateItemInput carries the caller-supplied fields for a new item.
type CreateItemInput struct {
	Name           string
	Category       string
	Barcode        string
	CurrentStock   int
	MinThreshold   int
	UnitPrice      float64
	Supplier       string
	ExpirationDate string
	Description    string
}

// UpdateItemInput carries a partial update. Nil fields are left unchanged;
// set fields overwrite, matching a JSON merge of the request body.
type UpdateItemInput struct {
	Name           *string
	Category       *string
	Barcode        *string
	CurrentStock   *int
	MinThreshold   *int
	UnitPrice      *float64
	Supplier       *string
	ExpirationDate *string
	Description    *string
}

// Service defines the inventory catalog business logic.
type Service interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error

	// FindByBarcode looks an item up by its barcode.
	FindByBarcode(ctx context.Context, barcode string) (*domain.Item, error)

	// GetAlerts computes the current low-stock and expiration alerts.
	GetAlerts(ctx context.Context) ([]domain.Alert, error)
}

type service struct {
	repo     repository.Store
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new inventory service.
func NewService(repo repository.Store, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		now:      time.Now,
	}
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

func (s *service) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.CurrentStock < 0 || input.MinThreshold < 0 {
		return nil, fmt.Errorf("%w: stock and threshold cannot be negative", domain.ErrValidation)
	}
	if input.UnitPrice < 0 {
		return nil, fmt.Errorf("%w: unit price cannot be negative", domain.ErrValidation)
	}

	now := s.now()
	item := domain.Item{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Category:       input.Category,
		Barcode:        input.Barcode,
		CurrentStock:   input.CurrentStock,
		MinThreshold:   input.MinThreshold,
		UnitPrice:      input.UnitPrice,
		Supplier:       input.Supplier,
		ExpirationDate: input.ExpirationDate,
		Description:    input.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.repo.UpdateInventory(ctx, func(items []domain.Item) ([]domain.Item, error) {
		if item.Barcode != "" {
			for i := range items {
				if items[i].Barcode == item.Barcode {
					return nil, fmt.Errorf("%w: barcode %q already in use", domain.ErrValidation, item.Barcode)
				}
			}
		}
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Item created", "itemID", item.ID, "name", item.Name)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.ItemCreated,
			Payload: map[string]string{"item_id": item.ID, "name": item.Name},
		}); err != nil {
			log.Warn("Failed to publish item event", "error", err)
		}
	}

	return &item, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*domain.Item, error) {
	var updated domain.Item

	err := s.repo.UpdateInventory(ctx, func(items []domain.Item) ([]domain.Item, error) {
		idx := -1
		for i := range items {
			if items[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrItemNotFound
		}

		item := &items[idx]
		if input.Name != nil {
			if *input.Name == "" {
				return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
			}
			item.Name = *input.Name
		}
		if input.Category != nil {
			item.Category = *input.Category
		}
		if input.Barcode != nil {
			item.Barcode = *input.Barcode
		}
		if input.CurrentStock != nil {
			if *input.CurrentStock < 0 {
				return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrValidation)
			}
			item.CurrentStock = *input.CurrentStock
		}
		if input.MinThreshold != nil {
			if *input.MinThreshold < 0 {
				return nil, fmt.Errorf("%w: threshold cannot be negative", domain.ErrValidation)
			}
			item.MinThreshold = *input.MinThreshold
		}
		if input.UnitPrice != nil {
			if *input.UnitPrice < 0 {
				return nil, fmt.Errorf("%w: unit price cannot be negative", domain.ErrValidation)
			}
			item.UnitPrice = *input.UnitPrice
		}
		if input.Supplier != nil {
			item.Supplier = *input.Supplier
		}
		if input.ExpirationDate != nil {
			item.ExpirationDate = *input.ExpirationDate
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		item.UpdatedAt = s.now()

		updated = *item
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteItem removes the item record. Usage ledger entries referencing it
// are kept and will show a placeholder name in history listings.
func (s *service) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := s.repo.UpdateInventory(ctx, func(items []domain.Item) ([]domain.Item, error) {
		filtered := items[:0]
		for _, item := range items {
			if item.ID != id {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) == len(items) {
			return nil, domain.ErrItemNotFound
		}
		return filtered, nil
	})
	if err != nil {
		return err
	}

	log.Info("Item deleted", "itemID", id)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.ItemDeleted,
			Payload: map[string]string{"item_id": id},
		}); err != nil {
			log.Warn("Failed to publish item event", "error", err)
		}
	}

	return nil
}

func (s *service) FindByBarcode(ctx context.Context, barcode string) (*domain.Item, error) {
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode is required", domain.ErrValidation)
	}
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	for i := range items {
		if items[i].Barcode == barcode {
			return &items[i], nil
		}
	}
	return nil, domain.ErrItemNotFound
}

// GetAlerts scans the inventory for low-stock and expiring items. An item
// can raise both alert types at once.
func (s *service) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	now := s.now()
	alerts := make([]domain.Alert, 0)

	for _, item := range items {
		if item.IsLowStock() {
			severity := domain.AlertSeverityWarning
			if item.CurrentStock == 0 {
				severity = domain.AlertSeverityCritical
			}
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertTypeLowStock,
				Severity: severity,
				Item:     item.Name,
				Message:  fmt.Sprintf("Low stock: %d units remaining (min: %d)", item.CurrentStock, item.MinThreshold),
				ItemID:   item.ID,
			})
		}

		expiry, ok := item.ExpiresAt()
		if !ok {
			continue
		}
		daysToExpiry := int(math.Ceil(expiry.Sub(now).Hours() / 24))
		if daysToExpiry > expiringWarningDays {
			continue
		}
		severity := domain.AlertSeverityWarning
		if daysToExpiry <= expiringCriticalDays {
			severity = domain.AlertSeverityCritical
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertTypeExpiring,
			Severity: severity,
			Item:     item.Name,
			Message:  fmt.Sprintf("Expires in %d days (%s)", daysToExpiry, item.ExpirationDate),
			ItemID:   item.ID,
		})
	}

	return alerts, nil
}
