package repository

import (
	"context"

	"github.com/medikit/ClinicStock_Go/internal/domain"
)

// The persisted state is three whole-file JSON tables, so mutations are
// expressed as read-modify-write closures: the store runs the closure with
// the current table contents under the table's write lock and commits the
// returned state atomically. Closures touching two tables commit both
// together or not at all.

// InventoryMutation rewrites the inventory table.
type InventoryMutation func(items []domain.Item) ([]domain.Item, error)

// UsageMutation rewrites the inventory table and the usage ledger as a pair.
type UsageMutation func(items []domain.Item, events []domain.UsageEvent) ([]domain.Item, []domain.UsageEvent, error)

// OrderMutation rewrites the inventory table and the purchase-order table as
// a pair. Returning a nil items slice leaves the inventory table untouched.
type OrderMutation func(items []domain.Item, orders []domain.PurchaseOrder) ([]domain.Item, []domain.PurchaseOrder, error)

// OrdersOnlyMutation rewrites the purchase-order table alone.
type OrdersOnlyMutation func(orders []domain.PurchaseOrder) ([]domain.PurchaseOrder, error)

// Inventory defines read access to the inventory table.
type Inventory interface {
	GetItems(ctx context.Context) ([]domain.Item, error)
}

// Usage defines read access to the usage ledger.
type Usage interface {
	GetUsageEvents(ctx context.Context) ([]domain.UsageEvent, error)
}

// Orders defines read access to the purchase-order table.
type Orders interface {
	GetOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// Store is the full persistence interface over the three JSON tables.
type Store interface {
	Inventory
	Usage
	Orders

	UpdateInventory(ctx context.Context, fn InventoryMutation) error
	UpdateInventoryAndUsage(ctx context.Context, fn UsageMutation) error
	UpdateInventoryAndOrders(ctx context.Context, fn OrderMutation) error
	UpdateOrders(ctx context.Context, fn OrdersOnlyMutation) error
}
