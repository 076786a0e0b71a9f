package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/event"
	"github.com/medikit/ClinicStock_Go/internal/repository"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeStore is a stateful in-memory stand-in for the JSON file store.
type fakeStore struct {
	mu     sync.Mutex
	items  []domain.Item
	orders []domain.PurchaseOrder

	readErr error
}

func (f *fakeStore) GetItems(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeStore) GetUsageEvents(ctx context.Context) ([]domain.UsageEvent, error) {
	return nil, nil
}

func (f *fakeStore) GetOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]domain.PurchaseOrder(nil), f.orders...), nil
}

func (f *fakeStore) UpdateInventory(ctx context.Context, fn repository.InventoryMutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := fn(append([]domain.Item(nil), f.items...))
	if err != nil {
		return err
	}
	f.items = items
	return nil
}

func (f *fakeStore) UpdateInventoryAndUsage(ctx context.Context, fn repository.UsageMutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, _, err := fn(append([]domain.Item(nil), f.items...), nil)
	if err != nil {
		return err
	}
	f.items = items
	return nil
}

func (f *fakeStore) UpdateInventoryAndOrders(ctx context.Context, fn repository.OrderMutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, orders, err := fn(append([]domain.Item(nil), f.items...), append([]domain.PurchaseOrder(nil), f.orders...))
	if err != nil {
		return err
	}
	if items != nil {
		f.items = items
	}
	if orders != nil {
		f.orders = orders
	}
	return nil
}

func (f *fakeStore) UpdateOrders(ctx context.Context, fn repository.OrdersOnlyMutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders, err := fn(append([]domain.PurchaseOrder(nil), f.orders...))
	if err != nil {
		return err
	}
	f.orders = orders
	return nil
}

func newTestService(store *fakeStore, bus event.Bus) *service {
	svc := NewService(store, bus).(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreatePurchaseOrder(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 10},
			{ID: "item-2", Name: "Masks", CurrentStock: 20},
		},
	}
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.OrderCreated, func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	svc := newTestService(store, bus)

	got, err := svc.CreatePurchaseOrder(context.Background(), "MedSupply Co", []domain.OrderItem{
		{ItemID: "item-1", Name: "Gloves", Quantity: 30},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "MedSupply Co", got.Supplier)
	assert.Equal(t, domain.OrderStatusSuccessful, got.Status)
	assert.False(t, got.Automated)
	assert.Equal(t, 30, got.TotalQuantity())

	// Ordered quantity credited to the matching item only.
	assert.Equal(t, 40, store.items[0].CurrentStock)
	assert.Equal(t, 20, store.items[1].CurrentStock)
	assert.Equal(t, testNow, store.items[0].UpdatedAt)

	require.Len(t, store.orders, 1)
	require.Len(t, published, 1)
	payload := published[0].Payload.(event.OrderCreatedPayloadV1)
	assert.False(t, payload.Automated)
	assert.Equal(t, 30, payload.TotalQuantity)
}

func TestCreatePurchaseOrder_UnknownItemKeptOnOrder(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 10},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.CreatePurchaseOrder(context.Background(), "", []domain.OrderItem{
		{ItemID: "item-1", Name: "Gloves", Quantity: 5},
		{ItemID: "ghost", Name: "Discontinued", Quantity: 99},
	})

	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	// Known line credited, unknown line recorded without stock movement.
	assert.Equal(t, 15, store.items[0].CurrentStock)
	require.Len(t, store.orders, 1)
	assert.Equal(t, "ghost", store.orders[0].Items[1].ItemID)
}

func TestCreatePurchaseOrder_NonPositiveQuantityNeverDebits(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 5},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.CreatePurchaseOrder(context.Background(), "", []domain.OrderItem{
		{ItemID: "item-1", Name: "Gloves", Quantity: domain.Quantity(-100)},
		{ItemID: "item-1", Name: "Gloves", Quantity: 0},
	})

	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	// Stock untouched; both lines stay on the order for audit.
	assert.Equal(t, 5, store.items[0].CurrentStock)
	require.Len(t, store.orders, 1)
	assert.Len(t, store.orders[0].Items, 2)
}

func TestCreatePurchaseOrder_NoMatchingItems(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 10},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.CreatePurchaseOrder(context.Background(), "", []domain.OrderItem{
		{ItemID: "ghost", Name: "Discontinued", Quantity: 99},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSuccessful, got.Status)
	assert.Equal(t, 10, store.items[0].CurrentStock)
	assert.Len(t, store.orders, 1)
}

func TestCreatePurchaseOrder_Validation(t *testing.T) {
	svc := newTestService(&fakeStore{}, nil)

	_, err := svc.CreatePurchaseOrder(context.Background(), "X", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreatePurchaseOrder(context.Background(), "X", []domain.OrderItem{{Name: "no id", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListOrders(t *testing.T) {
	store := &fakeStore{
		orders: []domain.PurchaseOrder{
			{ID: "o1"}, {ID: "o2"},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.ListOrders(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListOrders_StoreError(t *testing.T) {
	store := &fakeStore{readErr: domain.ErrPersistence}
	svc := newTestService(store, nil)

	_, err := svc.ListOrders(context.Background())

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestUpdateStatus(t *testing.T) {
	store := &fakeStore{
		orders: []domain.PurchaseOrder{
			{ID: "o1", Status: domain.OrderStatusPending},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderStatusSuccessful)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSuccessful, got.Status)
	assert.Equal(t, testNow, got.UpdatedAt)
	assert.Equal(t, domain.OrderStatusSuccessful, store.orders[0].Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	store := &fakeStore{
		orders: []domain.PurchaseOrder{{ID: "o1", Status: domain.OrderStatusPending}},
	}
	svc := newTestService(store, nil)

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.OrderStatusSuccessful)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = svc.UpdateStatus(context.Background(), "o1", "shipped")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
