package usage

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
	events []domain.UsageEvent
	orders []domain.PurchaseOrder

	readErr error
}

func (f *fakeStore) GetItems(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeStore) GetUsageEvents(ctx context.Context) ([]domain.UsageEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]domain.UsageEvent(nil), f.events...), nil
}

func (f *fakeStore) GetOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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
	items, events, err := fn(append([]domain.Item(nil), f.items...), append([]domain.UsageEvent(nil), f.events...))
	if err != nil {
		return err
	}
	f.items = items
	f.events = events
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

func TestRecordUsage(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 10, MinThreshold: 3},
		},
	}
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.UsageRecorded, func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	svc := newTestService(store, bus)

	got, err := svc.RecordUsage(context.Background(), "item-1", 4, "morning rounds")

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "item-1", got.ItemID)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, "morning rounds", got.Notes)
	assert.Equal(t, testNow, got.Date)

	assert.Equal(t, 6, store.items[0].CurrentStock)
	assert.Equal(t, testNow, store.items[0].UpdatedAt)
	require.Len(t, store.events, 1)
	assert.Equal(t, got.ID, store.events[0].ID)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(event.UsageRecordedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 6, payload.StockAfter)
	assert.False(t, payload.LowStock)
}

func TestRecordUsage_CrossesThreshold(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 5, MinThreshold: 3},
		},
	}
	bus := event.NewMemoryBus()
	var payload event.UsageRecordedPayloadV1
	bus.Subscribe(event.UsageRecorded, func(ctx context.Context, e event.Event) error {
		payload = e.Payload.(event.UsageRecordedPayloadV1)
		return nil
	})
	svc := newTestService(store, bus)

	_, err := svc.RecordUsage(context.Background(), "item-1", 3, "")

	require.NoError(t, err)
	assert.True(t, payload.LowStock)
	assert.Equal(t, 2, payload.StockAfter)
}

func TestRecordUsage_InsufficientStock(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 5, MinThreshold: 3},
		},
	}
	svc := newTestService(store, nil)

	_, err := svc.RecordUsage(context.Background(), "item-1", 6, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// No partial fulfillment: stock and ledger untouched.
	assert.Equal(t, 5, store.items[0].CurrentStock)
	assert.Empty(t, store.events)
}

func TestRecordUsage_ExactStockAllowed(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", CurrentStock: 5, MinThreshold: 3},
		},
	}
	svc := newTestService(store, nil)

	_, err := svc.RecordUsage(context.Background(), "item-1", 5, "")

	require.NoError(t, err)
	assert.Zero(t, store.items[0].CurrentStock)
}

func TestRecordUsage_ItemNotFound(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	_, err := svc.RecordUsage(context.Background(), "missing", 1, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, store.events)
}

func TestRecordUsage_Validation(t *testing.T) {
	svc := newTestService(&fakeStore{}, nil)

	_, err := svc.RecordUsage(context.Background(), "", 1, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RecordUsage(context.Background(), "item-1", 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RecordUsage(context.Background(), "item-1", -2, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetHistory(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves"},
		},
		events: []domain.UsageEvent{
			{ID: "u1", ItemID: "item-1", Quantity: 2, Date: testNow.AddDate(0, 0, -2)},
			{ID: "u2", ItemID: "deleted-item", Quantity: 1, Date: testNow.AddDate(0, 0, -1)},
			{ID: "u3", ItemID: "item-1", Quantity: 3, Date: testNow},
		},
	}
	svc := newTestService(store, nil)

	got, err := svc.GetHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "u3", got[0].ID)
	assert.Equal(t, "u2", got[1].ID)
	assert.Equal(t, "u1", got[2].ID)

	assert.Equal(t, "Gloves", got[0].ItemName)
	assert.Equal(t, domain.UnknownItemName, got[1].ItemName)
}

func TestGetHistory_StoreError(t *testing.T) {
	store := &fakeStore{readErr: domain.ErrPersistence}
	svc := newTestService(store, nil)

	_, err := svc.GetHistory(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
