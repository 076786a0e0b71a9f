package inventory

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
	if f.readErr != nil {
		return nil, f.readErr
	}
	return append([]domain.Item(nil), f.items...), nil
}

func (f *fakeStore) GetUsageEvents(ctx context.Context) ([]domain.UsageEvent, error) {
	return nil, nil
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

func newTestService(store *fakeStore) *service {
	svc := NewService(store, nil).(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateItem(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	got, err := svc.CreateItem(context.Background(), CreateItemInput{
		Name:         "Nitrile Gloves",
		Category:     "PPE",
		Barcode:      "123456",
		CurrentStock: 50,
		MinThreshold: 10,
		UnitPrice:    0.25,
		Supplier:     "MedSupply Co",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Nitrile Gloves", got.Name)
	assert.Equal(t, testNow, got.CreatedAt)
	assert.Equal(t, testNow, got.UpdatedAt)

	require.Len(t, store.items, 1)
	assert.Equal(t, got.ID, store.items[0].ID)
}

func TestCreateItem_PublishesEvent(t *testing.T) {
	store := &fakeStore{}
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.ItemCreated, func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewService(store, bus).(*service)
	svc.now = func() time.Time { return testNow }

	_, err := svc.CreateItem(context.Background(), CreateItemInput{Name: "Gauze"})

	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestCreateItem_Validation(t *testing.T) {
	svc := newTestService(&fakeStore{})

	tests := []struct {
		name  string
		input CreateItemInput
	}{
		{"missing name", CreateItemInput{}},
		{"negative stock", CreateItemInput{Name: "X", CurrentStock: -1}},
		{"negative threshold", CreateItemInput{Name: "X", MinThreshold: -1}},
		{"negative price", CreateItemInput{Name: "X", UnitPrice: -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateItem_DuplicateBarcode(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{{ID: "item-1", Name: "Gloves", Barcode: "123"}},
	}
	svc := newTestService(store)

	_, err := svc.CreateItem(context.Background(), CreateItemInput{Name: "Masks", Barcode: "123"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, store.items, 1)
}

func TestUpdateItem_MergesFields(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{{
			ID:           "item-1",
			Name:         "Gloves",
			Category:     "PPE",
			CurrentStock: 10,
			MinThreshold: 5,
			CreatedAt:    testNow.AddDate(0, -1, 0),
		}},
	}
	svc := newTestService(store)

	got, err := svc.UpdateItem(context.Background(), "item-1", UpdateItemInput{
		CurrentStock: intPtr(25),
		Supplier:     strPtr("MedSupply Co"),
	})

	require.NoError(t, err)
	assert.Equal(t, 25, got.CurrentStock)
	assert.Equal(t, "MedSupply Co", got.Supplier)

	// Untouched fields survive.
	assert.Equal(t, "Gloves", got.Name)
	assert.Equal(t, "PPE", got.Category)
	assert.Equal(t, 5, got.MinThreshold)
	assert.Equal(t, testNow.AddDate(0, -1, 0), got.CreatedAt)
	assert.Equal(t, testNow, got.UpdatedAt)

	assert.Equal(t, 25, store.items[0].CurrentStock)
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.UpdateItem(context.Background(), "missing", UpdateItemInput{Name: strPtr("X")})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdateItem_RejectsInvalidValues(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{{ID: "item-1", Name: "Gloves", CurrentStock: 10}},
	}
	svc := newTestService(store)

	_, err := svc.UpdateItem(context.Background(), "item-1", UpdateItemInput{CurrentStock: intPtr(-5)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateItem(context.Background(), "item-1", UpdateItemInput{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 10, store.items[0].CurrentStock)
}

func TestDeleteItem(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves"},
			{ID: "item-2", Name: "Masks"},
		},
	}
	svc := newTestService(store)

	err := svc.DeleteItem(context.Background(), "item-1")

	require.NoError(t, err)
	require.Len(t, store.items, 1)
	assert.Equal(t, "item-2", store.items[0].ID)

	err = svc.DeleteItem(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestFindByBarcode(t *testing.T) {
	store := &fakeStore{
		items: []domain.Item{
			{ID: "item-1", Name: "Gloves", Barcode: "111"},
			{ID: "item-2", Name: "Masks", Barcode: "222"},
		},
	}
	svc := newTestService(store)

	got, err := svc.FindByBarcode(context.Background(), "222")
	require.NoError(t, err)
	assert.Equal(t, "item-2", got.ID)

	_, err = svc.FindByBarcode(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.FindByBarcode(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetAlerts(t *testing.T) {
	expiringSoon := testNow.AddDate(0, 0, 5).Format("2006-01-02")
	expiringNow := testNow.AddDate(0, 0, 2).Format("2006-01-02")
	farFuture := testNow.AddDate(1, 0, 0).Format("2006-01-02")

	store := &fakeStore{
		items: []domain.Item{
			{ID: "out", Name: "Gauze", CurrentStock: 0, MinThreshold: 5},
			{ID: "low", Name: "Gloves", CurrentStock: 3, MinThreshold: 5},
			{ID: "exp-warn", Name: "Saline", CurrentStock: 50, MinThreshold: 5, ExpirationDate: expiringSoon},
			{ID: "exp-crit", Name: "Insulin", CurrentStock: 50, MinThreshold: 5, ExpirationDate: expiringNow},
			{ID: "fine", Name: "Masks", CurrentStock: 50, MinThreshold: 5, ExpirationDate: farFuture},
		},
	}
	svc := newTestService(store)

	got, err := svc.GetAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 4)

	byItem := make(map[string]domain.Alert, len(got))
	for _, a := range got {
		byItem[a.ItemID] = a
	}

	assert.Equal(t, domain.AlertTypeLowStock, byItem["out"].Type)
	assert.Equal(t, domain.AlertSeverityCritical, byItem["out"].Severity)

	assert.Equal(t, domain.AlertTypeLowStock, byItem["low"].Type)
	assert.Equal(t, domain.AlertSeverityWarning, byItem["low"].Severity)
	assert.Contains(t, byItem["low"].Message, "3 units remaining")

	assert.Equal(t, domain.AlertTypeExpiring, byItem["exp-warn"].Type)
	assert.Equal(t, domain.AlertSeverityWarning, byItem["exp-warn"].Severity)

	assert.Equal(t, domain.AlertTypeExpiring, byItem["exp-crit"].Type)
	assert.Equal(t, domain.AlertSeverityCritical, byItem["exp-crit"].Severity)

	_, ok := byItem["fine"]
	assert.False(t, ok)
}

func TestGetAlerts_LowStockAndExpiring(t *testing.T) {
	expiring := testNow.AddDate(0, 0, 1).Format("2006-01-02")
	store := &fakeStore{
		items: []domain.Item{
			{ID: "both", Name: "Epinephrine", CurrentStock: 0, MinThreshold: 2, ExpirationDate: expiring},
		},
	}
	svc := newTestService(store)

	got, err := svc.GetAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.AlertTypeLowStock, got[0].Type)
	assert.Equal(t, domain.AlertTypeExpiring, got[1].Type)
}

func TestListItems_StoreError(t *testing.T) {
	store := &fakeStore{readErr: domain.ErrPersistence}
	svc := newTestService(store)

	_, err := svc.ListItems(context.Background())

	assert.ErrorIs(t, err, domain.ErrPersistence)
}
