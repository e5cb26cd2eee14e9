package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
	"supplypro/internal/domain/stock"
)

type memItemRepo struct {
	items     map[id.ID]Item
	duplicate bool
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[id.ID]Item)}
}

func (m *memItemRepo) Create(_ context.Context, item *Item) error {
	m.items[item.ID] = *item
	return nil
}

func (m *memItemRepo) Update(_ context.Context, item *Item) error {
	if _, ok := m.items[item.ID]; !ok {
		return apperror.NewNotFound("item", item.ID.String())
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memItemRepo) Delete(_ context.Context, itemID id.ID) error {
	if _, ok := m.items[itemID]; !ok {
		return apperror.NewNotFound("item", itemID.String())
	}
	delete(m.items, itemID)
	return nil
}

func (m *memItemRepo) GetByID(_ context.Context, itemID id.ID) (*Item, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("item", itemID.String())
	}
	return &item, nil
}

func (m *memItemRepo) List(_ context.Context, _ ListFilter) ([]Item, error) {
	out := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *memItemRepo) Count(_ context.Context, _ ListFilter) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memItemRepo) ExistsByNameAndPrice(_ context.Context, _ string, _ types.Money, _ id.ID) (bool, error) {
	return m.duplicate, nil
}

func (m *memItemRepo) CountBySupplier(_ context.Context, _ id.ID) (int64, error) {
	return int64(len(m.items)), nil
}

type memEventRepo struct {
	events []stock.Event
}

func (m *memEventRepo) Append(_ context.Context, e *stock.Event) error {
	m.events = append(m.events, *e)
	return nil
}

func (m *memEventRepo) List(_ context.Context, _ stock.EventFilter) ([]stock.Event, error) {
	return m.events, nil
}

func (m *memEventRepo) StreamEventsUpTo(_ context.Context, _ time.Time, _ string) ([]stock.Event, error) {
	return m.events, nil
}

type nopAuditor struct{}

func (nopAuditor) Record(_ context.Context, _ string, _ id.ID, _ string, _ any) error {
	return nil
}

func newTestService() (*Service, *memItemRepo, *memEventRepo) {
	items := newMemItemRepo()
	events := &memEventRepo{}
	svc := NewService(items, stock.NewService(events), nopAuditor{})
	return svc, items, events
}

func validItem() *Item {
	return &Item{
		Name:       "Steel Bracket M8",
		Quantity:   100,
		Price:      types.MustMoney("2.45"),
		SupplierID: id.New(),
	}
}

func TestCreate_RecordsInitialStock(t *testing.T) {
	svc, _, events := newTestService()

	item := validItem()
	require.NoError(t, svc.Create(context.Background(), item))

	require.Len(t, events.events, 1)
	e := events.events[0]
	assert.Equal(t, stock.ReasonInitialStock, e.Reason)
	assert.Equal(t, int64(100), e.QuantityChange)
	require.NotNil(t, e.PriceAtChange)
	assert.True(t, e.PriceAtChange.Equal(item.Price))
}

func TestCreate_ZeroQuantitySkipsEvent(t *testing.T) {
	svc, _, events := newTestService()

	item := validItem()
	item.Quantity = 0
	require.NoError(t, svc.Create(context.Background(), item))

	assert.Empty(t, events.events)
}

func TestCreate_RejectsDuplicateNameAndPrice(t *testing.T) {
	svc, items, _ := newTestService()
	items.duplicate = true

	err := svc.Create(context.Background(), validItem())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Item)
	}{
		{"blank name", func(i *Item) { i.Name = "  " }},
		{"zero price", func(i *Item) { i.Price = types.Zero() }},
		{"negative price", func(i *Item) { i.Price = types.MustMoney("-1") }},
		{"negative quantity", func(i *Item) { i.Quantity = -1 }},
		{"negative minimum", func(i *Item) { i.MinimumQuantity = -1 }},
		{"missing supplier", func(i *Item) { i.SupplierID = id.Nil() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(item)
			err := svc.Create(ctx, item)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestUpdate_RecordsPriceAndQuantityEvents(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	item := validItem()
	require.NoError(t, svc.Create(ctx, item))
	events.events = nil

	changed := *item
	changed.Price = types.MustMoney("3.10")
	changed.Quantity = 80
	require.NoError(t, svc.Update(ctx, &changed))

	require.Len(t, events.events, 2)

	priceEvent := events.events[0]
	assert.Equal(t, stock.ReasonPriceChange, priceEvent.Reason)
	assert.Equal(t, int64(0), priceEvent.QuantityChange)
	require.NotNil(t, priceEvent.PriceAtChange)
	assert.True(t, priceEvent.PriceAtChange.Equal(changed.Price))

	qtyEvent := events.events[1]
	assert.Equal(t, stock.ReasonManualUpdate, qtyEvent.Reason)
	assert.Equal(t, int64(-20), qtyEvent.QuantityChange)
}

func TestAdjustQuantity(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	item := validItem()
	require.NoError(t, svc.Create(ctx, item))
	events.events = nil

	updated, err := svc.AdjustQuantity(ctx, item.ID, -30, stock.ReasonSold)
	require.NoError(t, err)
	assert.Equal(t, int64(70), updated.Quantity)

	require.Len(t, events.events, 1)
	assert.Equal(t, stock.ReasonSold, events.events[0].Reason)
	assert.Equal(t, int64(-30), events.events[0].QuantityChange)
}

func TestAdjustQuantity_Rejections(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	item := validItem()
	require.NoError(t, svc.Create(ctx, item))

	_, err := svc.AdjustQuantity(ctx, item.ID, 0, stock.ReasonSold)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.AdjustQuantity(ctx, item.ID, -5, stock.Reason("MISPLACED"))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.AdjustQuantity(ctx, item.ID, -101, stock.ReasonSold)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestDelete_WritesOutRemainingQuantity(t *testing.T) {
	svc, items, events := newTestService()
	ctx := context.Background()

	item := validItem()
	require.NoError(t, svc.Create(ctx, item))
	events.events = nil

	require.NoError(t, svc.Delete(ctx, item.ID, stock.ReasonScrapped))

	require.Len(t, events.events, 1)
	assert.Equal(t, stock.ReasonScrapped, events.events[0].Reason)
	assert.Equal(t, int64(-100), events.events[0].QuantityChange)
	assert.Empty(t, items.items)
}

func TestDelete_RejectsNonDeletionReason(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	item := validItem()
	require.NoError(t, svc.Create(ctx, item))

	err := svc.Delete(ctx, item.ID, stock.ReasonSold)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
