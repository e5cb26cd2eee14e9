package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
	"supplypro/internal/core/types"
)

type memEventRepo struct {
	appended   []Event
	lastFilter EventFilter
}

func (m *memEventRepo) Append(_ context.Context, e *Event) error {
	m.appended = append(m.appended, *e)
	return nil
}

func (m *memEventRepo) List(_ context.Context, filter EventFilter) ([]Event, error) {
	m.lastFilter = filter
	return nil, nil
}

func (m *memEventRepo) StreamEventsUpTo(_ context.Context, _ time.Time, _ string) ([]Event, error) {
	return nil, nil
}

func TestRecord_FillsDefaults(t *testing.T) {
	repo := &memEventRepo{}
	svc := NewService(repo)

	e := &Event{
		ItemID:         id.New(),
		QuantityChange: 10,
		Reason:         ReasonManualUpdate,
	}
	require.NoError(t, svc.Record(context.Background(), e))

	require.Len(t, repo.appended, 1)
	got := repo.appended[0]
	assert.False(t, id.IsNil(got.ID))
	assert.False(t, got.OccurredAt.IsZero())
}

func TestRecord_Validation(t *testing.T) {
	svc := NewService(&memEventRepo{})
	ctx := context.Background()
	negPrice := types.MustMoney("-1.00")

	tests := []struct {
		name  string
		event Event
	}{
		{"missing item", Event{QuantityChange: 1, Reason: ReasonSold}},
		{"unknown reason", Event{ItemID: id.New(), QuantityChange: 1, Reason: "GIFTED"}},
		{"zero delta", Event{ItemID: id.New(), QuantityChange: 0, Reason: ReasonSold}},
		{"negative price", Event{ItemID: id.New(), QuantityChange: 1, Reason: ReasonManualUpdate, PriceAtChange: &negPrice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.event
			err := svc.Record(ctx, &e)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestRecord_PriceChangeAllowsZeroDelta(t *testing.T) {
	repo := &memEventRepo{}
	svc := NewService(repo)

	price := types.MustMoney("12.50")
	e := &Event{
		ItemID:        id.New(),
		Reason:        ReasonPriceChange,
		PriceAtChange: &price,
	}
	require.NoError(t, svc.Record(context.Background(), e))
	require.Len(t, repo.appended, 1)
}

func TestList_LimitBounds(t *testing.T) {
	repo := &memEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.List(ctx, EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit)

	_, err = svc.List(ctx, EventFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.lastFilter.Limit)
}

func TestList_RejectsInvertedWindow(t *testing.T) {
	svc := NewService(&memEventRepo{})

	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := svc.List(context.Background(), EventFilter{From: &from, To: &to})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
