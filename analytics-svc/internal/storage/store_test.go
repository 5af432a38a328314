package storage_test

import (
	"context"
	"testing"
	"time"

	"restaurant-storefront/analytics-svc/internal/domain"
	"restaurant-storefront/analytics-svc/internal/storage"
	storefront "restaurant-storefront/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = "2024-03-01"

func newStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func orderEvent(items ...storefront.OrderEventItem) storefront.OrderEvent {
	return storefront.OrderEvent{
		Type:      storefront.EventOrderCreated,
		OrderID:   "o5",
		Status:    storefront.StatusPending,
		CreatedAt: time.Date(2024, 3, 1, 19, 45, 0, 0, time.UTC),
		Items:     items,
	}
}

func TestStore_RecordOrder(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, orderEvent(
		storefront.OrderEventItem{ProductID: "p4", Quantity: 2},
		storefront.OrderEventItem{ProductID: "p8", Quantity: 1},
	)))
	require.NoError(t, store.RecordOrder(ctx, orderEvent(
		storefront.OrderEventItem{ProductID: "p8", Quantity: 3},
	)))

	orders, err := mr.Get(storage.OrdersKey(day))
	require.NoError(t, err)
	assert.Equal(t, "2", orders)

	score, err := mr.ZScore(storage.DailyKey(day), "p8")
	require.NoError(t, err)
	assert.Equal(t, float64(4), score)
	assert.Equal(t, storage.Retention, mr.TTL(storage.DailyKey(day)))
}

func TestStore_TopProducts(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.RecordOrder(ctx, orderEvent(
		storefront.OrderEventItem{ProductID: "p1", Quantity: 1},
		storefront.OrderEventItem{ProductID: "p2", Quantity: 5},
		storefront.OrderEventItem{ProductID: "p3", Quantity: 3},
	)))

	tests := []struct {
		name  string
		day   string
		limit int
		want  []domain.ProductAnalytics
	}{
		{
			name:  "ordered by score",
			day:   day,
			limit: 2,
			want: []domain.ProductAnalytics{
				{ProductID: "p2", Score: 5},
				{ProductID: "p3", Score: 3},
			},
		},
		{
			name:  "empty day",
			day:   "2024-03-02",
			limit: 10,
			want:  []domain.ProductAnalytics{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			top, err := store.TopProducts(ctx, testCase.day, testCase.limit)

			require.NoError(t, err)
			assert.Equal(t, testCase.want, top)
		})
	}
}

func TestStore_OrderCounts(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, orderEvent()))
	require.NoError(t, store.RecordOrder(ctx, orderEvent()))
	require.NoError(t, store.RecordCancellation(ctx, orderEvent()))

	counts, err := store.OrderCounts(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyOrders{Date: day, Orders: 2, Cancelled: 1}, counts)

	empty, err := store.OrderCounts(ctx, "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyOrders{Date: "2020-01-01"}, empty)
}

func TestStore_RevertCancellation(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordCancellation(ctx, orderEvent()))
	require.NoError(t, store.RecordCancellation(ctx, orderEvent()))
	require.NoError(t, store.RevertCancellation(ctx, orderEvent()))

	counts, err := store.OrderCounts(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Cancelled)

	require.NoError(t, store.RevertCancellation(ctx, orderEvent()))
	require.NoError(t, store.RevertCancellation(ctx, orderEvent()))
	counts, err = store.OrderCounts(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Cancelled, "never below zero")
	assert.Equal(t, storage.Retention, mr.TTL(storage.CancelledKey(day)))
}

func TestStore_ServerDown(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	assert.Error(t, store.RecordOrder(context.Background(), orderEvent()))
	_, err := store.OrderCounts(context.Background(), day)
	assert.Error(t, err)
}
