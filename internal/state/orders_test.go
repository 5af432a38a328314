package state_test

import (
	"testing"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.OrderStatus
		want     bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusConfirmed, domain.StatusProcessing, true},
		{domain.StatusProcessing, domain.StatusShipped, true},
		{domain.StatusShipped, domain.StatusDelivered, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusShipped, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusShipped, false},
		{domain.StatusDelivered, domain.StatusPending, false},
		{domain.StatusDelivered, domain.StatusCancelled, false},
		{domain.StatusCancelled, domain.StatusProcessing, false},
		{domain.StatusProcessing, domain.StatusConfirmed, false},
		{domain.StatusPending, domain.OrderStatus("lost"), false},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"->"+string(testCase.to), func(t *testing.T) {
			assert.Equal(t, testCase.want, state.CanTransition(testCase.from, testCase.to))
		})
	}
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []domain.OrderStatus{domain.StatusConfirmed, domain.StatusCancelled}, state.NextStatuses(domain.StatusPending))
	assert.Empty(t, state.NextStatuses(domain.StatusDelivered))
	assert.Empty(t, state.NextStatuses(domain.StatusCancelled))
}

func TestOrders_SetStatusStampsUpdatedAt(t *testing.T) {
	created := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	orders := state.Orders{{ID: "o1", Status: domain.StatusPending, CreatedAt: created, UpdatedAt: created}}

	next, updated, ok := orders.SetStatus("o1", domain.StatusConfirmed, now)
	require.True(t, ok)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, domain.StatusPending, orders[0].Status, "receiver is not mutated")
	assert.Equal(t, domain.StatusConfirmed, next[0].Status)

	_, _, ok = orders.SetStatus("missing", domain.StatusConfirmed, now)
	assert.False(t, ok)
}

func TestOrders_ByUserDoesNotLeak(t *testing.T) {
	orders := state.Orders{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
		{ID: "o3", UserID: "u1"},
	}

	mine := orders.ByUser("u1")
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "u1", o.UserID)
	}
	assert.Empty(t, orders.ByUser("nobody"))
	assert.Len(t, orders.Delete("o2"), 2)
	assert.Len(t, orders.Delete("missing"), 3)
}
