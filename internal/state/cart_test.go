package state_test

import (
	"testing"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shashlik = domain.Product{ID: "p1", Name: "Shashlik", Price: 650, Category: "Main", Available: true}
	satsivi  = domain.Product{ID: "p5", Name: "Satsivi", Price: 380, Category: "Starters", Available: true}
)

func TestCart_AddItemMergesQuantities(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		want       int
	}{
		{name: "single add", quantities: []int{1}, want: 1},
		{name: "two adds merge", quantities: []int{2, 3}, want: 5},
		{name: "zero quantity floors at one", quantities: []int{0}, want: 1},
		{name: "negative quantity floors at one", quantities: []int{-4, 1}, want: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := state.Cart{}
			for _, q := range testCase.quantities {
				cart = cart.AddItem(shashlik, q)
			}
			require.Len(t, cart.Items, 1)
			assert.Equal(t, testCase.want, cart.Items[0].Quantity)
		})
	}
}

func TestCart_AddItemDoesNotMutateReceiver(t *testing.T) {
	before := state.Cart{}.AddItem(shashlik, 1)
	after := before.AddItem(shashlik, 1)

	assert.Equal(t, 1, before.Items[0].Quantity)
	assert.Equal(t, 2, after.Items[0].Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		quantity int
		want     int
	}{
		{name: "sets quantity", id: "p1", quantity: 7, want: 7},
		{name: "zero clamps to one", id: "p1", quantity: 0, want: 1},
		{name: "negative clamps to one", id: "p1", quantity: -3, want: 1},
		{name: "absent id is a no-op", id: "missing", quantity: 9, want: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := state.Cart{}.AddItem(shashlik, 2).UpdateQuantity(testCase.id, testCase.quantity)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, testCase.want, cart.Items[0].Quantity)
		})
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := state.Cart{}.AddItem(shashlik, 1).AddItem(satsivi, 1)
	cart = cart.SaveForLater(domain.Product{ID: "p9", Price: 10}, time.Now())

	cart = cart.RemoveItem("missing")
	assert.Len(t, cart.Items, 2)

	cart = cart.RemoveItem("p1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p5", cart.Items[0].Product.ID)

	cart = cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Len(t, cart.SavedItems, 1)
}

func TestCart_SaveForLaterMovesOutOfCart(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cart := state.Cart{}.AddItem(shashlik, 2).SaveForLater(shashlik, now)

	assert.Empty(t, cart.Items)
	require.Len(t, cart.SavedItems, 1)
	assert.Equal(t, now, cart.SavedItems[0].DateAdded)

	again := cart.AddItem(shashlik, 1).SaveForLater(shashlik, now.Add(time.Hour))
	assert.Len(t, again.SavedItems, 1)
	assert.Len(t, again.Items, 1, "already saved products stay in the cart")
}

func TestCart_MoveToCartResetsQuantity(t *testing.T) {
	cart := state.Cart{}.AddItem(shashlik, 1).AddItem(shashlik, 1)
	require.Equal(t, int64(1300), cart.Total())

	cart = cart.SaveForLater(shashlik, time.Now())
	assert.Empty(t, cart.Items)

	cart, moved := cart.MoveToCart("p1")
	assert.True(t, moved)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Empty(t, cart.SavedItems)

	_, moved = cart.MoveToCart("p1")
	assert.False(t, moved)
}

func TestCart_TotalAndCount(t *testing.T) {
	cart := state.Cart{}.AddItem(shashlik, 2).AddItem(satsivi, 1)
	assert.Equal(t, int64(1680), cart.Total())
	assert.Equal(t, 3, cart.Count())
}
