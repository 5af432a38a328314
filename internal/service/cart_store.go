package service

import (
	"context"
	"sync"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"
)

type CartStore struct {
	mu        sync.Mutex
	cart      state.Cart
	snapshots SnapshotStore
	now       func() time.Time
}

func NewCartStore(ctx context.Context, snapshots SnapshotStore) *CartStore {
	s := &CartStore{
		cart:      state.Cart{Items: []domain.CartItem{}, SavedItems: []domain.SavedItem{}},
		snapshots: snapshots,
		now:       time.Now,
	}
	var saved state.Cart
	if restore(ctx, snapshots, CartKey, &saved) {
		s.cart = saved
	}
	return s
}

func (s *CartStore) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.AddItem(product, quantity) })
}

func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.RemoveItem(productID) })
}

func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.UpdateQuantity(productID, quantity) })
}

// Clear empties the active lines and keeps the saved list.
func (s *CartStore) Clear(ctx context.Context) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.Clear() })
}

func (s *CartStore) SaveForLater(ctx context.Context, product domain.Product) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.SaveForLater(product, s.now()) })
}

func (s *CartStore) RemoveSavedItem(ctx context.Context, productID string) error {
	return s.apply(ctx, func(c state.Cart) state.Cart { return c.RemoveSavedItem(productID) })
}

// MoveToCart puts a saved product back into the cart with quantity 1.
func (s *CartStore) MoveToCart(ctx context.Context, productID string) error {
	return s.apply(ctx, func(c state.Cart) state.Cart {
		next, _ := c.MoveToCart(productID)
		return next
	})
}

func (s *CartStore) Open(ctx context.Context) error {
	return s.apply(ctx, func(c state.Cart) state.Cart {
		c.IsOpen = true
		return c
	})
}

func (s *CartStore) Close(ctx context.Context) error {
	return s.apply(ctx, func(c state.Cart) state.Cart {
		c.IsOpen = false
		return c
	})
}

func (s *CartStore) Toggle(ctx context.Context) error {
	return s.apply(ctx, func(c state.Cart) state.Cart {
		c.IsOpen = !c.IsOpen
		return c
	})
}

func (s *CartStore) Snapshot() state.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *CartStore) apply(ctx context.Context, fn func(state.Cart) state.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = fn(s.cart)
	return persist(ctx, s.snapshots, CartKey, s.cart)
}
