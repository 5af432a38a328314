package service

import (
	"context"
	"sync"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"
)

// RevenueStore keeps the revenue ledger. Subscribed to the order dispatcher
// it books new orders and reconciles cancellations on its own.
type RevenueStore struct {
	mu        sync.RWMutex
	ledger    domain.RevenueLedger
	snapshots SnapshotStore
}

func NewRevenueStore(ctx context.Context, snapshots SnapshotStore) *RevenueStore {
	s := &RevenueStore{ledger: state.NewLedger(), snapshots: snapshots}
	var saved domain.RevenueLedger
	if restore(ctx, snapshots, RevenueKey, &saved) {
		if saved.DailyRevenue == nil {
			saved.DailyRevenue = map[string]int64{}
		}
		s.ledger = saved
	}
	return s
}

// Seed books existing orders into an empty ledger. A restored ledger is left
// alone so orders are never counted twice.
func (s *RevenueStore) Seed(ctx context.Context, orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger.TotalRevenue != 0 || len(s.ledger.DailyRevenue) > 0 || s.ledger.CanceledOrdersAmount != 0 {
		return nil
	}
	for _, o := range orders {
		s.ledger = state.AddOrderRevenue(s.ledger, o)
	}
	return persist(ctx, s.snapshots, RevenueKey, s.ledger)
}

func (s *RevenueStore) AddOrderRevenue(ctx context.Context, order domain.Order) error {
	return s.apply(ctx, func(l domain.RevenueLedger) domain.RevenueLedger {
		return state.AddOrderRevenue(l, order)
	})
}

func (s *RevenueStore) UpdateOrderRevenue(ctx context.Context, order domain.Order, previous domain.OrderStatus) error {
	return s.apply(ctx, func(l domain.RevenueLedger) domain.RevenueLedger {
		return state.UpdateOrderRevenue(l, order, previous)
	})
}

func (s *RevenueStore) HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	order := domain.Order{
		ID:        event.OrderID,
		UserID:    event.UserID,
		Status:    event.Status,
		Total:     event.Total,
		CreatedAt: event.CreatedAt,
	}
	switch event.Type {
	case domain.EventOrderCreated:
		return s.AddOrderRevenue(ctx, order)
	case domain.EventOrderStatusChanged:
		return s.UpdateOrderRevenue(ctx, order, event.PreviousStatus)
	}
	return nil
}

func (s *RevenueStore) RevenueForPeriod(start, end time.Time) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.RevenueForPeriod(s.ledger, start, end)
}

func (s *RevenueStore) Ledger() domain.RevenueLedger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.CloneLedger(s.ledger)
}

func (s *RevenueStore) apply(ctx context.Context, fn func(domain.RevenueLedger) domain.RevenueLedger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = fn(s.ledger)
	return persist(ctx, s.snapshots, RevenueKey, s.ledger)
}
