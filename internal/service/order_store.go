package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/google/uuid"
)

type OrderStore struct {
	mu        sync.RWMutex
	orders    state.Orders
	snapshots SnapshotStore
	events    OrderEventHandler
	latency   Latency
	now       func() time.Time
}

func NewOrderStore(ctx context.Context, snapshots SnapshotStore, seed []domain.Order, events OrderEventHandler, latency Latency) *OrderStore {
	s := &OrderStore{
		orders:    append(state.Orders{}, seed...),
		snapshots: snapshots,
		events:    events,
		latency:   latency,
		now:       time.Now,
	}
	var saved state.Orders
	if restore(ctx, snapshots, OrderKey, &saved) {
		s.orders = saved
	}
	return s
}

// Create registers an order placed at checkout. The total must match the
// item snapshots exactly. Missing id, owner, status and timestamps are filled in.
func (s *OrderStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}
	if order.Total != state.ItemsTotal(order.Items) {
		return domain.Order{}, domain.ErrTotalMismatch
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	if !order.Status.Valid() {
		return domain.Order{}, domain.ErrInvalidStatus
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.UserID == "" {
		order.UserID = domain.GuestUserID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = order.CreatedAt
	}
	order.Items = append([]domain.CartItem{}, order.Items...)

	s.mu.Lock()
	if _, exists := s.orders.Find(order.ID); exists {
		s.mu.Unlock()
		return domain.Order{}, domain.ErrDuplicateOrderID
	}
	s.orders = s.orders.Append(order)
	persistErr := persist(ctx, s.snapshots, OrderKey, s.orders)
	s.mu.Unlock()

	emitErr := s.emit(ctx, newOrderEvent(domain.EventOrderCreated, order, "", s.now()))
	return order, errors.Join(persistErr, emitErr)
}

func (s *OrderStore) GetByID(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders.Find(id)
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// GetByUser returns the orders owned by userID in insertion order.
func (s *OrderStore) GetByUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.ByUser(userID)
}

func (s *OrderStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order{}, s.orders...)
}

func (s *OrderStore) FetchUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if err := wait(ctx, s.latency.Orders); err != nil {
		return nil, err
	}
	return s.GetByUser(userID), nil
}

func (s *OrderStore) FetchAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := wait(ctx, s.latency.Orders); err != nil {
		return nil, err
	}
	return s.List(), nil
}

// SetStatus moves the order along the normal flow and returns the status it
// had before. Writing the current status again is accepted and changes nothing.
func (s *OrderStore) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error) {
	return s.writeStatus(ctx, id, status, true)
}

// ForceStatus writes any valid status, including leaving a terminal one.
func (s *OrderStore) ForceStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error) {
	return s.writeStatus(ctx, id, status, false)
}

// Delete removes the order without touching revenue.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders.Find(id); !ok {
		return nil
	}
	s.orders = s.orders.Delete(id)
	return persist(ctx, s.snapshots, OrderKey, s.orders)
}

func (s *OrderStore) writeStatus(ctx context.Context, id string, status domain.OrderStatus, enforce bool) (domain.OrderStatus, error) {
	if !status.Valid() {
		return "", domain.ErrInvalidStatus
	}

	s.mu.Lock()
	current, ok := s.orders.Find(id)
	if !ok {
		s.mu.Unlock()
		return "", domain.ErrOrderNotFound
	}
	previous := current.Status
	if previous == status {
		s.mu.Unlock()
		return previous, nil
	}
	if enforce && !state.CanTransition(previous, status) {
		s.mu.Unlock()
		return previous, domain.ErrInvalidTransition
	}
	now := s.now()
	next, updated, _ := s.orders.SetStatus(id, status, now)
	s.orders = next
	persistErr := persist(ctx, s.snapshots, OrderKey, s.orders)
	s.mu.Unlock()

	emitErr := s.emit(ctx, newOrderEvent(domain.EventOrderStatusChanged, updated, previous, now))
	return previous, errors.Join(persistErr, emitErr)
}

func (s *OrderStore) emit(ctx context.Context, event domain.OrderEvent) error {
	if s.events == nil {
		return nil
	}
	return s.events.HandleOrderEvent(ctx, event)
}

func newOrderEvent(eventType string, order domain.Order, previous domain.OrderStatus, now time.Time) domain.OrderEvent {
	items := make([]domain.OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderEventItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	return domain.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		UserID:         order.UserID,
		Status:         order.Status,
		PreviousStatus: previous,
		Total:          order.Total,
		CreatedAt:      order.CreatedAt,
		Items:          items,
		Timestamp:      now,
	}
}
