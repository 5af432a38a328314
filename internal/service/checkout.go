package service

import (
	"context"
	"errors"
	"time"

	"restaurant-storefront/internal/domain"

	"github.com/google/uuid"
)

// CheckoutService turns the current cart into a pending order owned by the
// session user, or by the guest sentinel when nobody is logged in.
type CheckoutService struct {
	cart     CartInterface
	orders   OrderInterface
	sessions AuthInterface
	now      func() time.Time
}

func NewCheckoutService(cart CartInterface, orders OrderInterface, sessions AuthInterface) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, sessions: sessions, now: time.Now}
}

// Checkout places the order and clears the cart once the order is registered.
// A rejected order leaves the cart untouched. A registered order whose write
// was lost is still returned, together with the domain.ErrNotPersisted error.
func (s *CheckoutService) Checkout(ctx context.Context, address *domain.Address) (domain.Order, error) {
	cart := s.cart.Snapshot()
	if len(cart.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	userID := domain.GuestUserID
	if session := s.sessions.Session(); session.IsAuthenticated && session.User != nil {
		userID = session.User.ID
	}

	now := s.now()
	created, err := s.orders.Create(ctx, domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           cart.Items,
		Status:          domain.StatusPending,
		Total:           cart.Total(),
		CreatedAt:       now,
		UpdatedAt:       now,
		ShippingAddress: address,
	})
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		return domain.Order{}, err
	}
	return created, errors.Join(err, s.cart.Clear(ctx))
}
