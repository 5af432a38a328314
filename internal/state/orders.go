package state

import (
	"time"

	"restaurant-storefront/internal/domain"
)

var forward = map[domain.OrderStatus]domain.OrderStatus{
	domain.StatusPending:    domain.StatusConfirmed,
	domain.StatusConfirmed:  domain.StatusProcessing,
	domain.StatusProcessing: domain.StatusShipped,
	domain.StatusShipped:    domain.StatusDelivered,
}

// CanTransition reports whether from -> to is part of the normal order flow:
// one step forward, or a cancel from any status that is not terminal.
func CanTransition(from, to domain.OrderStatus) bool {
	if !to.Valid() {
		return false
	}
	if IsTerminal(from) {
		return false
	}
	if to == domain.StatusCancelled {
		return true
	}
	return forward[from] == to
}

func IsTerminal(s domain.OrderStatus) bool {
	return s == domain.StatusDelivered || s == domain.StatusCancelled
}

// NextStatuses lists the statuses reachable from s through CanTransition.
func NextStatuses(s domain.OrderStatus) []domain.OrderStatus {
	if IsTerminal(s) {
		return []domain.OrderStatus{}
	}
	next := []domain.OrderStatus{}
	if n, ok := forward[s]; ok {
		next = append(next, n)
	}
	return append(next, domain.StatusCancelled)
}

type Orders []domain.Order

func (o Orders) Find(id string) (domain.Order, bool) {
	for _, order := range o {
		if order.ID == id {
			return order, true
		}
	}
	return domain.Order{}, false
}

func (o Orders) Append(order domain.Order) Orders {
	out := make(Orders, len(o), len(o)+1)
	copy(out, o)
	return append(out, order)
}

// SetStatus writes status and stamps UpdatedAt on the matching order. It
// returns the updated order and whether the id was found.
func (o Orders) SetStatus(id string, status domain.OrderStatus, now time.Time) (Orders, domain.Order, bool) {
	out := make(Orders, len(o))
	copy(out, o)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			out[i].UpdatedAt = now
			return out, out[i], true
		}
	}
	return o, domain.Order{}, false
}

func (o Orders) Delete(id string) Orders {
	out := make(Orders, 0, len(o))
	for _, order := range o {
		if order.ID != id {
			out = append(out, order)
		}
	}
	return out
}

func (o Orders) ByUser(userID string) Orders {
	out := Orders{}
	for _, order := range o {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out
}
