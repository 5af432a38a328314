package state

import (
	"time"

	"restaurant-storefront/internal/domain"
)

const dayLayout = "2006-01-02"

// DayKey buckets a timestamp by its UTC calendar date.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func NewLedger() domain.RevenueLedger {
	return domain.RevenueLedger{DailyRevenue: map[string]int64{}}
}

// AddOrderRevenue books a new order. Cancelled orders are ignored.
func AddOrderRevenue(l domain.RevenueLedger, order domain.Order) domain.RevenueLedger {
	if order.Status == domain.StatusCancelled {
		return l
	}
	l = CloneLedger(l)
	l.TotalRevenue += order.Total
	l.DailyRevenue[DayKey(order.CreatedAt)] += order.Total
	return l
}

// UpdateOrderRevenue reconciles a status write that crossed the cancelled
// boundary in either direction; order carries the new status. Any other
// transition leaves the ledger as is. Applying the same crossing twice
// counts it twice.
func UpdateOrderRevenue(l domain.RevenueLedger, order domain.Order, previous domain.OrderStatus) domain.RevenueLedger {
	day := DayKey(order.CreatedAt)
	switch {
	case order.Status == domain.StatusCancelled && previous != domain.StatusCancelled:
		l = CloneLedger(l)
		l.TotalRevenue -= order.Total
		l.DailyRevenue[day] -= order.Total
		l.CanceledOrdersAmount += order.Total
	case previous == domain.StatusCancelled && order.Status != domain.StatusCancelled:
		l = CloneLedger(l)
		l.TotalRevenue += order.Total
		l.DailyRevenue[day] += order.Total
		l.CanceledOrdersAmount -= order.Total
	}
	return l
}

// RevenueForPeriod sums the day buckets between start and end inclusive.
func RevenueForPeriod(l domain.RevenueLedger, start, end time.Time) int64 {
	from, to := DayKey(start), DayKey(end)
	var total int64
	for day, amount := range l.DailyRevenue {
		if day >= from && day <= to {
			total += amount
		}
	}
	return total
}

func CloneLedger(l domain.RevenueLedger) domain.RevenueLedger {
	daily := make(map[string]int64, len(l.DailyRevenue))
	for k, v := range l.DailyRevenue {
		daily[k] = v
	}
	l.DailyRevenue = daily
	return l
}
