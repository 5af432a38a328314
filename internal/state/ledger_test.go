package state_test

import (
	"testing"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestAddOrderRevenue(t *testing.T) {
	created := time.Date(2024, 3, 1, 19, 45, 0, 0, time.UTC)
	ledger := state.NewLedger()

	ledger = state.AddOrderRevenue(ledger, domain.Order{ID: "o1", Total: 1420, Status: domain.StatusPending, CreatedAt: created})
	ledger = state.AddOrderRevenue(ledger, domain.Order{ID: "o2", Total: 500, Status: domain.StatusCancelled, CreatedAt: created})

	assert.Equal(t, int64(1420), ledger.TotalRevenue)
	assert.Equal(t, int64(1420), ledger.DailyRevenue["2024-03-01"])
	assert.Zero(t, ledger.CanceledOrdersAmount)
}

func TestUpdateOrderRevenue_RoundTrip(t *testing.T) {
	created := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	order := domain.Order{ID: "o3", Total: 500, Status: domain.StatusProcessing, CreatedAt: created}
	start := state.AddOrderRevenue(state.NewLedger(), order)

	order.Status = domain.StatusCancelled
	cancelled := state.UpdateOrderRevenue(start, order, domain.StatusProcessing)
	assert.Equal(t, start.TotalRevenue-500, cancelled.TotalRevenue)
	assert.Equal(t, start.CanceledOrdersAmount+500, cancelled.CanceledOrdersAmount)
	assert.Equal(t, int64(0), cancelled.DailyRevenue["2024-02-20"])

	order.Status = domain.StatusProcessing
	restored := state.UpdateOrderRevenue(cancelled, order, domain.StatusCancelled)
	assert.Equal(t, start, restored)
	assert.Equal(t, int64(500), start.TotalRevenue, "input ledger is not mutated")
}

func TestUpdateOrderRevenue_IgnoresOtherTransitions(t *testing.T) {
	order := domain.Order{ID: "o1", Total: 700, Status: domain.StatusConfirmed, CreatedAt: time.Now()}
	ledger := state.AddOrderRevenue(state.NewLedger(), order)

	assert.Equal(t, ledger, state.UpdateOrderRevenue(ledger, order, domain.StatusPending))

	order.Status = domain.StatusCancelled
	assert.Equal(t, ledger, state.UpdateOrderRevenue(ledger, order, domain.StatusCancelled))
}

func TestRevenueForPeriod(t *testing.T) {
	ledger := domain.RevenueLedger{DailyRevenue: map[string]int64{
		"2024-02-28": 100,
		"2024-03-01": 200,
		"2024-03-02": 300,
		"2024-03-05": 400,
	}}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(500), state.RevenueForPeriod(ledger, start, end))
	assert.Equal(t, int64(0), state.RevenueForPeriod(ledger, end.AddDate(1, 0, 0), end.AddDate(2, 0, 0)))
}

func TestDayKeyUsesUTC(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	assert.Equal(t, "2024-03-01", state.DayKey(time.Date(2024, 3, 2, 1, 0, 0, 0, moscow)))
}
