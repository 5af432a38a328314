package service

import (
	"context"
	"time"

	"restaurant-storefront/analytics-svc/internal/domain"
	"restaurant-storefront/internal/state"
)

const (
	DefaultTopLimit = 10
	DefaultDays     = 7
	MaxDays         = 30
)

type AnalyticsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewAnalyticsService(store StoreInterface) *AnalyticsService {
	return &AnalyticsService{
		store: store,
		now:   time.Now,
	}
}

func (s *AnalyticsService) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductAnalytics, error) {
	if limit < 1 {
		limit = DefaultTopLimit
	}
	return s.store.TopProducts(ctx, day, limit)
}

func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.ProductAnalytics, error) {
	return s.TopProducts(ctx, state.DayKey(s.now()), DefaultTopLimit)
}

// DailyOrders returns one entry per day, oldest first, ending today. Counters
// older than the Redis retention read as zero.
func (s *AnalyticsService) DailyOrders(ctx context.Context, days int) ([]domain.DailyOrders, error) {
	if days < 1 {
		days = DefaultDays
	}
	if days > MaxDays {
		days = MaxDays
	}
	today := s.now()
	series := make([]domain.DailyOrders, 0, days)
	for i := days - 1; i >= 0; i-- {
		counts, err := s.store.OrderCounts(ctx, state.DayKey(today.AddDate(0, 0, -i)))
		if err != nil {
			return nil, err
		}
		series = append(series, counts)
	}
	return series, nil
}
