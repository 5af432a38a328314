package storage

import (
	"context"
	"errors"
	"time"

	"restaurant-storefront/analytics-svc/internal/domain"
	storefront "restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/redis/go-redis/v9"
)

// Retention is how long the per-day counters live in Redis.
const Retention = 30 * 24 * time.Hour

func OrdersKey(day string) string    { return "analytics:orders:" + day }
func DailyKey(day string) string     { return "analytics:daily:" + day }
func CancelledKey(day string) string { return "analytics:cancelled:" + day }

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// RecordOrder counts the order and adds each line's quantity to the product
// popularity set of the day the order was created.
func (s *Store) RecordOrder(ctx context.Context, event storefront.OrderEvent) error {
	day := state.DayKey(event.CreatedAt)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, OrdersKey(day))
		pipe.Expire(ctx, OrdersKey(day), Retention)
		for _, item := range event.Items {
			pipe.ZIncrBy(ctx, DailyKey(day), float64(item.Quantity), item.ProductID)
		}
		pipe.Expire(ctx, DailyKey(day), Retention)
		return nil
	})
	return err
}

func (s *Store) RecordCancellation(ctx context.Context, event storefront.OrderEvent) error {
	day := state.DayKey(event.CreatedAt)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, CancelledKey(day))
		pipe.Expire(ctx, CancelledKey(day), Retention)
		return nil
	})
	return err
}

// RevertCancellation undoes RecordCancellation for an order moved back out of
// cancelled. The counter never drops below zero.
func (s *Store) RevertCancellation(ctx context.Context, event storefront.OrderEvent) error {
	key := CancelledKey(state.DayKey(event.CreatedAt))
	n, err := s.rdb.Decr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n < 0 {
		return s.rdb.Set(ctx, key, 0, Retention).Err()
	}
	return nil
}

func (s *Store) TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductAnalytics, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, DailyKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	top := make([]domain.ProductAnalytics, 0, len(result))
	for _, member := range result {
		productID, _ := member.Member.(string)
		top = append(top, domain.ProductAnalytics{ProductID: productID, Score: member.Score})
	}
	return top, nil
}

func (s *Store) OrderCounts(ctx context.Context, day string) (domain.DailyOrders, error) {
	orders, err := s.count(ctx, OrdersKey(day))
	if err != nil {
		return domain.DailyOrders{}, err
	}
	cancelled, err := s.count(ctx, CancelledKey(day))
	if err != nil {
		return domain.DailyOrders{}, err
	}
	return domain.DailyOrders{Date: day, Orders: orders, Cancelled: cancelled}, nil
}

func (s *Store) count(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
