package service

import (
	"context"

	"restaurant-storefront/analytics-svc/internal/domain"
	"restaurant-storefront/analytics-svc/internal/storage"
	storefront "restaurant-storefront/internal/domain"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event storefront.OrderEvent) error
	RecordCancellation(ctx context.Context, event storefront.OrderEvent) error
	RevertCancellation(ctx context.Context, event storefront.OrderEvent) error
	TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductAnalytics, error)
	OrderCounts(ctx context.Context, day string) (domain.DailyOrders, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event storefront.OrderEvent) error
}

type AnalyticsInterface interface {
	TopProducts(ctx context.Context, day string, limit int) ([]domain.ProductAnalytics, error)
	TopToday(ctx context.Context) ([]domain.ProductAnalytics, error)
	DailyOrders(ctx context.Context, days int) ([]domain.DailyOrders, error)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ MessageReader      = (*kafka.Reader)(nil)
	_ ConsumerInterface  = (*Consumer)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
