package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	httpapi "restaurant-storefront/analytics-svc/internal/api/http"
	"restaurant-storefront/analytics-svc/internal/service"
	"restaurant-storefront/analytics-svc/internal/storage"
	"restaurant-storefront/config"
	storefront "restaurant-storefront/internal/storage"
)

func main() {
	cfg := config.Load()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.KafkaEnabled {
		reader := config.NewKafkaReader(storefront.OrdersTopic, "analytics-svc")
		defer reader.Close()
		go service.NewConsumer(reader, store).Start(ctx)
	} else {
		log.Println("WARNING: KAFKA_BROKER not set, order events will not be consumed")
	}

	handler := httpapi.NewHandler(service.NewAnalyticsService(store))
	httpapi.StartServer(cfg.AnalyticsAddr, httpapi.NewRouter(handler))
}
