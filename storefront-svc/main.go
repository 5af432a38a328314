package main

import (
	"context"
	"log"

	"restaurant-storefront/config"
	"restaurant-storefront/internal/seed"
	"restaurant-storefront/internal/service"
	"restaurant-storefront/internal/storage"
	httpapi "restaurant-storefront/storefront-svc/internal/api/http"
)

func initSnapshots(ctx context.Context, cfg config.Config) (service.SnapshotStore, func()) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		rdb := config.MustInitRedis()
		return storage.NewRedisSnapshotStore(rdb, "storefront:"), func() { rdb.Close() }
	case config.BackendPostgres:
		db := config.MustInitPostgres()
		store := storage.NewPostgresSnapshotStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to create snapshot table:", err)
		}
		return store, func() { db.Close() }
	case config.BackendMemory:
		return storage.NewMemorySnapshotStore(), func() {}
	}
	log.Printf("WARNING: unknown storage backend %q, using memory", cfg.StorageBackend)
	return storage.NewMemorySnapshotStore(), func() {}
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	snapshots, closeSnapshots := initSnapshots(ctx, cfg)
	defer closeSnapshots()

	latency := service.Latency{}
	if cfg.SimulateLatency {
		latency = service.DefaultLatency()
	}

	revenue := service.NewRevenueStore(ctx, snapshots)
	if err := revenue.Seed(ctx, seed.Orders()); err != nil {
		log.Printf("WARNING: failed to seed revenue: %v", err)
	}

	dispatcher := service.NewDispatcher()
	dispatcher.Subscribe(revenue)
	if cfg.KafkaEnabled {
		kafkaWriter := config.NewKafkaWriter(storage.OrdersTopic)
		defer kafkaWriter.Close()
		dispatcher.AddPublisher(storage.NewKafkaPublisher(kafkaWriter))
		log.Printf("Publishing order events to topic %s", storage.OrdersTopic)
	}

	catalog := service.NewCatalogStore(ctx, snapshots, seed.Products(), latency)
	cart := service.NewCartStore(ctx, snapshots)
	orders := service.NewOrderStore(ctx, snapshots, seed.Orders(), dispatcher, latency)
	sessions := service.NewAuthStore(ctx, snapshots)
	users := service.NewUserStore(ctx, snapshots, seed.Users(), orders, latency)

	handler := &httpapi.Handler{
		Catalog:   catalog,
		Cart:      cart,
		Tables:    service.NewTableStore(ctx, snapshots, seed.Tables()),
		Orders:    orders,
		Revenue:   revenue,
		Sessions:  sessions,
		Auth:      service.NewAuthenticator(users, sessions, cfg.MockPassword, latency),
		Users:     users,
		Checkout:  service.NewCheckoutService(cart, orders, sessions),
		Dashboard: service.NewDashboardService(orders, revenue, catalog),
		QR:        service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
	}

	httpapi.StartServer(cfg.StorefrontAddr, httpapi.NewRouter(handler))
}
