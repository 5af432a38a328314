package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"restaurant-storefront/internal/domain"
)

// Snapshot keys, one per persisted store.
const (
	AuthKey    = "auth-storage"
	CartKey    = "cart-storage"
	TableKey   = "table-storage"
	RevenueKey = "revenue-storage"
	OrderKey   = "order-storage"
	CatalogKey = "catalog-storage"
	UserKey    = "user-storage"
)

// restore loads key into v. A read failure is logged and treated as an empty
// store so the service still starts from its defaults.
func restore(ctx context.Context, snapshots SnapshotStore, key string, v any) bool {
	if snapshots == nil {
		return false
	}
	found, err := snapshots.Load(ctx, key, v)
	if err != nil {
		log.Printf("WARNING: failed to restore %s, starting from defaults: %v", key, err)
		return false
	}
	return found
}

// persist writes the full state under key. The in-memory state is already
// updated when this runs; the error wraps domain.ErrNotPersisted so callers
// can tell a lost write from a rejected change.
func persist(ctx context.Context, snapshots SnapshotStore, key string, v any) error {
	if snapshots == nil {
		return nil
	}
	if err := snapshots.Save(ctx, key, v); err != nil {
		log.Printf("WARNING: failed to persist %s: %v", key, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrNotPersisted, key, err)
	}
	return nil
}

// Latency holds the artificial delays of the simulated fetch calls.
type Latency struct {
	Products  time.Duration
	Category  time.Duration
	Product   time.Duration
	Orders    time.Duration
	Customers time.Duration
	Login     time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		Products:  800 * time.Millisecond,
		Category:  500 * time.Millisecond,
		Product:   300 * time.Millisecond,
		Orders:    800 * time.Millisecond,
		Customers: 800 * time.Millisecond,
		Login:     time.Second,
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
