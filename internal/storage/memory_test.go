package storage_test

import (
	"context"
	"testing"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotStore_LoadDoesNotAlias(t *testing.T) {
	store := storage.NewMemorySnapshotStore()
	ctx := context.Background()

	products := []domain.Product{{ID: "p1", Name: "Shashlik", Price: 650}}
	require.NoError(t, store.Save(ctx, "catalog-storage", products))
	products[0].Price = 1

	var loaded []domain.Product
	found, err := store.Load(ctx, "catalog-storage", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(650), loaded[0].Price)

	found, err = store.Load(ctx, "order-storage", &loaded)
	assert.NoError(t, err)
	assert.False(t, found)
}
