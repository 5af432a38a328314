package service_test

import (
	"context"
	"testing"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/seed"
	"restaurant-storefront/internal/service"
	"restaurant-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTables(t *testing.T) *service.TableStore {
	t.Helper()
	return service.NewTableStore(context.Background(), storage.NewMemorySnapshotStore(), seed.Tables())
}

func TestTableStore_AddGeneratesID(t *testing.T) {
	ctx := context.Background()
	tables := newTables(t)

	added, err := tables.Add(ctx, domain.Table{Number: 7, Capacity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, tables.List(), 7)

	_, err = tables.Add(ctx, domain.Table{Number: 7, Capacity: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicateTableNumber)
	assert.Len(t, tables.List(), 7)
}

func TestTableStore_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	tables := newTables(t)

	_, err := tables.Add(ctx, domain.Table{ID: "t1", Number: 99, Capacity: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicateTableID)
	assert.Len(t, tables.List(), len(seed.Tables()))

	require.NoError(t, tables.Reserve(ctx, "t1", "Анна", "2024-03-08 19:00", "+7 999 000 00 00"))
	reserved := 0
	for _, table := range tables.List() {
		if table.IsReserved {
			reserved++
			assert.Equal(t, 1, table.Number)
		}
	}
	assert.Equal(t, 1, reserved)
}

func TestTableStore_ReserveAndClose(t *testing.T) {
	ctx := context.Background()
	tables := newTables(t)
	require.NoError(t, tables.SelectByID(ctx, "t3"))

	require.NoError(t, tables.Reserve(ctx, "t3", "Нино", "2024-03-08 19:00", "+7 999 123 45 67"))
	reserved, err := tables.GetByID("t3")
	require.NoError(t, err)
	assert.True(t, reserved.IsReserved)
	assert.NotEmpty(t, reserved.ReservationName)
	assert.NotEmpty(t, reserved.ReservationTime)
	assert.NotEmpty(t, reserved.ReservationPhone)
	assert.Equal(t, reserved, *tables.Selected())

	require.NoError(t, tables.Close(ctx, "t3"))
	closed, _ := tables.GetByID("t3")
	assert.Equal(t, domain.Table{ID: "t3", Number: 3, Capacity: 6}, closed)
	assert.Equal(t, closed, *tables.Selected())
}

func TestTableStore_EditAndDeletePropagateToSelection(t *testing.T) {
	ctx := context.Background()
	tables := newTables(t)
	require.NoError(t, tables.SelectByID(ctx, "t2"))

	capacity := 5
	require.NoError(t, tables.Update(ctx, "t2", domain.TablePatch{Capacity: &capacity}))
	assert.Equal(t, 5, tables.Selected().Capacity)

	require.NoError(t, tables.Delete(ctx, "t2"))
	assert.Nil(t, tables.Selected())
	_, err := tables.GetByID("t2")
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestTableStore_SelectUnknownTable(t *testing.T) {
	ctx := context.Background()
	tables := newTables(t)

	assert.ErrorIs(t, tables.SelectByID(ctx, "t99"), domain.ErrTableNotFound)
	assert.Nil(t, tables.Selected())

	table, _ := tables.GetByID("t1")
	require.NoError(t, tables.Select(ctx, &table))
	assert.Equal(t, "t1", tables.Selected().ID)
	require.NoError(t, tables.Select(ctx, nil))
	assert.Nil(t, tables.Selected())
}

func TestTableStore_RestoresSelection(t *testing.T) {
	ctx := context.Background()
	snapshots := storage.NewMemorySnapshotStore()
	first := service.NewTableStore(ctx, snapshots, seed.Tables())
	require.NoError(t, first.SelectByID(ctx, "t5"))
	require.NoError(t, first.Reserve(ctx, "t5", "Anna", "20:00", "123"))

	second := service.NewTableStore(ctx, snapshots, seed.Tables())
	require.NotNil(t, second.Selected())
	assert.True(t, second.Selected().IsReserved)
}
