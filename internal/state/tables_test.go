package state_test

import (
	"testing"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatingPlan() state.Tables {
	return state.Tables{Tables: []domain.Table{
		{ID: "t1", Number: 1, Capacity: 2},
		{ID: "t2", Number: 2, Capacity: 4},
	}}
}

func intPtr(v int) *int { return &v }

func TestTables_Add(t *testing.T) {
	tests := []struct {
		name    string
		table   domain.Table
		wantErr error
	}{
		{name: "new number", table: domain.Table{ID: "t3", Number: 3, Capacity: 6}},
		{name: "duplicate id", table: domain.Table{ID: "t1", Number: 99, Capacity: 2}, wantErr: domain.ErrDuplicateTableID},
		{name: "duplicate number", table: domain.Table{ID: "t3", Number: 2, Capacity: 6}, wantErr: domain.ErrDuplicateTableNumber},
		{name: "zero number", table: domain.Table{ID: "t3", Number: 0, Capacity: 6}, wantErr: domain.ErrInvalidTableNumber},
		{name: "zero capacity", table: domain.Table{ID: "t3", Number: 3}, wantErr: domain.ErrInvalidTableCapacity},
		{name: "partial reservation", table: domain.Table{ID: "t3", Number: 3, Capacity: 2, IsReserved: true, ReservationName: "Anna"}, wantErr: domain.ErrIncompleteReservation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			plan, err := seatingPlan().Add(testCase.table)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Len(t, plan.Tables, 2)
				return
			}
			require.NoError(t, err)
			assert.Len(t, plan.Tables, 3)
		})
	}
}

func TestTables_AddDropsStrayReservationFields(t *testing.T) {
	plan, err := seatingPlan().Add(domain.Table{ID: "t3", Number: 3, Capacity: 2, ReservationName: "ghost"})
	require.NoError(t, err)
	added, _ := plan.Find("t3")
	assert.Empty(t, added.ReservationName)
}

func TestTables_UpdatePropagatesToSelection(t *testing.T) {
	plan := seatingPlan()
	first := plan.Tables[0]
	plan = plan.Select(&first)

	plan, err := plan.Update("t1", domain.TablePatch{Capacity: intPtr(3)})
	require.NoError(t, err)

	updated, _ := plan.Find("t1")
	assert.Equal(t, 3, updated.Capacity)
	require.NotNil(t, plan.Selected)
	assert.Equal(t, 3, plan.Selected.Capacity)

	_, err = plan.Update("t1", domain.TablePatch{Number: intPtr(2)})
	assert.ErrorIs(t, err, domain.ErrDuplicateTableNumber)

	plan, err = plan.Update("t1", domain.TablePatch{Number: intPtr(1)})
	assert.NoError(t, err, "keeping its own number is allowed")
}

func TestTables_DeleteClearsSelection(t *testing.T) {
	plan := seatingPlan()
	second := plan.Tables[1]
	plan = plan.Select(&second)

	kept := plan.Delete("t1")
	assert.NotNil(t, kept.Selected)

	plan = plan.Delete("t2")
	assert.Nil(t, plan.Selected)
	assert.Len(t, plan.Tables, 1)
}

func TestTables_ReserveAndCloseAreAllOrNothing(t *testing.T) {
	plan := seatingPlan()
	first := plan.Tables[0]
	plan = plan.Select(&first)

	_, err := plan.Reserve("t1", "Anna", "", "+7 900")
	assert.ErrorIs(t, err, domain.ErrIncompleteReservation)

	plan, err = plan.Reserve("t1", "Anna", "19:00", "+7 900 000 00 00")
	require.NoError(t, err)
	reserved, _ := plan.Find("t1")
	assert.True(t, reserved.IsReserved)
	assert.Equal(t, "Anna", reserved.ReservationName)
	assert.Equal(t, "19:00", reserved.ReservationTime)
	assert.Equal(t, "+7 900 000 00 00", reserved.ReservationPhone)
	assert.Equal(t, reserved, *plan.Selected)

	plan = plan.Close("t1")
	closed, _ := plan.Find("t1")
	assert.False(t, closed.IsReserved)
	assert.Empty(t, closed.ReservationName)
	assert.Empty(t, closed.ReservationTime)
	assert.Empty(t, closed.ReservationPhone)
	assert.Equal(t, closed, *plan.Selected)
}

func TestTables_UnknownIDIsNoOp(t *testing.T) {
	plan := seatingPlan()

	reserved, err := plan.Reserve("missing", "Anna", "19:00", "123")
	require.NoError(t, err)
	assert.Equal(t, plan.Tables, reserved.Tables)
	assert.Equal(t, plan.Tables, plan.Close("missing").Tables)
	assert.Equal(t, plan.Tables, plan.Delete("missing").Tables)
}

func TestTables_SelectCopiesValue(t *testing.T) {
	plan := seatingPlan()
	table := plan.Tables[0]
	plan = plan.Select(&table)
	table.Capacity = 99

	assert.Equal(t, 2, plan.Selected.Capacity)
	assert.Nil(t, plan.Select(nil).Selected)
}
