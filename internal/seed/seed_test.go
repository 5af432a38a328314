package seed_test

import (
	"testing"

	"restaurant-storefront/internal/seed"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotalsMatchItems(t *testing.T) {
	for _, order := range seed.Orders() {
		assert.Equal(t, state.ItemsTotal(order.Items), order.Total, order.ID)
	}
}

func TestCatalogShape(t *testing.T) {
	products := seed.Products()
	assert.Len(t, products, 14)
	assert.Equal(t, int64(650), products[0].Price)
	assert.Equal(t, []string{"Основные блюда", "Закуски", "Супы", "Десерты", "Напитки"}, state.Categories(products))

	plan := state.Tables{Tables: seed.Tables()}
	for _, table := range plan.Tables {
		assert.False(t, plan.NumberTaken(table.Number, table.ID))
	}
}
