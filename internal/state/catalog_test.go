package state_test

import (
	"testing"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesAreDerived(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", Category: "Main"},
		{ID: "p2", Category: "Soups"},
		{ID: "p3", Category: "Main"},
	}
	assert.Equal(t, []string{"Main", "Soups"}, state.Categories(products))
	assert.Equal(t, []string{"Main"}, state.Categories(products[:1]))
	assert.Empty(t, state.Categories(nil))
	assert.Len(t, state.ByCategory(products, "Main"), 2)
}

func TestApplyProductPatchKeepsUnsetFields(t *testing.T) {
	price := int64(700)
	available := false
	p := state.ApplyProductPatch(shashlik, domain.ProductPatch{Price: &price, Available: &available})

	assert.Equal(t, int64(700), p.Price)
	assert.False(t, p.Available)
	assert.Equal(t, shashlik.Name, p.Name)
	assert.Equal(t, shashlik.Category, p.Category)
}
