package state

import "restaurant-storefront/internal/domain"

// Categories derives the distinct categories in first-seen order.
func Categories(products []domain.Product) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func ByCategory(products []domain.Product, category string) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func ApplyProductPatch(p domain.Product, patch domain.ProductPatch) domain.Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	return p
}
