// Package state holds the pure transition rules behind the storefront stores.
// Every function takes a value and returns the next value; nothing here
// touches storage, clocks or locks.
package state

import (
	"time"

	"restaurant-storefront/internal/domain"
)

type Cart struct {
	Items      []domain.CartItem  `json:"items"`
	SavedItems []domain.SavedItem `json:"savedItems"`
	IsOpen     bool               `json:"isOpen"`
}

// AddItem merges into the existing line for the product or appends a new one.
// Quantities below one are raised to one.
func (c Cart) AddItem(product domain.Product, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			c.Items = items
			return c
		}
	}
	c.Items = append(items, domain.CartItem{Product: product, Quantity: quantity})
	return c
}

func (c Cart) RemoveItem(productID string) Cart {
	items := make([]domain.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
	return c
}

func (c Cart) UpdateQuantity(productID string, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
		}
	}
	c.Items = items
	return c
}

func (c Cart) Clear() Cart {
	c.Items = []domain.CartItem{}
	return c
}

// SaveForLater moves the product out of the active cart. It is a no-op when
// the product is already saved.
func (c Cart) SaveForLater(product domain.Product, now time.Time) Cart {
	if c.IsSaved(product.ID) {
		return c
	}
	saved := append(cloneSaved(c.SavedItems), domain.SavedItem{Product: product, DateAdded: now})
	c = c.RemoveItem(product.ID)
	c.SavedItems = saved
	return c
}

func (c Cart) RemoveSavedItem(productID string) Cart {
	saved := make([]domain.SavedItem, 0, len(c.SavedItems))
	for _, item := range c.SavedItems {
		if item.Product.ID != productID {
			saved = append(saved, item)
		}
	}
	c.SavedItems = saved
	return c
}

// MoveToCart adds a saved product back with quantity 1 and drops it from the
// saved list. The second result reports whether the product was saved.
func (c Cart) MoveToCart(productID string) (Cart, bool) {
	for _, item := range c.SavedItems {
		if item.Product.ID == productID {
			return c.AddItem(item.Product, 1).RemoveSavedItem(productID), true
		}
	}
	return c, false
}

func (c Cart) IsSaved(productID string) bool {
	for _, item := range c.SavedItems {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (c Cart) Total() int64 {
	return ItemsTotal(c.Items)
}

func (c Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Clone returns a copy whose slices do not alias the receiver.
func (c Cart) Clone() Cart {
	c.Items = cloneItems(c.Items)
	c.SavedItems = cloneSaved(c.SavedItems)
	return c
}

// ItemsTotal is the sum of price times quantity over the lines.
func ItemsTotal(items []domain.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

func cloneItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

func cloneSaved(items []domain.SavedItem) []domain.SavedItem {
	out := make([]domain.SavedItem, len(items))
	copy(out, items)
	return out
}
