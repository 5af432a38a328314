package service

import (
	"context"
	"strings"
	"sync"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"
)

type CatalogStore struct {
	mu        sync.RWMutex
	products  []domain.Product
	snapshots SnapshotStore
	latency   Latency
}

// NewCatalogStore restores the catalog snapshot, falling back to seed when
// nothing was saved before.
func NewCatalogStore(ctx context.Context, snapshots SnapshotStore, seed []domain.Product, latency Latency) *CatalogStore {
	s := &CatalogStore{snapshots: snapshots, latency: latency}
	var saved []domain.Product
	if restore(ctx, snapshots, CatalogKey, &saved) {
		s.products = saved
	} else {
		s.products = append([]domain.Product{}, seed...)
	}
	return s
}

func ValidateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrInvalidProductName
	}
	if p.Price <= 0 {
		return domain.ErrInvalidProductPrice
	}
	return nil
}

func (s *CatalogStore) Add(ctx context.Context, product domain.Product) error {
	if err := ValidateProduct(product); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == product.ID {
			return domain.ErrDuplicateProductID
		}
	}
	s.products = append(s.cloneProducts(), product)
	return persist(ctx, s.snapshots, CatalogKey, s.products)
}

// Update merges patch into the product. Unknown ids are ignored.
func (s *CatalogStore) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.cloneProducts()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		updated := state.ApplyProductPatch(products[i], patch)
		if err := ValidateProduct(updated); err != nil {
			return err
		}
		products[i] = updated
		s.products = products
		return persist(ctx, s.snapshots, CatalogKey, s.products)
	}
	return nil
}

func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	if len(products) == len(s.products) {
		return nil
	}
	s.products = products
	return persist(ctx, s.snapshots, CatalogKey, s.products)
}

func (s *CatalogStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneProducts()
}

func (s *CatalogStore) ListByCategory(category string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.ByCategory(s.products, category)
}

func (s *CatalogStore) GetByID(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Categories(s.products)
}

func (s *CatalogStore) Featured() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	featured := []domain.Product{}
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

func (s *CatalogStore) Fetch(ctx context.Context) ([]domain.Product, error) {
	if err := wait(ctx, s.latency.Products); err != nil {
		return nil, err
	}
	return s.List(), nil
}

func (s *CatalogStore) FetchByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if err := wait(ctx, s.latency.Category); err != nil {
		return nil, err
	}
	return s.ListByCategory(category), nil
}

func (s *CatalogStore) FetchByID(ctx context.Context, id string) (domain.Product, error) {
	if err := wait(ctx, s.latency.Product); err != nil {
		return domain.Product{}, err
	}
	return s.GetByID(id)
}

func (s *CatalogStore) cloneProducts() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
