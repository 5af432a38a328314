package service

import (
	"context"
	"strings"
	"sync"

	"restaurant-storefront/internal/domain"

	"github.com/google/uuid"
)

const DefaultCustomersPerPage = 10

// CustomerPage is one page of the admin customer directory.
type CustomerPage struct {
	Customers  []domain.User `json:"customers"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	TotalPages int           `json:"totalPages"`
}

// OrderLister gives the user directory read access to order history.
type OrderLister interface {
	GetByUser(userID string) []domain.Order
}

type UserStore struct {
	mu        sync.RWMutex
	users     []domain.User
	orders    OrderLister
	snapshots SnapshotStore
	latency   Latency
}

func NewUserStore(ctx context.Context, snapshots SnapshotStore, seed []domain.User, orders OrderLister, latency Latency) *UserStore {
	s := &UserStore{
		users:     append([]domain.User{}, seed...),
		orders:    orders,
		snapshots: snapshots,
		latency:   latency,
	}
	var saved []domain.User
	if restore(ctx, snapshots, UserKey, &saved) {
		s.users = saved
	}
	return s
}

// Register adds a customer account. Emails are compared case-insensitively.
func (s *UserStore) Register(ctx context.Context, email, name string) (domain.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return domain.User{}, domain.ErrMissingFields
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findByEmail(email); ok {
		return domain.User{}, domain.ErrDuplicateEmail
	}
	user := domain.User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Role:       domain.RoleCustomer,
		Orders:     []domain.Order{},
		SavedItems: []domain.SavedItem{},
	}
	s.users = append(append([]domain.User{}, s.users...), user)
	return user, persist(ctx, s.snapshots, UserKey, s.users)
}

func (s *UserStore) FindByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.findByEmail(email)
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return s.withOrders(user), nil
}

func (s *UserStore) GetByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return s.withOrders(u), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// Customers filters customers by a case-insensitive substring of name or
// email and returns the requested page, counting from 1.
func (s *UserStore) Customers(query string, page, perPage int) CustomerPage {
	if perPage < 1 {
		perPage = DefaultCustomersPerPage
	}
	if page < 1 {
		page = 1
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	matched := []domain.User{}
	for _, u := range s.users {
		if u.Role != domain.RoleCustomer {
			continue
		}
		if needle == "" || strings.Contains(strings.ToLower(u.Name), needle) || strings.Contains(strings.ToLower(u.Email), needle) {
			matched = append(matched, s.withOrders(u))
		}
	}
	s.mu.RUnlock()

	result := CustomerPage{
		Customers:  []domain.User{},
		Total:      len(matched),
		Page:       page,
		PerPage:    perPage,
		TotalPages: (len(matched) + perPage - 1) / perPage,
	}
	start := (page - 1) * perPage
	if start >= len(matched) {
		return result
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	result.Customers = matched[start:end]
	return result
}

func (s *UserStore) FetchCustomers(ctx context.Context, query string, page, perPage int) (CustomerPage, error) {
	if err := wait(ctx, s.latency.Customers); err != nil {
		return CustomerPage{}, err
	}
	return s.Customers(query, page, perPage), nil
}

func (s *UserStore) findByEmail(email string) (domain.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *UserStore) withOrders(u domain.User) domain.User {
	if s.orders != nil {
		u.Orders = s.orders.GetByUser(u.ID)
	}
	if u.Orders == nil {
		u.Orders = []domain.Order{}
	}
	if u.SavedItems == nil {
		u.SavedItems = []domain.SavedItem{}
	}
	return u
}
