package service

import (
	"context"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"
)

// SnapshotStore persists a whole store state as one JSON document per key.
// Load reports false when nothing was saved under key yet.
type SnapshotStore interface {
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CatalogInterface interface {
	Add(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
	List() []domain.Product
	ListByCategory(category string) []domain.Product
	GetByID(id string) (domain.Product, error)
	Categories() []string
	Featured() []domain.Product
	Fetch(ctx context.Context) ([]domain.Product, error)
	FetchByCategory(ctx context.Context, category string) ([]domain.Product, error)
	FetchByID(ctx context.Context, id string) (domain.Product, error)
}

type CartInterface interface {
	AddItem(ctx context.Context, product domain.Product, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Clear(ctx context.Context) error
	SaveForLater(ctx context.Context, product domain.Product) error
	RemoveSavedItem(ctx context.Context, productID string) error
	MoveToCart(ctx context.Context, productID string) error
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	Toggle(ctx context.Context) error
	Snapshot() state.Cart
	Total() int64
}

type TableInterface interface {
	Add(ctx context.Context, table domain.Table) (domain.Table, error)
	Update(ctx context.Context, id string, patch domain.TablePatch) error
	Delete(ctx context.Context, id string) error
	Reserve(ctx context.Context, id, name, time, phone string) error
	Close(ctx context.Context, id string) error
	Select(ctx context.Context, table *domain.Table) error
	SelectByID(ctx context.Context, id string) error
	Selected() *domain.Table
	List() []domain.Table
	GetByID(id string) (domain.Table, error)
}

type OrderInterface interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(id string) (domain.Order, error)
	GetByUser(userID string) []domain.Order
	List() []domain.Order
	FetchUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	FetchAllOrders(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error)
	ForceStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error)
	Delete(ctx context.Context, id string) error
}

type RevenueInterface interface {
	OrderEventHandler
	AddOrderRevenue(ctx context.Context, order domain.Order) error
	UpdateOrderRevenue(ctx context.Context, order domain.Order, previous domain.OrderStatus) error
	RevenueForPeriod(start, end time.Time) int64
	Ledger() domain.RevenueLedger
}

type AuthInterface interface {
	Login(ctx context.Context, user domain.User) error
	Logout(ctx context.Context) error
	Session() domain.Session
}

type UserInterface interface {
	Register(ctx context.Context, email, name string) (domain.User, error)
	FindByEmail(email string) (domain.User, error)
	GetByID(id string) (domain.User, error)
	Customers(query string, page, perPage int) CustomerPage
	FetchCustomers(ctx context.Context, query string, page, perPage int) (CustomerPage, error)
}

type AuthenticatorInterface interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, email, name, password string) (domain.User, error)
	Logout(ctx context.Context) error
}

type CheckoutInterface interface {
	Checkout(ctx context.Context, address *domain.Address) (domain.Order, error)
}

type DashboardInterface interface {
	Stats(days int) DashboardStats
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

var (
	_ CatalogInterface       = (*CatalogStore)(nil)
	_ CartInterface          = (*CartStore)(nil)
	_ TableInterface         = (*TableStore)(nil)
	_ OrderInterface         = (*OrderStore)(nil)
	_ RevenueInterface       = (*RevenueStore)(nil)
	_ AuthInterface          = (*AuthStore)(nil)
	_ UserInterface          = (*UserStore)(nil)
	_ AuthenticatorInterface = (*Authenticator)(nil)
	_ CheckoutInterface      = (*CheckoutService)(nil)
	_ DashboardInterface     = (*DashboardService)(nil)
	_ QRGenerator            = DefaultQRGenerator{}
	_ OrderEventHandler      = (*Dispatcher)(nil)
)
