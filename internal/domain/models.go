package domain

import "time"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	Featured    bool   `json:"featured,omitempty"`
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Category    *string `json:"category,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

type SavedItem struct {
	Product   Product   `json:"product"`
	DateAdded time.Time `json:"dateAdded"`
}

type Table struct {
	ID               string `json:"id"`
	Number           int    `json:"number"`
	Capacity         int    `json:"capacity"`
	IsReserved       bool   `json:"isReserved"`
	ReservationName  string `json:"reservationName,omitempty"`
	ReservationTime  string `json:"reservationTime,omitempty"`
	ReservationPhone string `json:"reservationPhone,omitempty"`
}

// TablePatch only covers the seating attributes; reservation fields change
// through reserve and close.
type TablePatch struct {
	Number   *int `json:"number,omitempty"`
	Capacity *int `json:"capacity,omitempty"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// GuestUserID owns orders placed without a session.
const GuestUserID = "guest"

type Address struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []CartItem  `json:"items"`
	Status          OrderStatus `json:"status"`
	Total           int64       `json:"total"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty"`
}

type RevenueLedger struct {
	TotalRevenue         int64            `json:"totalRevenue"`
	DailyRevenue         map[string]int64 `json:"dailyRevenue"`
	CanceledOrdersAmount int64            `json:"canceledOrdersAmount"`
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	Orders     []Order     `json:"orders"`
	SavedItems []SavedItem `json:"savedItems"`
}

type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsAdmin         bool  `json:"isAdmin"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderEvent is emitted by the order store after a create or a status write.
type OrderEvent struct {
	Type           string           `json:"type"`
	OrderID        string           `json:"order_id"`
	UserID         string           `json:"user_id"`
	Status         OrderStatus      `json:"status"`
	PreviousStatus OrderStatus      `json:"previous_status,omitempty"`
	Total          int64            `json:"total"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          []OrderEventItem `json:"items,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}
