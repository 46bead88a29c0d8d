package model

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// validTransitions maps each status to the statuses reachable from it.
// Delivered and cancelled are terminal.
var validTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// IsValidStatus reports whether s is a member of the status vocabulary.
func IsValidStatus(s string) bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// A same-status update is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	Name      string  `json:"name" db:"name"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
	Size      string  `json:"size" db:"size"`
	Color     string  `json:"color" db:"color"`
	ProductID string  `json:"productId" db:"product_id"`
}

// ShippingAddress holds the delivery address for an order.
// Every field is populated at order creation, falling back to defaults.
type ShippingAddress struct {
	Street  string `json:"street" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zipCode" db:"zip_code"`
	Country string `json:"country" db:"country"`
	Phone   string `json:"phone" db:"phone"`
}

// Order represents a customer order.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          *uuid.UUID      `json:"user,omitempty" db:"user_id"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	ItemsPrice      float64         `json:"itemsPrice" db:"items_price"`
	TaxPrice        float64         `json:"taxPrice" db:"tax_price"`
	ShippingPrice   float64         `json:"shippingPrice" db:"shipping_price"`
	TotalPrice      float64         `json:"totalPrice" db:"total_price"`
	IsPaid          bool            `json:"isPaid" db:"is_paid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty" db:"paid_at"`
	Status          string          `json:"status" db:"status"`
	CancelReason    string          `json:"cancelReason,omitempty" db:"cancel_reason"`
	Notes           string          `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderUpdate represents a partial update to an order. Nil fields are left
// untouched.
type OrderUpdate struct {
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsPaid       *bool   `json:"isPaid,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`
}

// Pagination describes the position of a page within a listing.
type Pagination struct {
	Current      int `json:"current"`
	Total        int `json:"total"`
	Count        int `json:"count"`
	TotalRecords int `json:"totalRecords"`
}

// OrderPage is a single page of orders plus pagination metadata.
type OrderPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}
