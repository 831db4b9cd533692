package domain

import "time"

type OrderStatus string

const (
	// OrderStatusPaid is the only status the simulated gateway produces:
	// checkout either succeeds fully paid or fails without a write.
	OrderStatusPaid OrderStatus = "paid"
)

type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// CartLine is one entry of a checkout request.
type CartLine struct {
	ProductID string
	Quantity  int
}
