package dao

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
}

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is the persisted order header; Customer and Items are populated by
// the repository reads that join the related rows.
type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	CreatedAt  time.Time   `json:"created_at"`
	Total      float64     `json:"total"`
	Paid       float64     `json:"paid"`
	Change     float64     `json:"change"`
	Status     string      `json:"status"`
	Customer   Customer    `json:"customer,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
}

// OrderItem freezes the price agreed at sale time into Subtotal; catalog
// price updates never touch persisted items. ProductName is joined on read.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// StatusPaid is the only status an order ever has: sales are paid in full
// at the counter, and no update operation exists.
const StatusPaid = "paid"
