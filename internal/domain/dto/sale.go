package dto

import (
	"time"

	"pizzeria-pos/internal/domain/dao"
)

type SaleCustomer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// SaleLine is one requested line. A zero quantity means "one": the field is
// optional in the request body and single-item lines are the common case.
type SaleLine struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gte=0"`
}

type SaleRequest struct {
	Customer       SaleCustomer `json:"customer" validate:"required"`
	Items          []SaleLine   `json:"items" validate:"required,min=1,dive"`
	AmountTendered float64      `json:"amount_tendered" validate:"gte=0"`
}

// Receipt is the response for a completed sale.
type Receipt struct {
	OrderID      int     `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Timestamp    string  `json:"timestamp"`
	Total        float64 `json:"total"`
	Paid         float64 `json:"paid"`
	Change       float64 `json:"change"`
	Message      string  `json:"message"`
}

type OrderLineView struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderView struct {
	OrderID      int             `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Timestamp    string          `json:"timestamp,omitempty"`
	Total        float64         `json:"total"`
	Paid         float64         `json:"paid"`
	Change       float64         `json:"change"`
	Status       string          `json:"status"`
	Items        []OrderLineView `json:"items"`
}

type DeleteOrderResponse struct {
	Message string `json:"message"`
}

// ProjectOrder maps a loaded order aggregate into its history view. Pure
// transformation: the unit price is recovered from the frozen subtotal, not
// from the product's current price.
func ProjectOrder(o dao.Order) OrderView {
	v := OrderView{
		OrderID:      o.ID,
		CustomerName: o.Customer.Name,
		Total:        o.Total,
		Paid:         o.Paid,
		Change:       o.Change,
		Status:       o.Status,
		Items:        make([]OrderLineView, 0, len(o.Items)),
	}
	if !o.CreatedAt.IsZero() {
		v.Timestamp = o.CreatedAt.UTC().Format(time.RFC3339)
	}
	for _, it := range o.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		v.Items = append(v.Items, OrderLineView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.Subtotal / float64(qty),
			Subtotal:    it.Subtotal,
		})
	}
	return v
}

// ProjectOrders maps a batch of aggregates, preserving order.
func ProjectOrders(orders []dao.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, ProjectOrder(o))
	}
	return views
}

// NewReceipt builds the sale response from the just-persisted aggregate.
func NewReceipt(o dao.Order, customerName string) Receipt {
	return Receipt{
		OrderID:      o.ID,
		CustomerName: customerName,
		Timestamp:    o.CreatedAt.UTC().Format(time.RFC3339),
		Total:        o.Total,
		Paid:         o.Paid,
		Change:       o.Change,
		Message:      "sale completed",
	}
}
