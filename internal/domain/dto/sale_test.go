package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-pos/internal/domain/dao"
)

func sampleOrder() dao.Order {
	return dao.Order{
		ID:         7,
		CustomerID: 3,
		CreatedAt:  time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
		Total:      240.0,
		Paid:       300.0,
		Change:     60.0,
		Status:     dao.StatusPaid,
		Customer:   dao.Customer{ID: 3, Name: "Ana Torres", Phone: "5551234567", Address: "Av. Reforma 10"},
		Items: []dao.OrderItem{
			{ID: 1, OrderID: 7, ProductID: 1, ProductName: "Margherita", Quantity: 2, Subtotal: 240.0},
		},
	}
}

func TestProjectOrder(t *testing.T) {
	view := ProjectOrder(sampleOrder())

	assert.Equal(t, 7, view.OrderID)
	assert.Equal(t, "Ana Torres", view.CustomerName)
	assert.Equal(t, "2026-03-14T12:30:00Z", view.Timestamp)
	assert.Equal(t, 240.0, view.Total)
	assert.Equal(t, 300.0, view.Paid)
	assert.Equal(t, 60.0, view.Change)
	assert.Equal(t, dao.StatusPaid, view.Status)

	require.Len(t, view.Items, 1)
	line := view.Items[0]
	assert.Equal(t, 1, line.ProductID)
	assert.Equal(t, "Margherita", line.ProductName)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 120.0, line.UnitPrice, "unit price recovered from the frozen subtotal")
	assert.Equal(t, 240.0, line.Subtotal)
}

func TestProjectOrderUnsetTimestamp(t *testing.T) {
	o := sampleOrder()
	o.CreatedAt = time.Time{}

	view := ProjectOrder(o)
	assert.Empty(t, view.Timestamp)
}

func TestProjectOrderNoItems(t *testing.T) {
	o := sampleOrder()
	o.Items = nil

	view := ProjectOrder(o)
	assert.NotNil(t, view.Items, "items marshal as [] rather than null")
	assert.Empty(t, view.Items)
}

func TestProjectOrders(t *testing.T) {
	first := sampleOrder()
	second := sampleOrder()
	second.ID = 8

	views := ProjectOrders([]dao.Order{first, second})
	require.Len(t, views, 2)
	assert.Equal(t, 7, views[0].OrderID)
	assert.Equal(t, 8, views[1].OrderID)
}

func TestNewReceipt(t *testing.T) {
	r := NewReceipt(sampleOrder(), "Ana Torres")

	assert.Equal(t, 7, r.OrderID)
	assert.Equal(t, "Ana Torres", r.CustomerName)
	assert.Equal(t, "2026-03-14T12:30:00Z", r.Timestamp)
	assert.Equal(t, 240.0, r.Total)
	assert.Equal(t, 300.0, r.Paid)
	assert.Equal(t, 60.0, r.Change)
	assert.NotEmpty(t, r.Message)
}
