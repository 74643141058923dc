package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
	"pizzeria-pos/internal/service"
)

type fakeSales struct {
	receipt   dto.Receipt
	views     []dto.OrderView
	err       error
	deleteErr error
}

func (f *fakeSales) CreateSale(_ context.Context, _ dto.SaleRequest) (dto.Receipt, error) {
	return f.receipt, f.err
}

func (f *fakeSales) History(_ context.Context) ([]dto.OrderView, error) {
	return f.views, f.err
}

func (f *fakeSales) GetOrder(_ context.Context, id int) (dto.OrderView, error) {
	if f.err != nil {
		return dto.OrderView{}, f.err
	}
	for _, v := range f.views {
		if v.OrderID == id {
			return v, nil
		}
	}
	return dto.OrderView{}, repository.ErrOrderNotFound
}

func (f *fakeSales) DeleteOrder(_ context.Context, _ int) error {
	return f.deleteErr
}

func newTestRouter(sales service.SaleServiceInterface) http.Handler {
	h := &Handler{
		Sales: NewSaleHandler(sales),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ordenes/vender", h.Sales.CreateSale)
	mux.HandleFunc("GET /ordenes/historial", h.Sales.History)
	mux.HandleFunc("GET /ordenes/{id}", h.Sales.GetOrder)
	mux.HandleFunc("DELETE /ordenes/{id}", h.Sales.DeleteOrder)
	return mux
}

const saleBody = `{
	"customer": {"name": "Ana Torres", "phone": "5551234567", "address": "Av. Reforma 10"},
	"items": [{"product_id": 1, "quantity": 2}],
	"amount_tendered": 300.0
}`

func TestCreateSaleHandler(t *testing.T) {
	sales := &fakeSales{receipt: dto.Receipt{
		OrderID: 1, CustomerName: "Ana Torres", Total: 240.0, Paid: 300.0, Change: 60.0,
		Message: "sale completed",
	}}
	router := newTestRouter(sales)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordenes/vender", strings.NewReader(saleBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.OrderID)
	assert.Equal(t, 60.0, got.Change)
}

func TestCreateSaleHandlerErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"invalid product", &service.InvalidProductError{ProductID: 999}, http.StatusBadRequest, "invalid_product"},
		{"insufficient payment", service.ErrInsufficientPayment, http.StatusBadRequest, "insufficient_payment"},
		{"validation", service.ErrValidation, http.StatusBadRequest, "bad_request"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeSales{err: tc.err})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordenes/vender", strings.NewReader(saleBody)))

			require.Equal(t, tc.wantStatus, rec.Code)
			var problem map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tc.wantType, problem["type"])
		})
	}
}

func TestCreateSaleHandlerBadJSON(t *testing.T) {
	router := newTestRouter(&fakeSales{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordenes/vender", strings.NewReader(`{"customer":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryHandler(t *testing.T) {
	sales := &fakeSales{views: []dto.OrderView{
		{OrderID: 1, CustomerName: "Ana Torres", Total: 240.0, Status: "paid", Items: []dto.OrderLineView{}},
		{OrderID: 2, CustomerName: "Luis Pérez", Total: 85.5, Status: "paid", Items: []dto.OrderLineView{}},
	}}
	router := newTestRouter(sales)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordenes/historial", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []dto.OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Luis Pérez", got[1].CustomerName)
}

func TestGetOrderHandler(t *testing.T) {
	sales := &fakeSales{views: []dto.OrderView{
		{OrderID: 5, CustomerName: "Ana Torres", Total: 240.0, Status: "paid"},
	}}
	router := newTestRouter(sales)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordenes/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordenes/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordenes/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrderHandler(t *testing.T) {
	router := newTestRouter(&fakeSales{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ordenes/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DeleteOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestDeleteMissingOrderIsNotFound(t *testing.T) {
	// A missing id must answer 404, never leak as a 500.
	router := newTestRouter(&fakeSales{deleteErr: repository.ErrOrderNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ordenes/12345", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
