package handlers

import (
	"errors"
	"net/http"

	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
	"pizzeria-pos/internal/service"
)

type SaleHandler struct {
	sales service.SaleServiceInterface
}

func NewSaleHandler(sales service.SaleServiceInterface) *SaleHandler {
	return &SaleHandler{sales: sales}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	receipt, err := h.sales.CreateSale(r.Context(), req)
	if err != nil {
		var invalidProduct *service.InvalidProductError
		switch {
		case errors.As(err, &invalidProduct):
			writeProblem(w, http.StatusBadRequest, "invalid_product", invalidProduct.Error())
		case errors.Is(err, service.ErrInsufficientPayment):
			writeProblem(w, http.StatusBadRequest, "insufficient_payment", err.Error())
		case errors.Is(err, service.ErrValidation):
			writeProblem(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to register sale")
		}
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *SaleHandler) History(w http.ResponseWriter, r *http.Request) {
	views, err := h.sales.History(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *SaleHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	view, err := h.sales.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			writeProblem(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *SaleHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.sales.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			writeProblem(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to delete order")
		return
	}
	writeJSON(w, http.StatusOK, dto.DeleteOrderResponse{Message: "order deleted"})
}
