package handlers

import (
	"errors"
	"net/http"

	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
	"pizzeria-pos/internal/service"
)

type ProductHandler struct {
	catalog service.CatalogServiceInterface
}

func NewProductHandler(catalog service.CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.catalog.Create(r.Context(), req)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.catalog.Update(r.Context(), id, req)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	msg, err := h.catalog.Delete(r.Context(), id)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeleteProductResponse{Message: msg})
}

func (h *ProductHandler) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, repository.ErrDuplicateName):
		writeProblem(w, http.StatusBadRequest, "duplicate_name", err.Error())
	case errors.Is(err, service.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "internal_error", "catalog operation failed")
	}
}
