package handlers

import "net/http"

func Router(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// sale workflow
	mux.HandleFunc("POST /ordenes/vender", h.Sales.CreateSale)
	mux.HandleFunc("GET /ordenes/historial", h.Sales.History)
	mux.HandleFunc("GET /ordenes/{id}", h.Sales.GetOrder)
	mux.HandleFunc("DELETE /ordenes/{id}", h.Sales.DeleteOrder)

	// catalog; mutations require a bearer token
	mux.HandleFunc("GET /menu", h.Products.List)
	mux.HandleFunc("GET /productos", h.Products.List)
	mux.HandleFunc("GET /productos/{id}", h.Products.Get)
	mux.HandleFunc("POST /productos", h.requireAuth(h.Products.Create))
	mux.HandleFunc("PUT /productos/{id}", h.requireAuth(h.Products.Update))
	mux.HandleFunc("DELETE /productos/{id}", h.requireAuth(h.Products.Delete))

	// auth
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	return mux
}
