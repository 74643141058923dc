package handlers

import "pizzeria-pos/internal/service"

type Handler struct {
	Sales    *SaleHandler
	Products *ProductHandler
	Auth     *AuthHandler

	auth service.AuthServiceInterface
}

func New(s *service.Service) *Handler {
	return &Handler{
		Sales:    NewSaleHandler(s.Sales),
		Products: NewProductHandler(s.Catalog),
		Auth:     NewAuthHandler(s.Auth),
		auth:     s.Auth,
	}
}
