package service

import (
	"github.com/rs/zerolog"

	"pizzeria-pos/internal/config"
	"pizzeria-pos/internal/events"
	"pizzeria-pos/internal/repository"
)

type Service struct {
	Sales   SaleServiceInterface
	Catalog CatalogServiceInterface
	Auth    AuthServiceInterface
}

func New(repo *repository.Repository, publisher events.Publisher, auth config.AuthConfig, lg zerolog.Logger) *Service {
	return &Service{
		Sales:   NewSaleService(repo.Orders, repo.Customers, repo.Catalog, publisher, lg),
		Catalog: NewCatalogService(repo.Catalog),
		Auth:    NewAuthService(repo.Users, auth.SecretKey, auth.TokenTTL),
	}
}
