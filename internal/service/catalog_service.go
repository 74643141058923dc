package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"pizzeria-pos/internal/domain/dao"
	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
)

var validate = validator.New()

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id int) (dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id int) (string, error)
}

type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(products), nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (dto.ProductResponse, error) {
	p, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(p), nil
}

func (s *CatalogService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if err := validate.Struct(req); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	p, err := s.catalog.Create(ctx, dao.Product{Name: req.Name, Price: req.Price})
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(p), nil
}

// Update applies a partial change. The product is loaded first so untouched
// fields keep their stored values.
func (s *CatalogService) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	if err := validate.Struct(req); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}

	if err := s.catalog.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(p), nil
}

func (s *CatalogService) Delete(ctx context.Context, id int) (string, error) {
	p, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.catalog.Delete(ctx, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("product %q deleted", p.Name), nil
}
