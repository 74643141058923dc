package repository

import (
	"context"

	"pizzeria-pos/internal/domain/dao"
)

// CatalogRepository is the product store. GetPrice is the read the sale
// workflow depends on: it reports 0 for a missing product instead of an
// error, leaving the interpretation to the caller.
type CatalogRepository interface {
	GetPrice(ctx context.Context, productID int) (float64, error)
	GetAll(ctx context.Context) ([]dao.Product, error)
	GetByID(ctx context.Context, id int) (dao.Product, error)
	Create(ctx context.Context, p dao.Product) (dao.Product, error)
	Update(ctx context.Context, p dao.Product) error
	Delete(ctx context.Context, id int) error
}

// CustomerRepository resolves customers by their natural key, the phone
// number. FindOrCreate is first-write-wins: an existing row is returned
// untouched even when name or address differ.
type CustomerRepository interface {
	FindOrCreate(ctx context.Context, c dao.Customer) (dao.Customer, error)
}

// OrderRepository persists and retrieves order aggregates. SaveOrder writes
// the header and every line in one transaction.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order dao.Order, items []dao.OrderItem) (dao.Order, error)
	GetAll(ctx context.Context) ([]dao.Order, error)
	GetByID(ctx context.Context, id int) (dao.Order, error)
	Delete(ctx context.Context, id int) error
}

type UserRepository interface {
	Create(ctx context.Context, u dao.User) (dao.User, error)
	GetByEmail(ctx context.Context, email string) (dao.User, error)
}

type Repository struct {
	Catalog   CatalogRepository
	Customers CustomerRepository
	Orders    OrderRepository
	Users     UserRepository
}

func New(db DB) *Repository {
	return &Repository{
		Catalog:   NewCatalogRepository(db),
		Customers: NewCustomerRepository(db),
		Orders:    NewOrderRepository(db),
		Users:     NewUserRepository(db),
	}
}
