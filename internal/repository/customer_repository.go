package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizzeria-pos/internal/domain/dao"
)

type customerRepo struct {
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

// FindOrCreate returns the customer with the given phone number, inserting
// a new row when none exists. The phone column is UNIQUE, so two concurrent
// first orders for one phone cannot both insert: the loser re-reads the
// winner's row.
func (r *customerRepo) FindOrCreate(ctx context.Context, c dao.Customer) (dao.Customer, error) {
	existing, err := r.getByPhone(ctx, c.Phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dao.Customer{}, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO customers (name, phone, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Name, c.Phone, c.Address).Scan(&c.ID)
	if err == nil {
		return c, nil
	}

	if isUniqueViolation(err) {
		return r.getByPhone(ctx, c.Phone)
	}
	return dao.Customer{}, fmt.Errorf("failed to create customer: %w", err)
}

func (r *customerRepo) getByPhone(ctx context.Context, phone string) (dao.Customer, error) {
	var c dao.Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, name, phone, address FROM customers WHERE phone = $1
	`, phone).Scan(&c.ID, &c.Name, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dao.Customer{}, err
		}
		return dao.Customer{}, fmt.Errorf("failed to get customer by phone: %w", err)
	}
	return c, nil
}
