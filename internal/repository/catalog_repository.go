package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pizzeria-pos/internal/domain/dao"
)

type catalogRepo struct {
	db DB
}

func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepo{db: db}
}

// GetPrice resolves the current price of a product. A missing product is
// not an error here: the zero sentinel lets the sale workflow decide how to
// react.
func (r *catalogRepo) GetPrice(ctx context.Context, productID int) (float64, error) {
	var price float64
	err := r.db.QueryRow(ctx, `SELECT price FROM products WHERE id = $1`, productID).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get price for product %d: %w", productID, err)
	}
	return price, nil
}

func (r *catalogRepo) GetAll(ctx context.Context) ([]dao.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []dao.Product{}
	for rows.Next() {
		var p dao.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	return products, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id int) (dao.Product, error) {
	var p dao.Product
	err := r.db.QueryRow(ctx, `SELECT id, name, price FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return dao.Product{}, ErrProductNotFound
	}
	if err != nil {
		return dao.Product{}, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

func (r *catalogRepo) Create(ctx context.Context, p dao.Product) (dao.Product, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id
	`, p.Name, p.Price).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return dao.Product{}, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		return dao.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return p, nil
}

func (r *catalogRepo) Update(ctx context.Context, p dao.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET name = $1, price = $2 WHERE id = $3
	`, p.Name, p.Price, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		return fmt.Errorf("failed to update product %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
