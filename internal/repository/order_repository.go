package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizzeria-pos/internal/domain/dao"
)

type orderRepo struct {
	db DB
}

func NewOrderRepository(db DB) OrderRepository {
	return &orderRepo{db: db}
}

// SaveOrder inserts the header and all line items inside one transaction.
// A failure at any point rolls back the whole aggregate: an order never
// becomes visible with missing lines.
func (r *orderRepo) SaveOrder(ctx context.Context, order dao.Order, items []dao.OrderItem) (dao.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, created_at, total, paid, change, status)
		VALUES ($1, NOW(), $2, $3, $4, $5)
		RETURNING id, created_at
	`, order.CustomerID, order.Total, order.Paid, order.Change, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, subtotal)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, order.ID, items[i].ProductID, items[i].Quantity, items[i].Subtotal,
		).Scan(&items[i].ID)
		if err != nil {
			return dao.Order{}, fmt.Errorf("failed to insert order item for product %d: %w", items[i].ProductID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return dao.Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Items = items
	return order, nil
}

func (r *orderRepo) GetAll(ctx context.Context) ([]dao.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.customer_id, o.created_at, o.total, o.paid, o.change, o.status,
		       c.id, c.name, c.phone, c.address
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []dao.Order
	ids := []int{}
	for rows.Next() {
		var o dao.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CreatedAt, &o.Total, &o.Paid, &o.Change, &o.Status,
			&o.Customer.ID, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	if len(orders) == 0 {
		return []dao.Order{}, nil
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int) (dao.Order, error) {
	var o dao.Order
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.customer_id, o.created_at, o.total, o.paid, o.change, o.status,
		       c.id, c.name, c.phone, c.address
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`, id).Scan(
		&o.ID, &o.CustomerID, &o.CreatedAt, &o.Total, &o.Paid, &o.Change, &o.Status,
		&o.Customer.ID, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dao.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return dao.Order{}, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	itemsByOrder, err := r.loadItems(ctx, []int{id})
	if err != nil {
		return dao.Order{}, err
	}
	o.Items = itemsByOrder[id]
	return o, nil
}

// Delete removes the line items first, then the header, in one transaction.
func (r *orderRepo) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *orderRepo) loadItems(ctx context.Context, orderIDs []int) (map[int][]dao.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.subtotal
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1::int[])
		ORDER BY i.id
	`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]dao.OrderItem)
	for rows.Next() {
		var it dao.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	return out, nil
}
