package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// statements run in dependency order; each is idempotent so Run can execute
// on every startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id      SERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		phone   TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    SERIAL PRIMARY KEY,
		name  TEXT NOT NULL UNIQUE,
		price DOUBLE PRECISION NOT NULL CHECK (price > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          SERIAL PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		total       DOUBLE PRECISION NOT NULL,
		paid        DOUBLE PRECISION NOT NULL,
		change      DOUBLE PRECISION NOT NULL CHECK (change >= 0),
		status      TEXT NOT NULL DEFAULT 'paid'
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         SERIAL PRIMARY KEY,
		order_id   INTEGER NOT NULL REFERENCES orders(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity   INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
		subtotal   DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)`,
}

func Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
