package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	barcode     TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	stock       BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
	cost_price  BIGINT NOT NULL DEFAULT 0 CHECK (cost_price >= 0),
	sale_price  BIGINT NOT NULL DEFAULT 0 CHECK (sale_price >= 0),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_products_name ON products (name);

CREATE TABLE IF NOT EXISTS sales (
	id          BIGSERIAL PRIMARY KEY,
	quantity    BIGINT NOT NULL,
	total       BIGINT NOT NULL,
	is_cash     BOOLEAN NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sale_products (
	sale_id     BIGINT NOT NULL REFERENCES sales (id) ON DELETE CASCADE ON UPDATE CASCADE,
	product_id  BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE ON UPDATE CASCADE,
	quantity    BIGINT NOT NULL CHECK (quantity > 0),
	PRIMARY KEY (sale_id, product_id)
);

CREATE TABLE IF NOT EXISTS idempotency_keys (
	key         TEXT NOT NULL,
	module      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (key, module)
);
`

// EnsureSchema applies the DDL. All statements are idempotent so it is safe
// to run on every boot.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("platform/db: ensure schema: %w", err)
	}
	return nil
}
