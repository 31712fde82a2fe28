package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// Repository persists products in PostgreSQL.
type Repository interface {
	Create(ctx context.Context, product Product) (Product, error)
	UpdateByID(ctx context.Context, id int64, product Product) (int64, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByBarcode(ctx context.Context, barcode string) ([]Product, error)
	SearchByName(ctx context.Context, text string) ([]Product, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByBarcode(ctx context.Context, barcode string) (int64, error)
}

type repository struct {
	db shared.Querier
}

// NewRepository constructs a Repository over a pool or transaction handle.
// Binding to a pgx.Tx makes every call participate in the caller's
// transaction; the sale coordinator relies on this for stock decrements.
func NewRepository(db shared.Querier) Repository {
	return &repository{db: db}
}

const productColumns = `id, barcode, name, stock, cost_price, sale_price, created_at, updated_at`

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (barcode, name, stock, cost_price, sale_price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query, product.Barcode, product.Name, product.Stock, product.CostPrice, product.SalePrice, now).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, shared.ErrDuplicateBarcode
		}
		return Product{}, err
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

// UpdateByID replaces the full record and reports rows affected. A zero
// count signals a stale id or a concurrent modification; callers treat it
// as failure.
func (r *repository) UpdateByID(ctx context.Context, id int64, product Product) (int64, error) {
	query := `UPDATE products SET barcode = $1, name = $2, stock = $3, cost_price = $4, sale_price = $5, updated_at = $6 WHERE id = $7`
	tag, err := r.db.Exec(ctx, query, product.Barcode, product.Name, product.Stock, product.CostPrice, product.SalePrice, time.Now(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, shared.ErrDuplicateBarcode
		}
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) FindAll(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *repository) FindByID(ctx context.Context, id int64) (Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Barcode, &p.Name, &p.Stock, &p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrProductNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *repository) FindByBarcode(ctx context.Context, barcode string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	rows, err := r.db.Query(ctx, query, barcode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *repository) SearchByName(ctx context.Context, text string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $1 ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query, "%"+text+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) DeleteByBarcode(ctx context.Context, barcode string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE barcode = $1`, barcode)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Stock, &p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// isUniqueViolation checks for a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
