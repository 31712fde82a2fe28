package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bodega-pos/bodega-pos/internal/catalog"
	"github.com/bodega-pos/bodega-pos/internal/platform/db"
	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	List(ctx context.Context, includeLines bool) ([]Sale, error)
	FindByID(ctx context.Context, id int64, includeLines bool) (Sale, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// TxRepository exposes the operations available inside a sale transaction.
// Product access goes through the catalog repository bound to the same
// pgx.Tx, so stock decrements use the exact update primitive the catalog's
// own endpoints use, preserving the rows-affected conflict signal.
type TxRepository interface {
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, product catalog.Product) (int64, error)
	InsertSale(ctx context.Context, sale Sale) (Sale, error)
	InsertLine(ctx context.Context, saleID int64, item SaleItem) error
	SaveIdempotencyKey(ctx context.Context, key string) error
}

// Repository persists sales in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type txRepository struct {
	tx       pgx.Tx
	products catalog.Repository
	idem     *shared.IdempotencyStore
}

// WithTx executes the callback inside a repeatable-read transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		wrapper := &txRepository{
			tx:       tx,
			products: catalog.NewRepository(tx),
			idem:     shared.NewIdempotencyStore(tx),
		}
		return fn(ctx, wrapper)
	})
	return translateConflict(err)
}

// translateConflict maps a serialization failure onto the stock conflict
// sentinel. Under repeatable read, Postgres reports a lost-update race as
// SQLSTATE 40001 on the losing UPDATE or commit, never as a zero
// rows-affected count.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "40001" {
		return fmt.Errorf("%s: %w", pgErr.Message, shared.ErrStockUpdateConflict)
	}
	return err
}

const saleColumns = `id, quantity, total, is_cash, created_at`

// List returns every sale, optionally with line items attached. The read
// runs inside its own transaction purely for a consistent snapshot across
// the header and line fetches.
func (r *Repository) List(ctx context.Context, includeLines bool) ([]Sale, error) {
	var sales []Sale
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY id ASC`)
		if err != nil {
			return err
		}
		sales, err = scanSales(rows)
		if err != nil {
			return err
		}
		if !includeLines {
			return nil
		}
		for i := range sales {
			lines, err := fetchLines(ctx, tx, sales[i].ID)
			if err != nil {
				return err
			}
			sales[i].Lines = lines
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByID returns one sale, optionally with line items attached.
func (r *Repository) FindByID(ctx context.Context, id int64, includeLines bool) (Sale, error) {
	var sale Sale
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).
			Scan(&sale.ID, &sale.Quantity, &sale.Total, &sale.IsCash, &sale.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shared.ErrSaleNotFound
			}
			return err
		}
		if !includeLines {
			return nil
		}
		sale.Lines, err = fetchLines(ctx, tx, sale.ID)
		return err
	})
	if err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// DeleteByID removes a sale header and, through the cascade, its line rows.
// Deleting a sale does not restore stock.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *txRepository) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	return r.products.FindByID(ctx, id)
}

func (r *txRepository) UpdateProduct(ctx context.Context, id int64, product catalog.Product) (int64, error) {
	return r.products.UpdateByID(ctx, id, product)
}

func (r *txRepository) InsertSale(ctx context.Context, sale Sale) (Sale, error) {
	now := time.Now()
	err := r.tx.QueryRow(ctx, `INSERT INTO sales (quantity, total, is_cash, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sale.Quantity, sale.Total, sale.IsCash, now).Scan(&sale.ID)
	if err != nil {
		return Sale{}, err
	}
	sale.CreatedAt = now
	return sale, nil
}

func (r *txRepository) InsertLine(ctx context.Context, saleID int64, item SaleItem) error {
	_, err := r.tx.Exec(ctx, `INSERT INTO sale_products (sale_id, product_id, quantity) VALUES ($1, $2, $3)`,
		saleID, item.ProductID, item.Quantity)
	return err
}

func (r *txRepository) SaveIdempotencyKey(ctx context.Context, key string) error {
	return r.idem.CheckAndInsert(ctx, key, "sales")
}

func fetchLines(ctx context.Context, tx pgx.Tx, saleID int64) ([]LineItem, error) {
	rows, err := tx.Query(ctx, `SELECT sp.product_id, p.barcode, p.name, p.sale_price, sp.quantity
FROM sale_products sp
JOIN products p ON p.id = sp.product_id
WHERE sp.sale_id = $1
ORDER BY sp.product_id ASC`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	lines := []LineItem{}
	for rows.Next() {
		var line LineItem
		if err := rows.Scan(&line.ProductID, &line.Barcode, &line.Name, &line.SalePrice, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanSales(rows pgx.Rows) ([]Sale, error) {
	defer rows.Close()
	sales := []Sale{}
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.ID, &s.Quantity, &s.Total, &s.IsCash, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
