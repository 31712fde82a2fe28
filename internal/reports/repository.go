package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bodega-pos/bodega-pos/internal/platform/db"
)

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	Summarize(ctx context.Context, from, to time.Time) (Summary, error)
}

// Repository reads sale aggregates from PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Summarize aggregates sales within [from, to]. Both queries run inside one
// transaction so the header totals and the per-product units agree.
func (r *Repository) Summarize(ctx context.Context, from, to time.Time) (Summary, error) {
	summary := Summary{From: from, To: to}
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT COUNT(*),
	COALESCE(SUM(total), 0),
	COALESCE(SUM(total) FILTER (WHERE is_cash), 0),
	COALESCE(SUM(total) FILTER (WHERE NOT is_cash), 0)
FROM sales WHERE created_at BETWEEN $1 AND $2`, from, to).
			Scan(&summary.SaleCount, &summary.GrossTotal, &summary.CashTotal, &summary.OtherTotal)
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `SELECT sp.product_id, p.name, SUM(sp.quantity) AS units
FROM sale_products sp
JOIN sales s ON s.id = sp.sale_id
JOIN products p ON p.id = sp.product_id
WHERE s.created_at BETWEEN $1 AND $2
GROUP BY sp.product_id, p.name
ORDER BY units DESC, sp.product_id ASC
LIMIT 20`, from, to)
		if err != nil {
			return err
		}
		defer rows.Close()
		summary.TopLines = []ProductUnits{}
		for rows.Next() {
			var line ProductUnits
			if err := rows.Scan(&line.ProductID, &line.Name, &line.Units); err != nil {
				return err
			}
			summary.TopLines = append(summary.TopLines, line)
		}
		return rows.Err()
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
