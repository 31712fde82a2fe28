package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// MetricsPort abstracts the sale counters so tests can run without a registry.
type MetricsPort interface {
	SaleCreated()
	SaleFailed(reason string)
}

// Service coordinates sale creation and the query surface around the store.
type Service struct {
	repo    RepositoryPort
	metrics MetricsPort
}

// NewService builds Service. metrics may be nil.
func NewService(repo RepositoryPort, metrics MetricsPort) *Service {
	return &Service{repo: repo, metrics: metrics}
}

// CreateSale atomically validates stock, decrements it, computes the total
// and persists the sale header plus one line row per item. Items are
// processed in the order given; that order determines row-lock acquisition
// and must not be changed. Any failure rolls back the whole attempt, so no
// partial decrement or partial sale is ever observable.
//
// idemKey, when non-empty, must be a UUID; the key row is written inside the
// same transaction, so a rolled-back attempt releases it and a retry is
// equivalent to a fresh attempt.
func (s *Service) CreateSale(ctx context.Context, items []SaleItem, isCash bool, idemKey string) (Sale, error) {
	if idemKey != "" {
		if _, err := uuid.Parse(idemKey); err != nil {
			err = fmt.Errorf("%w: idempotency key must be a UUID", shared.ErrValidation)
			s.countFailure(err)
			return Sale{}, err
		}
	}

	// sale_products keys on (sale_id, product_id), so a product may appear
	// on one line only. Reject repeats before any stock moves.
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ProductID]; dup {
			err := fmt.Errorf("%w: product %d listed more than once", shared.ErrValidation, item.ProductID)
			s.countFailure(err)
			return Sale{}, err
		}
		seen[item.ProductID] = struct{}{}
	}

	var sale Sale
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		if idemKey != "" {
			if err := tx.SaveIdempotencyKey(ctx, idemKey); err != nil {
				return err
			}
		}

		var total int64
		for _, item := range items {
			product, err := tx.GetProduct(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("fetch product %d: %w", item.ProductID, err)
			}

			newStock := product.Stock - item.Quantity
			if newStock < 0 {
				return fmt.Errorf("product %d has %d units, %d requested: %w",
					product.ID, product.Stock, item.Quantity, shared.ErrInsufficientStock)
			}

			product.Stock = newStock
			affected, err := tx.UpdateProduct(ctx, product.ID, product)
			if err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", product.ID, err)
			}
			if affected == 0 {
				// The row was modified out from under this transaction.
				// Under repeatable read the driver usually errors first,
				// but keep the check for weaker isolation levels.
				return fmt.Errorf("product %d: %w", product.ID, shared.ErrStockUpdateConflict)
			}

			total += product.SalePrice * item.Quantity
		}

		created, err := tx.InsertSale(ctx, Sale{
			Quantity: int64(len(items)),
			Total:    total,
			IsCash:   isCash,
		})
		if err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		for _, item := range items {
			if err := tx.InsertLine(ctx, created.ID, item); err != nil {
				return fmt.Errorf("insert sale line for product %d: %w", item.ProductID, err)
			}
		}

		sale = created
		return nil
	})
	if err != nil {
		s.countFailure(err)
		return Sale{}, err
	}
	if s.metrics != nil {
		s.metrics.SaleCreated()
	}
	return sale, nil
}

// FindSales lists sales, optionally with eagerly loaded line items.
func (s *Service) FindSales(ctx context.Context, includeLines bool) ([]Sale, error) {
	return s.repo.List(ctx, includeLines)
}

// FindSaleByID returns one sale or shared.ErrSaleNotFound.
func (s *Service) FindSaleByID(ctx context.Context, id int64, includeLines bool) (Sale, error) {
	if id <= 0 {
		return Sale{}, fmt.Errorf("%w: invalid sale id", shared.ErrValidation)
	}
	return s.repo.FindByID(ctx, id, includeLines)
}

// DeleteSale removes a sale header. Stock is not restored; correction logic
// is out of scope.
func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid sale id", shared.ErrValidation)
	}
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if affected == 0 {
		return shared.ErrSaleNotFound
	}
	return nil
}

func (s *Service) countFailure(err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.SaleFailed(failureReason(err))
}
