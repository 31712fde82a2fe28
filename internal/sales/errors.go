package sales

import (
	"errors"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

func failureReason(err error) string {
	switch {
	case errors.Is(err, shared.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, shared.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, shared.ErrStockUpdateConflict):
		return "stock_conflict"
	case errors.Is(err, shared.ErrIdempotencyConflict):
		return "duplicate_request"
	case errors.Is(err, shared.ErrValidation):
		return "validation"
	default:
		return "storage"
	}
}
