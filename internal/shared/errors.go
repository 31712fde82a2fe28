package shared

import "errors"

var (
	// ErrProductNotFound indicates a missing product row.
	ErrProductNotFound = errors.New("product not found")
	// ErrSaleNotFound indicates a missing sale row.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrDuplicateBarcode occurs when a write violates the unique barcode constraint.
	ErrDuplicateBarcode = errors.New("barcode already registered")
	// ErrValidation indicates a malformed request shape.
	ErrValidation = errors.New("validation failed")
	// ErrInsufficientStock occurs when a sale requests more units than available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockUpdateConflict occurs when a stock update affected zero rows,
	// meaning the row was modified out from under the transaction.
	ErrStockUpdateConflict = errors.New("stock update conflict")
)
