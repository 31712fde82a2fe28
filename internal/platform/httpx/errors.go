package httpx

import (
	"errors"
	"net/http"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// RespondError maps domain errors to envelope responses. Unknown errors are
// reported as storage failures without leaking internals to the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrProductNotFound):
		Fail(w, http.StatusNotFound, "NotFound", shared.ErrProductNotFound.Error(), causeOf(err, shared.ErrProductNotFound))
	case errors.Is(err, shared.ErrSaleNotFound):
		Fail(w, http.StatusNotFound, "NotFound", shared.ErrSaleNotFound.Error(), causeOf(err, shared.ErrSaleNotFound))
	case errors.Is(err, shared.ErrDuplicateBarcode):
		Fail(w, http.StatusConflict, "DuplicateKey", shared.ErrDuplicateBarcode.Error(), causeOf(err, shared.ErrDuplicateBarcode))
	case errors.Is(err, shared.ErrValidation):
		Fail(w, http.StatusBadRequest, "ValidationError", err.Error(), "")
	case errors.Is(err, shared.ErrInsufficientStock):
		Fail(w, http.StatusConflict, "InsufficientStock", shared.ErrInsufficientStock.Error(), causeOf(err, shared.ErrInsufficientStock))
	case errors.Is(err, shared.ErrStockUpdateConflict):
		Fail(w, http.StatusConflict, "StockUpdateConflict", shared.ErrStockUpdateConflict.Error(), causeOf(err, shared.ErrStockUpdateConflict))
	case errors.Is(err, shared.ErrIdempotencyConflict):
		Fail(w, http.StatusConflict, "DuplicateRequest", shared.ErrIdempotencyConflict.Error(), "")
	default:
		Fail(w, http.StatusInternalServerError, "StorageFailure", "internal error", "")
	}
}

// causeOf surfaces the wrapping context around a sentinel, if any.
func causeOf(err, sentinel error) string {
	if err.Error() == sentinel.Error() {
		return ""
	}
	return err.Error()
}
