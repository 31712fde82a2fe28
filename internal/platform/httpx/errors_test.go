package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		name   string
	}{
		{shared.ErrProductNotFound, http.StatusNotFound, "NotFound"},
		{shared.ErrSaleNotFound, http.StatusNotFound, "NotFound"},
		{shared.ErrDuplicateBarcode, http.StatusConflict, "DuplicateKey"},
		{shared.ErrValidation, http.StatusBadRequest, "ValidationError"},
		{shared.ErrInsufficientStock, http.StatusConflict, "InsufficientStock"},
		{shared.ErrStockUpdateConflict, http.StatusConflict, "StockUpdateConflict"},
		{shared.ErrIdempotencyConflict, http.StatusConflict, "DuplicateRequest"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "StorageFailure"},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/"+tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tc.err)

			require.Equal(t, tc.status, rec.Code)
			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.name, env.Error.Name)
		})
	}
}

func TestRespondErrorWrappedCause(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, fmt.Errorf("fetch product 7: %w", shared.ErrProductNotFound))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "NotFound", env.Error.Name)
	assert.Contains(t, env.Error.Cause, "fetch product 7")
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: connection refused at 10.0.0.3"))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.NotContains(t, env.Error.Message, "10.0.0.3")
	assert.Empty(t, env.Error.Cause)
}
