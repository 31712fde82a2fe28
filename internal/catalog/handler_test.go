package catalog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-pos/bodega-pos/internal/platform/httpx"
)

func newTestServer(t *testing.T, repo Repository) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/api/product", handler.MountRoutes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestProductCreateEndpoint(t *testing.T) {
	server := newTestServer(t, newMemoryRepo())

	resp := postJSON(t, server.URL+"/api/product/create",
		`{"barcode":"123","name":"gum","stock":10,"costPrice":5,"salePrice":10}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env httpx.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	_ = resp.Body.Close()
	require.True(t, env.Success)

	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var product Product
	require.NoError(t, json.Unmarshal(data, &product))
	assert.Equal(t, "123", product.Barcode)
	assert.NotZero(t, product.ID)

	// Second create with the same barcode conflicts.
	resp = postJSON(t, server.URL+"/api/product/create",
		`{"barcode":"123","name":"other","stock":1,"costPrice":1,"salePrice":2}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	env = httpx.Envelope{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	_ = resp.Body.Close()
	require.False(t, env.Success)
	assert.Equal(t, "DuplicateKey", env.Error.Name)
}

func TestProductCreateEndpointValidation(t *testing.T) {
	server := newTestServer(t, newMemoryRepo())

	cases := []struct {
		name string
		body string
	}{
		{"missing barcode", `{"name":"gum","stock":1}`},
		{"missing name", `{"barcode":"123","stock":1}`},
		{"negative stock", `{"barcode":"123","name":"gum","stock":-1}`},
		{"malformed json", `{"barcode":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/product/create", tc.body)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestProductFindEndpoints(t *testing.T) {
	repo := newMemoryRepo()
	server := newTestServer(t, repo)

	resp := postJSON(t, server.URL+"/api/product/create",
		`{"barcode":"123","name":"chewing gum","stock":10,"costPrice":5,"salePrice":10}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	for _, path := range []string{
		"/api/product/find/all",
		"/api/product/find/id/1",
		"/api/product/find/barcode/123",
		"/api/product/find/name/chew",
	} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		_ = resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/api/product/find/id/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestProductUpdateAndDeleteEndpoints(t *testing.T) {
	repo := newMemoryRepo()
	server := newTestServer(t, repo)
	client := server.Client()

	resp := postJSON(t, server.URL+"/api/product/create",
		`{"barcode":"123","name":"gum","stock":10,"costPrice":5,"salePrice":10}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/product/update/id/1",
		bytes.NewBufferString(`{"barcode":"123","name":"mint gum","stock":8,"costPrice":5,"salePrice":12}`))
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/product/delete/id/1", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/product/delete/id/1", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}
