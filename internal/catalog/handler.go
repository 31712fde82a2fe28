package catalog

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bodega-pos/bodega-pos/internal/platform/httpx"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid product fields", err.Error())
		return
	}

	product, err := h.service.Create(r.Context(), form.toModel())
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product created", product)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "products found", products)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid product id", "")
		return
	}
	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product found", product)
}

func (h *Handler) ShowByBarcode(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetByBarcode(r.Context(), chi.URLParam(r, "barcode"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product found", products)
}

func (h *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.SearchByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "products found", products)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid product id", "")
		return
	}

	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid product fields", err.Error())
		return
	}

	product, err := h.service.Update(r.Context(), id, form.toModel())
	if err != nil {
		h.logger.Error("update product", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product updated", product)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid product id", "")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product deleted", nil)
}

func (h *Handler) DeleteByBarcode(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByBarcode(r.Context(), chi.URLParam(r, "barcode")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "product deleted", nil)
}
