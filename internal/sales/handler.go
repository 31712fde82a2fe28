package sales

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bodega-pos/bodega-pos/internal/platform/httpx"
)

// Handler exposes sales over HTTP.
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
	var req CreateSaleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid sale items", err.Error())
		return
	}

	sale, err := h.service.CreateSale(r.Context(), req.items(), req.IsCash, r.Header.Get("Idempotency-Key"))
	if err != nil {
		h.logger.Error("create sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "sale created", toResponse(sale))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	withProducts := chi.URLParam(r, "withProducts")
	if withProducts != "0" && withProducts != "1" {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", `withProducts must be "0" or "1"`, "")
		return
	}

	salesList, err := h.service.FindSales(r.Context(), withProducts == "1")
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "sales found", toResponses(salesList))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid sale id", "")
		return
	}

	// The body is optional; absence means header only.
	var req FindSaleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil && err != io.EOF {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid request body", err.Error())
		return
	}

	sale, err := h.service.FindSaleByID(r.Context(), id, req.WithProducts)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "sale found", toResponse(sale))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "invalid sale id", "")
		return
	}
	if err := h.service.DeleteSale(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "sale deleted", nil)
}
