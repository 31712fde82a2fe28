package reports

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bodega-pos/bodega-pos/internal/platform/httpx"
)

// Handler exposes reports over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDate(r.URL.Query().Get("from"))
	if !ok {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "from must be YYYY-MM-DD or RFC3339", "")
		return
	}
	to, ok := parseDate(r.URL.Query().Get("to"))
	if !ok {
		httpx.Fail(w, http.StatusBadRequest, "ValidationError", "to must be YYYY-MM-DD or RFC3339", "")
		return
	}

	summary, err := h.service.Summary(r.Context(), from, to)
	if err != nil {
		h.logger.Error("sales summary", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.OK(w, "summary computed", summary)
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
