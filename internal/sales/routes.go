package sales

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers sale routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/find/all/{withProducts}", h.List)
	r.Get("/find/id/{id}", h.Show)
	r.Delete("/delete/id/{id}", h.Delete)
}
