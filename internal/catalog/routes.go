package catalog

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers catalog routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/find/all", h.List)
	r.Get("/find/id/{id}", h.Show)
	r.Get("/find/barcode/{barcode}", h.ShowByBarcode)
	r.Get("/find/name/{name}", h.SearchByName)
	r.Put("/update/id/{id}", h.Update)
	r.Delete("/delete/id/{id}", h.Delete)
	r.Delete("/delete/barcode/{barcode}", h.DeleteByBarcode)
}
