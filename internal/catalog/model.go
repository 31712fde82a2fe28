package catalog

import "time"

// Product is a catalog entry identified by its barcode. Prices are stored in
// the store's local currency unit, without fractional cents.
type Product struct {
	ID        int64     `json:"id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Stock     int64     `json:"stock"`
	CostPrice int64     `json:"costPrice"`
	SalePrice int64     `json:"salePrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
