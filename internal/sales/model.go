package sales

import "time"

// Sale is the header of a committed sale. Quantity counts distinct product
// lines, not the sum of units. Total is computed from the products' sale
// prices at the moment of sale and is immutable afterwards.
type Sale struct {
	ID        int64
	Quantity  int64
	Total     int64
	IsCash    bool
	CreatedAt time.Time

	// Lines is populated only when the caller asks for eager loading.
	Lines []LineItem
}

// LineItem is one product's participation in a sale, already stripped of
// join-table metadata. Quantity is the number of units sold on this line.
type LineItem struct {
	ProductID int64  `json:"productId"`
	Barcode   string `json:"barcode"`
	Name      string `json:"name"`
	SalePrice int64  `json:"salePrice"`
	Quantity  int64  `json:"quantity"`
}

// SaleItem is one requested line of a sale-creation attempt.
type SaleItem struct {
	ProductID int64
	Quantity  int64
}
