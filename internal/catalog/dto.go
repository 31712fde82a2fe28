package catalog

// ProductForm is the request body for create and update.
type ProductForm struct {
	Barcode   string `json:"barcode" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Stock     int64  `json:"stock" validate:"gte=0"`
	CostPrice int64  `json:"costPrice" validate:"gte=0"`
	SalePrice int64  `json:"salePrice" validate:"gte=0"`
}

func (f ProductForm) toModel() Product {
	return Product{
		Barcode:   f.Barcode,
		Name:      f.Name,
		Stock:     f.Stock,
		CostPrice: f.CostPrice,
		SalePrice: f.SalePrice,
	}
}
