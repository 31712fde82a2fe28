package reports

import "time"

// Summary aggregates sales over a period.
type Summary struct {
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	SaleCount  int64          `json:"saleCount"`
	GrossTotal int64          `json:"grossTotal"`
	CashTotal  int64          `json:"cashTotal"`
	OtherTotal int64          `json:"otherTotal"`
	TopLines   []ProductUnits `json:"topProducts"`
}

// ProductUnits reports units sold per product within the period.
type ProductUnits struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Units     int64  `json:"units"`
}
