package sales

import "time"

// CreateSaleRequest is the body of POST /api/sale/create.
type CreateSaleRequest struct {
	Products []SaleItemRequest `json:"products" validate:"required,min=1,dive"`
	IsCash   bool              `json:"isCash"`
}

// SaleItemRequest is one requested line.
type SaleItemRequest struct {
	ID       int64 `json:"id" validate:"required,gt=0"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// FindSaleRequest is the optional body of GET /api/sale/find/id/{id}.
type FindSaleRequest struct {
	WithProducts bool `json:"withProducts"`
}

// SaleResponse is the outward-facing shape of a sale. CreatedAt is rendered
// as ISO-8601 with no trailing zone designator.
type SaleResponse struct {
	ID        int64      `json:"id"`
	Quantity  int64      `json:"quantity"`
	Total     int64      `json:"total"`
	IsCash    bool       `json:"isCash"`
	CreatedAt string     `json:"createdAt"`
	Products  []LineItem `json:"products,omitempty"`
}

const timestampLayout = "2006-01-02T15:04:05.000"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func toResponse(s Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		Quantity:  s.Quantity,
		Total:     s.Total,
		IsCash:    s.IsCash,
		CreatedAt: formatTimestamp(s.CreatedAt),
		Products:  s.Lines,
	}
}

func toResponses(sales []Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, toResponse(s))
	}
	return responses
}

func (r CreateSaleRequest) items() []SaleItem {
	items := make([]SaleItem, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, SaleItem{ProductID: p.ID, Quantity: p.Quantity})
	}
	return items
}
