package catalog

import (
	"fmt"
	"strings"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

func validate(p Product) error {
	if strings.TrimSpace(p.Barcode) == "" {
		return fmt.Errorf("%w: barcode is required", shared.ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", shared.ErrValidation)
	}
	if p.CostPrice < 0 || p.SalePrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", shared.ErrValidation)
	}
	return nil
}
