package catalog

import (
	"context"
	"fmt"

	"github.com/bodega-pos/bodega-pos/internal/shared"
)

// Service coordinates catalog operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := validate(product); err != nil {
		return Product{}, err
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// Update replaces the full record. A zero rows-affected count is treated as
// failure so stale ids surface as not-found instead of silent no-ops.
func (s *Service) Update(ctx context.Context, id int64, product Product) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product id", shared.ErrValidation)
	}
	if err := validate(product); err != nil {
		return Product{}, err
	}
	affected, err := s.repo.UpdateByID(ctx, id, product)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return Product{}, shared.ErrProductNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product id", shared.ErrValidation)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetByBarcode(ctx context.Context, barcode string) ([]Product, error) {
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode required", shared.ErrValidation)
	}
	products, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, shared.ErrProductNotFound
	}
	return products, nil
}

func (s *Service) SearchByName(ctx context.Context, text string) ([]Product, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: search text required", shared.ErrValidation)
	}
	products, err := s.repo.SearchByName(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, shared.ErrProductNotFound
	}
	return products, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product id", shared.ErrValidation)
	}
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return shared.ErrProductNotFound
	}
	return nil
}

func (s *Service) DeleteByBarcode(ctx context.Context, barcode string) error {
	if barcode == "" {
		return fmt.Errorf("%w: barcode required", shared.ErrValidation)
	}
	affected, err := s.repo.DeleteByBarcode(ctx, barcode)
	if err != nil {
		return fmt.Errorf("delete product by barcode: %w", err)
	}
	if affected == 0 {
		return shared.ErrProductNotFound
	}
	return nil
}
