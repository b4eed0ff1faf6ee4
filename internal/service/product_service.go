package service

import (
	"context"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Create deserializes the payload into a fresh product and persists it.
// Validation failures pass through as *model.DataValidationError; store
// failures are wrapped and propagate unmodified in kind.
func (s *productService) Create(ctx context.Context, payload any) (*model.Product, error) {
	var product model.Product
	if err := product.Deserialize(payload); err != nil {
		s.logger.Warn().Err(err).Msg("rejected invalid product payload")
		return nil, err
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Stringer("product", &product).Msg("created product")
	return &product, nil
}

// Get retrieves a single product, with absence modelled as (nil, nil).
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Update loads the existing product, overwrites its fields from the
// payload and persists it under the same ID.
func (s *productService) Update(ctx context.Context, id uuid.UUID, payload any) (*model.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Stringer("product_id", id).Msg("product not found for update")
		return nil, nil
	}

	if err := product.Deserialize(payload); err != nil {
		s.logger.Warn().Err(err).Stringer("product_id", id).Msg("rejected invalid product payload")
		return nil, err
	}
	product.ID = id

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Stringer("product", product).Msg("updated product")
	return product, nil
}

// Delete removes the product with the given ID if it exists.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product := model.Product{ID: id}
	if err := s.repo.Delete(ctx, &product); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Stringer("product_id", id).Msg("deleted product")
	return nil
}

// List dispatches to the repository's typed query surface based on
// which filter argument is present. Filter values that cannot be
// decoded fail with *model.DataValidationError.
func (s *productService) List(ctx context.Context, filter ListFilter) ([]model.Product, error) {
	switch {
	case filter.Name != "":
		return s.evaluate(ctx, s.repo.FindByName(filter.Name))

	case filter.Category != "":
		category, err := model.ParseCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		return s.evaluate(ctx, s.repo.FindByCategory(category))

	case filter.Available != "":
		available, err := parseAvailable(filter.Available)
		if err != nil {
			return nil, err
		}
		return s.evaluate(ctx, s.repo.FindByAvailability(available))

	case filter.Price != "":
		return s.evaluate(ctx, s.repo.FindByPrice(filter.Price))

	default:
		products, err := s.repo.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		return products, nil
	}
}

func (s *productService) evaluate(ctx context.Context, query repository.ProductQuery) ([]model.Product, error) {
	products, err := query.All(ctx)
	if err != nil {
		if model.IsDataValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}

// parseAvailable decodes the availability filter argument. Only the
// literal strings "true" and "false" are genuine booleans on this
// surface.
func parseAvailable(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, model.NewDataValidationError("invalid type for boolean [available]: %q", value)
	}
}
