package service

import (
	"context"

	"product-catalog/internal/model"

	"github.com/google/uuid"
)

// ListFilter carries the raw, optional filter arguments for listing
// products. At most one filter is applied; they are checked in the
// order name, category, availability, price.
type ListFilter struct {
	Name      string
	Category  string
	Available string
	Price     string
}

// ProductService defines operations for managing catalogue products
// from untyped payloads.
type ProductService interface {
	// Create builds a product from the payload and persists it.
	Create(ctx context.Context, payload any) (*model.Product, error)

	// Get retrieves a product by ID, returning (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Update replaces the fields of an existing product with values
	// from the payload. Returns (nil, nil) when no product has that ID.
	Update(ctx context.Context, id uuid.UUID, payload any) (*model.Product, error)

	// Delete removes a product by ID. Removing an absent product is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns products matching the filter, or every product when
	// the filter is empty.
	List(ctx context.Context, filter ListFilter) ([]model.Product, error)
}
