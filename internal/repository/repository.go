package repository

import (
	"context"

	"product-catalog/internal/model"

	"github.com/google/uuid"
)

// ProductRepository bridges Product entities to durable storage. Every
// mutation commits before returning; store failures propagate as
// wrapped store errors while precondition violations are reported as
// *model.DataValidationError.
type ProductRepository interface {
	// Create inserts a new product and populates its store-assigned ID.
	Create(ctx context.Context, product *model.Product) error

	// Update persists the product's current field values against the
	// existing row with matching ID. Fails with a validation error if
	// the product has never been persisted.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes the row matching the product's ID. Deleting an
	// absent row is not an error; the product's ID is left intact.
	Delete(ctx context.Context, product *model.Product) error

	// All returns every persisted product in store order.
	All(ctx context.Context) ([]model.Product, error)

	// Find returns the product with the given ID, or (nil, nil) when
	// no such product exists.
	Find(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// FindByName returns a lazy query over products whose name exactly
	// equals the argument.
	FindByName(name string) ProductQuery

	// FindByAvailability returns a lazy query over products with the
	// given availability.
	FindByAvailability(available bool) ProductQuery

	// FindByCategory returns a lazy query over products in the given
	// category.
	FindByCategory(category model.Category) ProductQuery

	// FindByPrice returns a lazy query over products whose price
	// exactly equals the argument, which may be a decimal value or a
	// decimal-formatted string.
	FindByPrice(price any) ProductQuery
}
