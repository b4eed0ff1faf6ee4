package repository

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productColumns is the select list shared by every product query. The
// price is fetched as text so it can be decoded into an exact decimal
// without passing through binary floating point.
const productColumns = `id, name, description, price::text, available, category`

// productRepository implements ProductRepository against PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product. The store assigns the identifier, which
// is written back into the entity on success.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, price, available, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Available,
		product.Category.String(),
	).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Stringer("product", product).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Stringer("product", product).Msg("created product")
	return nil
}

// Update persists the product's in-memory field values against its
// existing row. A product that has never been persisted is a caller
// error, rejected before the store is touched.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	if product.ID == uuid.Nil {
		return model.NewDataValidationError("update called with empty id field")
	}

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, available = $4, category = $5
		WHERE id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price.String(),
		product.Available,
		product.Category.String(),
		product.ID,
	)
	if err != nil {
		r.logger.Error().Err(err).Stringer("product", product).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Stringer("product", product).Msg("update matched no rows")
	}
	return nil
}

// Delete removes the product's row. Deleting an already-absent row is
// treated as a no-op; the entity keeps its ID so callers can still log
// or inspect the orphaned value.
func (r *productRepository) Delete(ctx context.Context, product *model.Product) error {
	query := `DELETE FROM products WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, product.ID)
	if err != nil {
		r.logger.Error().Err(err).Stringer("product", product).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Debug().Stringer("product", product).Msg("deleted product")
	return nil
}

// All retrieves every persisted product.
func (r *productRepository) All(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Find retrieves a single product by ID, returning (nil, nil) when no
// product matches.
func (r *productRepository) Find(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Stringer("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Stringer("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// FindByName returns a lazy query over products with exactly this name.
func (r *productRepository) FindByName(name string) ProductQuery {
	return r.where("name = $1", name)
}

// FindByAvailability returns a lazy query over products with the given
// availability.
func (r *productRepository) FindByAvailability(available bool) ProductQuery {
	return r.where("available = $1", available)
}

// FindByCategory returns a lazy query over products in the given
// category.
func (r *productRepository) FindByCategory(category model.Category) ProductQuery {
	return r.where("category = $1", category.String())
}

// FindByPrice returns a lazy query over products whose price equals the
// given value exactly. The value is normalised to an exact decimal
// before comparison, so "19.99" and the decimal 19.99 describe the same
// query. A value that cannot be normalised poisons the query and the
// validation error surfaces on evaluation.
func (r *productRepository) FindByPrice(price any) ProductQuery {
	normalised, err := model.ParsePrice(price)
	if err != nil {
		return &productQuery{err: err}
	}
	return r.where("price = $1", normalised.String())
}

func (r *productRepository) where(condition string, args ...any) ProductQuery {
	return &productQuery{
		pool:      r.pool,
		logger:    r.logger,
		condition: condition,
		args:      args,
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct decodes one product row. The price and category columns
// arrive as text and are decoded into their exact in-memory forms; a
// row that fails to decode indicates store corruption and is reported
// as a store error, not a validation error.
func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p        model.Product
		price    string
		category string
	)

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Available, &category); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored price %q: %w", price, err)
	}
	p.Price = d

	c, err := model.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored category %q", category)
	}
	p.Category = c

	return &p, nil
}

// scanProducts drains a row set into a slice of products.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
