package repository

import (
	"context"
	"fmt"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ProductQuery is a deferred, restartable description of a filtered
// product fetch. Building one performs no I/O; All and Count execute
// the underlying SELECT each time they are called, so the same query
// can be evaluated repeatedly and always reflects the current store
// contents.
type ProductQuery interface {
	// All executes the query and returns every matching product.
	All(ctx context.Context) ([]model.Product, error)

	// Count executes the query and returns the number of matching
	// products without materialising them.
	Count(ctx context.Context) (int64, error)
}

// productQuery implements ProductQuery against PostgreSQL.
type productQuery struct {
	pool      *pgxpool.Pool
	logger    zerolog.Logger
	condition string
	args      []any

	// err poisons the query when the filter value itself was invalid;
	// it is returned on every evaluation.
	err error
}

func (q *productQuery) All(ctx context.Context) ([]model.Product, error) {
	if q.err != nil {
		return nil, q.err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + q.condition

	rows, err := q.pool.Query(ctx, query, q.args...)
	if err != nil {
		q.logger.Error().Err(err).Str("condition", q.condition).Msg("failed to execute product query")
		return nil, fmt.Errorf("failed to execute product query: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (q *productQuery) Count(ctx context.Context) (int64, error) {
	if q.err != nil {
		return 0, q.err
	}

	query := `SELECT COUNT(*) FROM products WHERE ` + q.condition

	var count int64
	if err := q.pool.QueryRow(ctx, query, q.args...).Scan(&count); err != nil {
		q.logger.Error().Err(err).Str("condition", q.condition).Msg("failed to count product query")
		return 0, fmt.Errorf("failed to count product query: %w", err)
	}

	return count, nil
}
