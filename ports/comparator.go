package ports

import (
	"context"

	"govalue/domain/compare"
)

// ComparatorPort computes the posterior value comparison of two products.
// Implementations must validate all inputs before drawing any samples and
// must not retain state between invocations.
type ComparatorPort interface {
	Compare(ctx context.Context, a, b compare.ProductInput, opts compare.Options) (*compare.ComparisonResult, error)
}
