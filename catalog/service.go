package catalog

import (
	"context"
	"time"
)

// Service is the read-only gateway to the content service's catalog types.
// Implementations own caching and response normalization; they never mutate
// content.
type Service interface {
	// ListProducts returns one page of products for a locale. Transport and
	// non-2xx failures surface as ErrUnavailable; callers degrade to an empty
	// list with default pagination.
	ListProducts(ctx context.Context, req ListProductsRequest) (*ProductList, error)

	// GetProductBySlug resolves a product by slug within the given locale
	// only. Zero matches yield ErrNotFound, never an empty product.
	GetProductBySlug(ctx context.Context, slug, locale string) (*Product, error)

	// ListCategories returns every category for a locale in display order.
	ListCategories(ctx context.Context, locale string) ([]*ProductCategory, error)

	// AllSlugs enumerates every locale's slug set, paging internally until
	// the content service returns a short page. The sequence is finite and
	// deterministic: locales in configured order, service order within each.
	AllSlugs(ctx context.Context) ([]SlugRef, error)
}

// ListProductsRequest captures the typed filters for a product listing read.
type ListProductsRequest struct {
	Locale   string
	Category string
	Featured bool
	Page     int
	PageSize int
	// Revalidate overrides the configured cache TTL for this read. Zero keeps
	// the default; negative bypasses the cache.
	Revalidate time.Duration
}
