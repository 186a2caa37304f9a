package gateway

import (
	"context"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/query"
)

const (
	productsPath   = "/products"
	categoriesPath = "/product-categories"

	// slugPageSize is the internal window for slug enumeration. The loop stops
	// at the first short page.
	slugPageSize = 100
)

// CatalogService implements catalog.Service on top of the cached HTTP client.
type CatalogService struct {
	client   *Client
	locales  []string
	pageSize int
}

var _ catalog.Service = (*CatalogService)(nil)

// CatalogOption configures the catalog gateway.
type CatalogOption func(*CatalogService)

// WithPageSize overrides the listing window applied when a request leaves
// PageSize unset.
func WithPageSize(n int) CatalogOption {
	return func(s *CatalogService) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// NewCatalogService builds the catalog gateway. locales is the configured
// locale set in order; it bounds query validation and slug enumeration.
func NewCatalogService(client *Client, locales []string, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{client: client, locales: locales, pageSize: query.DefaultPageSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns one page of products matching the request filters.
// PageSize falls back to the configured listing window when unset.
func (s *CatalogService) ListProducts(ctx context.Context, req catalog.ListProductsRequest) (*catalog.ProductList, error) {
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	q := query.ProductList(req.Locale, query.ProductListParams{
		Category: req.Category,
		Featured: req.Featured,
		Page:     req.Page,
		PageSize: pageSize,
	})
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, productsPath, q, req.Revalidate)
	if err != nil {
		return nil, err
	}

	items, meta, err := decodeList[*catalog.Product](productsPath, body)
	if err != nil {
		return nil, err
	}

	return &catalog.ProductList{
		Items:      items,
		Pagination: toPagination(meta, q.Pagination.Page, q.Pagination.PageSize, len(items)),
	}, nil
}

// GetProductBySlug resolves a single product within one locale. The content
// service answers slug lookups with a filtered listing; zero rows means the
// slug does not exist in that locale.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug, locale string) (*catalog.Product, error) {
	q := query.ProductBySlug(slug, locale)
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, productsPath, q, 0)
	if err != nil {
		return nil, err
	}

	items, _, err := decodeList[*catalog.Product](productsPath, body)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &catalog.NotFoundError{Resource: "product", Key: slug, Locale: locale}
	}
	return items[0], nil
}

// ListCategories returns every category for a locale in display order.
func (s *CatalogService) ListCategories(ctx context.Context, locale string) ([]*catalog.ProductCategory, error) {
	q := query.CategoryList(locale)
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, categoriesPath, q, 0)
	if err != nil {
		return nil, err
	}

	items, _, err := decodeList[*catalog.ProductCategory](categoriesPath, body)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AllSlugs enumerates slugs across every configured locale, paging until the
// content service returns a short or empty page.
func (s *CatalogService) AllSlugs(ctx context.Context) ([]catalog.SlugRef, error) {
	var refs []catalog.SlugRef
	for _, locale := range s.locales {
		for page := 1; ; page++ {
			q := query.ProductSlugs(locale, page, slugPageSize)
			body, err := s.client.fetch(ctx, productsPath, q, 0)
			if err != nil {
				return nil, err
			}

			items, _, err := decodeList[*catalog.Product](productsPath, body)
			if err != nil {
				return nil, err
			}

			for _, item := range items {
				if item == nil || item.Slug == "" {
					continue
				}
				refs = append(refs, catalog.SlugRef{Slug: item.Slug, Locale: locale})
			}

			if len(items) < slugPageSize {
				break
			}
		}
	}
	return refs, nil
}
