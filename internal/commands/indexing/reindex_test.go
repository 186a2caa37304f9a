package indexing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/searchindex"
)

// stubCatalog serves a fixed product set per locale, paged like the real
// gateway.
type stubCatalog struct {
	products map[string][]*catalog.Product
	requests []catalog.ListProductsRequest
	err      error
}

func (s *stubCatalog) ListProducts(ctx context.Context, req catalog.ListProductsRequest) (*catalog.ProductList, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}

	all := s.products[req.Locale]
	start := (req.Page - 1) * req.PageSize
	end := start + req.PageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	return &catalog.ProductList{
		Items: all[start:end],
		Pagination: catalog.Pagination{
			Page:      req.Page,
			PageSize:  req.PageSize,
			PageCount: catalog.PageCountFor(len(all), req.PageSize),
			Total:     len(all),
		},
	}, nil
}

func (s *stubCatalog) GetProductBySlug(ctx context.Context, slug, locale string) (*catalog.Product, error) {
	return nil, &catalog.NotFoundError{Resource: "product", Key: slug, Locale: locale}
}

func (s *stubCatalog) ListCategories(ctx context.Context, locale string) ([]*catalog.ProductCategory, error) {
	return nil, nil
}

func (s *stubCatalog) AllSlugs(ctx context.Context) ([]catalog.SlugRef, error) {
	return nil, nil
}

type stubAdmin struct {
	settings *searchindex.Settings
	batches  [][]searchindex.Document
	deleted  [][]int
	err      error
}

func (s *stubAdmin) EnsureIndex(ctx context.Context, settings searchindex.Settings) error {
	s.settings = &settings
	return s.err
}

func (s *stubAdmin) AddDocuments(ctx context.Context, docs []searchindex.Document) error {
	s.batches = append(s.batches, docs)
	return nil
}

func (s *stubAdmin) DeleteDocuments(ctx context.Context, ids []int) error {
	s.deleted = append(s.deleted, ids)
	return nil
}

func fixtureProducts(locale string, count int) []*catalog.Product {
	products := make([]*catalog.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, &catalog.Product{
			ID:     i,
			Name:   fmt.Sprintf("Product %d", i),
			Slug:   fmt.Sprintf("product-%d", i),
			Locale: locale,
		})
	}
	return products
}

func TestReindexStreamsEveryLocale(t *testing.T) {
	cat := &stubCatalog{products: map[string][]*catalog.Product{
		"en": fixtureProducts("en", 5),
		"ja": fixtureProducts("ja", 2),
	}}
	admin := &stubAdmin{}

	h := NewReindexHandler(cat, admin, logging.NoOp())

	err := h.Execute(context.Background(), ReindexCommand{
		Locales:  []string{"en", "ja"},
		PageSize: 3,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if admin.settings == nil || admin.settings.IndexName != searchindex.DefaultIndexName {
		t.Fatalf("expected index provisioned first, got %+v", admin.settings)
	}

	total := 0
	for _, batch := range admin.batches {
		total += len(batch)
	}
	if total != 7 {
		t.Fatalf("expected 7 documents indexed, got %d", total)
	}

	// en pages twice at size 3, ja once.
	if len(cat.requests) != 3 {
		t.Fatalf("expected 3 catalog pages, got %d", len(cat.requests))
	}
	for _, req := range cat.requests {
		if req.Revalidate >= 0 {
			t.Errorf("expected cache bypass on rebuild reads, got %v", req.Revalidate)
		}
	}
}

func TestReindexRequiresLocales(t *testing.T) {
	h := NewReindexHandler(&stubCatalog{}, &stubAdmin{}, logging.NoOp())

	err := h.Execute(context.Background(), ReindexCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestReindexSurfacesCatalogFailure(t *testing.T) {
	cat := &stubCatalog{err: &catalog.UnavailableError{Status: 502}}
	h := NewReindexHandler(cat, &stubAdmin{}, logging.NoOp())

	err := h.Execute(context.Background(), ReindexCommand{Locales: []string{"en"}})
	if err == nil {
		t.Fatal("expected failure")
	}
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("expected unavailable cause, got %v", err)
	}
}

type stubInvalidator struct {
	calls int
	err   error
}

func (s *stubInvalidator) InvalidateAll(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestInvalidateContent(t *testing.T) {
	inv := &stubInvalidator{}
	h := NewInvalidateContentHandler(inv, logging.NoOp())

	if err := h.Execute(context.Background(), InvalidateContentCommand{Reason: "publish"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if inv.calls != 1 {
		t.Fatalf("expected one invalidation, got %d", inv.calls)
	}

	err := h.Execute(context.Background(), InvalidateContentCommand{})
	if err == nil {
		t.Fatal("expected validation error for missing reason")
	}
	if inv.calls != 1 {
		t.Fatalf("expected no invalidation on invalid message, got %d", inv.calls)
	}
}

// Keep the interface assertion close to the stubs so contract drift fails here.
var (
	_ catalog.Service = (*stubCatalog)(nil)
	_ search.Admin    = (*stubAdmin)(nil)
)
