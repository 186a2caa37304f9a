package query_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-storefront/query"
)

func TestProductListEncodesFiltersSortAndPagination(t *testing.T) {
	q := query.ProductList("en", query.ProductListParams{
		Category: "scales",
		Featured: true,
		Page:     2,
		PageSize: 10,
	})

	values := q.Encode()

	cases := map[string]string{
		"locale":                           "en",
		"filters[category][slug][$eq]":     "scales",
		"filters[isFeatured][$eq]":         "true",
		"sort[0]":                          "sortOrder:asc",
		"sort[1]":                          "name:asc",
		"pagination[page]":                 "2",
		"pagination[pageSize]":             "10",
		"populate[category][fields][0]":    "name",
		"populate[category][fields][1]":    "slug",
		"populate[featuredImage][fields][0]": "url",
		"populate[seo][populate]":          "*",
	}
	for key, want := range cases {
		if got := values.Get(key); got != want {
			t.Fatalf("expected %s=%q, got %q", key, want, got)
		}
	}
}

func TestProductListDefaultsToFirstPage(t *testing.T) {
	q := query.ProductList("ja", query.ProductListParams{PageSize: 25})
	if got := q.Encode().Get("pagination[page]"); got != "1" {
		t.Fatalf("expected default page 1, got %q", got)
	}
}

func TestProductListDefaultsPageSize(t *testing.T) {
	q := query.ProductList("en", query.ProductListParams{})
	if got := q.Encode().Get("pagination[pageSize]"); got != "25" {
		t.Fatalf("expected default pageSize 25, got %q", got)
	}
	if err := q.Validate("en", "ja"); err != nil {
		t.Fatalf("expected defaulted listing to validate, got %v", err)
	}
}

func TestProductBySlugEncodesNestedPopulate(t *testing.T) {
	values := query.ProductBySlug("bench-scale-bx", "en").Encode()

	if got := values.Get("filters[slug][$eq]"); got != "bench-scale-bx" {
		t.Fatalf("expected slug filter, got %q", got)
	}
	if got := values.Get("populate[documents][populate][file][fields][0]"); got != "url" {
		t.Fatalf("expected nested document populate, got %q", got)
	}
	if got := values.Get("populate[specifications]"); got != "true" {
		t.Fatalf("expected bare specifications populate, got %q", got)
	}
}

func TestEncodeIsReferentiallyTransparent(t *testing.T) {
	build := func() query.Query {
		return query.ProductList("en", query.ProductListParams{Category: "scales", Page: 3, PageSize: 12})
	}

	if build().String() != build().String() {
		t.Fatal("expected equal logical queries to encode identically")
	}
}

func TestProductSlugsSelectsOnlySlugField(t *testing.T) {
	values := query.ProductSlugs("ja", 1, 100).Encode()

	if got := values.Get("fields[0]"); got != "slug" {
		t.Fatalf("expected fields[0]=slug, got %q", got)
	}
	if got := values.Get("pagination[pageSize]"); got != "100" {
		t.Fatalf("expected pageSize 100, got %q", got)
	}
}

func TestValidateRejectsMalformedPagination(t *testing.T) {
	cases := []struct {
		name string
		page int
		size int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero page size", 1, 0},
		{"negative page size", 1, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := query.Query{
				Locale:     "en",
				Pagination: &query.Pagination{Page: tc.page, PageSize: tc.size},
			}
			if err := q.Validate(); !errors.Is(err, query.ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}

func TestValidateRejectsUnknownLocale(t *testing.T) {
	q := query.ProductList("de", query.ProductListParams{PageSize: 25})
	if err := q.Validate("en", "ja"); !errors.Is(err, query.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery for unknown locale, got %v", err)
	}
}

func TestValidateRejectsInvalidSlugFilter(t *testing.T) {
	q := query.ProductBySlug("Not A Slug!", "en")
	if err := q.Validate("en", "ja"); !errors.Is(err, query.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery for invalid slug, got %v", err)
	}
}

func TestValidateAcceptsWellFormedQuery(t *testing.T) {
	q := query.ProductList("en", query.ProductListParams{Category: "scales", Page: 2, PageSize: 10})
	if err := q.Validate("en", "ja"); err != nil {
		t.Fatalf("expected valid query, got %v", err)
	}
}
