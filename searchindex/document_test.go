package searchindex_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/searchindex"
)

func sampleProduct() *catalog.Product {
	short := "Compact bench scale"
	model := "BX-300"
	return &catalog.Product{
		ID:               42,
		DocumentID:       "doc-42",
		Name:             "Bench Scale BX",
		Slug:             "bench-scale-bx",
		ShortDescription: &short,
		ModelNumber:      &model,
		Category: &catalog.ProductCategory{
			ID:   7,
			Name: "Scales",
			Slug: "scales",
		},
		IsFeatured: true,
		SortOrder:  3,
		Locale:     "en",
	}
}

func TestTransformIsIdempotent(t *testing.T) {
	product := sampleProduct()

	first := searchindex.Transform(product)
	second := searchindex.Transform(product)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical documents, got %+v and %+v", first, second)
	}
}

func TestTransformPreservesIdentity(t *testing.T) {
	product := sampleProduct()
	doc := searchindex.Transform(product)

	if doc.ID != product.ID {
		t.Fatalf("expected document id %d, got %d", product.ID, doc.ID)
	}
	if doc.Locale != product.Locale {
		t.Fatalf("expected locale %q, got %q", product.Locale, doc.Locale)
	}
	if doc.Category == nil || *doc.Category != "Scales" {
		t.Fatalf("expected category Scales, got %v", doc.Category)
	}
	if doc.CategorySlug == nil || *doc.CategorySlug != "scales" {
		t.Fatalf("expected category slug scales, got %v", doc.CategorySlug)
	}
}

func TestTransformKeepsOptionalFieldsPresentAsNull(t *testing.T) {
	product := &catalog.Product{
		ID:     9,
		Name:   "Caliper C1",
		Slug:   "caliper-c1",
		Locale: "ja",
	}

	raw, err := json.Marshal(searchindex.Transform(product))
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	payload := string(raw)
	for _, field := range []string{"shortDescription", "description", "modelNumber", "sku", "category", "categorySlug"} {
		if !strings.Contains(payload, `"`+field+`":null`) {
			t.Fatalf("expected %s to serialize as null, payload: %s", field, payload)
		}
	}
}

func TestDefaultSettingsMatchSchemaContract(t *testing.T) {
	settings := searchindex.DefaultSettings()

	if settings.IndexName != "product" {
		t.Fatalf("expected index name product, got %q", settings.IndexName)
	}

	wantSearchable := []string{"name", "shortDescription", "description", "modelNumber", "sku"}
	if !reflect.DeepEqual(settings.SearchableAttributes, wantSearchable) {
		t.Fatalf("unexpected searchable attributes: %v", settings.SearchableAttributes)
	}

	wantFilterable := []string{"category", "categorySlug", "locale", "isFeatured"}
	if !reflect.DeepEqual(settings.FilterableAttributes, wantFilterable) {
		t.Fatalf("unexpected filterable attributes: %v", settings.FilterableAttributes)
	}

	wantSortable := []string{"name", "sortOrder"}
	if !reflect.DeepEqual(settings.SortableAttributes, wantSortable) {
		t.Fatalf("unexpected sortable attributes: %v", settings.SortableAttributes)
	}
}
