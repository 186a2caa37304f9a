package meili

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/searchindex"
)

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	return body
}

func TestSearchAppliesLocaleFilterAndHighlighting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/indexes/product/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer master-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}

		body := decodeBody(t, r)
		if body["q"] != "caliper" {
			t.Errorf("expected query caliper, got %v", body["q"])
		}
		filters, _ := body["filter"].([]any)
		if len(filters) != 1 || filters[0] != `locale = "en"` {
			t.Errorf("unexpected filter: %v", body["filter"])
		}
		if body["highlightPreTag"] != "<mark>" || body["highlightPostTag"] != "</mark>" {
			t.Errorf("unexpected highlight tags: %v %v", body["highlightPreTag"], body["highlightPostTag"])
		}
		if body["limit"] != float64(search.DefaultLimit) {
			t.Errorf("expected default limit %d, got %v", search.DefaultLimit, body["limit"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"hits": []map[string]any{{
				"id":     12,
				"name":   "Precision Caliper",
				"slug":   "precision-caliper",
				"locale": "en",
				"_formatted": map[string]any{
					"name": "Precision <mark>Caliper</mark>",
				},
			}},
			"estimatedTotalHits": 1,
			"processingTimeMs":   4,
		})
	}))
	defer server.Close()

	client := New(server.URL, "master-key", "product")

	result, err := client.Search(context.Background(), search.Request{Query: "caliper", Locale: "en"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.TotalHits != 1 {
		t.Fatalf("expected 1 total hit, got %d", result.TotalHits)
	}
	hit := result.Hits[0]
	if hit.Formatted == nil || !strings.Contains(hit.Formatted.Name, "<mark>Caliper</mark>") {
		t.Errorf("expected highlighted name, got %+v", hit.Formatted)
	}
	if result.ProcessingTimeMs != 4 {
		t.Errorf("expected processing time 4ms, got %d", result.ProcessingTimeMs)
	}
}

func TestSearchAddsCategoryFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		filters, _ := body["filter"].([]any)
		if len(filters) != 2 || filters[1] != `categorySlug = "measuring-tools"` {
			t.Errorf("unexpected filters: %v", filters)
		}
		json.NewEncoder(w).Encode(map[string]any{"hits": []any{}})
	}))
	defer server.Close()

	client := New(server.URL, "", "product")

	_, err := client.Search(context.Background(), search.Request{
		Query:    "gauge",
		Locale:   "ja",
		Category: "measuring-tools",
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
}

func TestSearchServerErrorSurfacesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, "", "product")

	_, err := client.Search(context.Background(), search.Request{Query: "caliper", Locale: "en"})
	if !errors.Is(err, search.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	var unavailable *search.UnavailableError
	if !errors.As(err, &unavailable) || unavailable.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 detail, got %v", err)
	}
}

func TestWithTimeoutAppliesToTransport(t *testing.T) {
	client := New("http://search.local", "", "product", WithTimeout(2*time.Second))
	if got := client.httpClient.Timeout; got != 2*time.Second {
		t.Fatalf("expected 2s transport deadline, got %v", got)
	}

	// Zero and negative values keep the default.
	client = New("http://search.local", "", "product", WithTimeout(0))
	if got := client.httpClient.Timeout; got != 5*time.Second {
		t.Fatalf("expected default deadline, got %v", got)
	}
}

func TestEnsureIndexPushesSettings(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/indexes":
			// Index already provisioned.
			http.Error(w, "index_already_exists", http.StatusConflict)
		case r.Method == http.MethodPatch && r.URL.Path == "/indexes/product/settings":
			body := decodeBody(t, r)
			searchable, _ := body["searchableAttributes"].([]any)
			if len(searchable) != 5 || searchable[0] != "name" {
				t.Errorf("unexpected searchable attributes: %v", searchable)
			}
			filterable, _ := body["filterableAttributes"].([]any)
			if len(filterable) != 4 {
				t.Errorf("unexpected filterable attributes: %v", filterable)
			}
			w.WriteHeader(http.StatusAccepted)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	admin := NewAdmin(New(server.URL, "", "product"))

	if err := admin.EnsureIndex(context.Background(), searchindex.DefaultSettings()); err != nil {
		t.Fatalf("EnsureIndex: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected create then settings, got %v", paths)
	}
}

func TestAddAndDeleteDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/indexes/product/documents":
			var docs []searchindex.Document
			if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
				t.Fatalf("decode documents: %v", err)
			}
			if len(docs) != 2 || docs[0].ID != 1 {
				t.Errorf("unexpected documents: %+v", docs)
			}
		case "/indexes/product/documents/delete-batch":
			var ids []int
			if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
				t.Fatalf("decode ids: %v", err)
			}
			if len(ids) != 1 || ids[0] != 9 {
				t.Errorf("unexpected ids: %v", ids)
			}
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	admin := NewAdmin(New(server.URL, "", "product"))

	docs := []searchindex.Document{
		{ID: 1, Name: "Caliper", Slug: "caliper", Locale: "en"},
		{ID: 2, Name: "Gauge", Slug: "gauge", Locale: "en"},
	}
	if err := admin.AddDocuments(context.Background(), docs); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if err := admin.DeleteDocuments(context.Background(), []int{9}); err != nil {
		t.Fatalf("DeleteDocuments: %v", err)
	}

	// Empty batches never hit the wire.
	if err := admin.AddDocuments(context.Background(), nil); err != nil {
		t.Fatalf("AddDocuments empty: %v", err)
	}
	if err := admin.DeleteDocuments(context.Background(), nil); err != nil {
		t.Fatalf("DeleteDocuments empty: %v", err)
	}
}
