package routes

import (
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	manager := urlkit.NewRouteManager(DefaultConfig("https://example.com", "en", []string{"en", "ja"}))
	return New(Options{
		Manager:      manager,
		DefaultGroup: "en",
		LocaleGroups: map[string]string{"en": "en", "ja": "ja"},
	})
}

func TestProductURLPerLocale(t *testing.T) {
	resolver := newTestResolver(t)

	cases := []struct {
		locale string
		slug   string
		want   string
	}{
		{"en", "precision-caliper", "https://example.com/products/precision-caliper"},
		{"ja", "precision-caliper", "https://example.com/ja/products/precision-caliper"},
	}
	for _, tc := range cases {
		got, err := resolver.ProductURL(tc.locale, tc.slug)
		if err != nil {
			t.Fatalf("ProductURL(%s): %v", tc.locale, err)
		}
		if got != tc.want {
			t.Errorf("ProductURL(%s) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestUnknownLocaleFallsBackToDefaultGroup(t *testing.T) {
	resolver := newTestResolver(t)

	got, err := resolver.ProductsURL("fr")
	if err != nil {
		t.Fatalf("ProductsURL: %v", err)
	}
	if !strings.HasSuffix(got, "/products") || strings.Contains(got, "/fr/") {
		t.Errorf("expected default-group URL, got %q", got)
	}
}

func TestUnknownRouteReturnsError(t *testing.T) {
	resolver := newTestResolver(t)

	if _, err := resolver.URL("en", "checkout", nil); err == nil {
		t.Fatal("expected error for unknown route")
	}
}

func TestPageURL(t *testing.T) {
	resolver := newTestResolver(t)

	got, err := resolver.PageURL("en", "about")
	if err != nil {
		t.Fatalf("PageURL: %v", err)
	}
	if got != "https://example.com/about" {
		t.Errorf("PageURL = %q", got)
	}
}
