package storefront

import (
	"context"
	"errors"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/routes"
)

// SitemapEntry is one URL in the generated sitemap.
type SitemapEntry struct {
	URL    string
	Locale string
}

// ErrSitemapDisabled reports that the sitemap feature is switched off.
var ErrSitemapDisabled = errors.New("storefront: sitemap feature disabled")

// SitemapEntries enumerates every public URL: the static routes per locale
// plus every product detail page. When the content service is unavailable the
// dynamic entries are skipped and the static routes still come back, so
// sitemap generation degrades instead of failing.
func (m *Module) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	if !m.container.Config.Features.Sitemap {
		return nil, ErrSitemapDisabled
	}

	resolver := m.Routes()
	if resolver == nil {
		return nil, errors.New("storefront: sitemap requires a configured route table")
	}

	locales := m.container.Config.I18N.Locales
	if len(locales) == 0 {
		locales = []string{m.container.Config.DefaultLocale}
	}

	var entries []SitemapEntry
	for _, locale := range locales {
		for _, route := range []string{routes.RouteHome, routes.RouteProducts, routes.RouteSearch} {
			url, err := resolver.URL(locale, route, nil)
			if err != nil {
				return nil, err
			}
			entries = append(entries, SitemapEntry{URL: url, Locale: locale})
		}
	}

	slugs, err := m.Catalog().AllSlugs(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return entries, nil
		}
		return nil, err
	}

	for _, ref := range slugs {
		url, err := resolver.ProductURL(ref.Locale, ref.Slug)
		if err != nil {
			return nil, err
		}
		entries = append(entries, SitemapEntry{URL: url, Locale: ref.Locale})
	}
	return entries, nil
}
