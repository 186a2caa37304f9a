// Package storefront is the content gateway and search integration layer for
// the localized product storefront. It reads catalog and site content from
// the headless content service, keeps the product search index in sync, and
// drives the interactive search box.
package storefront

import (
	"context"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/commands/indexing"
	"github.com/goliatone/go-storefront/internal/di"
	"github.com/goliatone/go-storefront/internal/routes"
	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/site"
	"github.com/goliatone/go-storefront/suggest"
)

// CatalogService exports the catalog read contract for module consumers.
type CatalogService = catalog.Service

// SiteService exports the site content read contract.
type SiteService = site.Service

// SearchClient exports the full-text search contract.
type SearchClient = search.Client

// SearchAdmin exports the index provisioning and sync contract.
type SearchAdmin = search.Admin

// Module is the top level storefront runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a storefront module from configuration plus optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.Catalog()
}

// Site returns the configured site content service.
func (m *Module) Site() SiteService {
	return m.container.Site()
}

// Search returns the configured search client, or nil when the search
// feature is disabled.
func (m *Module) Search() SearchClient {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Search()
}

// SearchIndex returns the index admin, or nil when search is disabled.
func (m *Module) SearchIndex() SearchAdmin {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SearchAdmin()
}

// Routes returns the public URL resolver, or nil when no route table is
// configured.
func (m *Module) Routes() *routes.Resolver {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Routes()
}

// NewSuggester builds an interactive search controller for one locale. The
// controller applies the configured debounce, minimum query length, and
// suggestion limit; returns nil when search or suggestions are disabled.
func (m *Module) NewSuggester(locale string, opts ...suggest.Option) *suggest.Controller {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.NewSuggestController(locale, opts...)
}

// Reindex rebuilds the search index from the catalog for the given locales.
// Empty locales default to the configured locale set.
func (m *Module) Reindex(ctx context.Context, locales ...string) error {
	handler := m.container.Reindexer()
	if handler == nil {
		return search.ErrUnavailable
	}
	if len(locales) == 0 {
		locales = m.container.Config.I18N.Locales
	}
	return handler.Execute(ctx, indexing.ReindexCommand{Locales: locales})
}

// InvalidateContent flushes the content read cache so subsequent reads hit
// the origin. Publish webhooks call this after content changes.
func (m *Module) InvalidateContent(ctx context.Context, reason string) error {
	return m.container.Invalidator().Execute(ctx, indexing.InvalidateContentCommand{Reason: reason})
}
