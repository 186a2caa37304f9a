// Package di wires the storefront module's dependencies from configuration.
package di

import (
	"net/http"
	"time"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/cache"
	"github.com/goliatone/go-storefront/internal/commands/indexing"
	"github.com/goliatone/go-storefront/internal/gateway"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/internal/logging/gologger"
	"github.com/goliatone/go-storefront/internal/meili"
	"github.com/goliatone/go-storefront/internal/routes"
	"github.com/goliatone/go-storefront/internal/runtimeconfig"
	"github.com/goliatone/go-storefront/pkg/interfaces"
	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/site"
	"github.com/goliatone/go-storefront/suggest"
	urlkit "github.com/goliatone/go-urlkit"
)

// Container wires module dependencies from configuration. Injection points
// exist for every external surface so tests can run without a content or
// search service.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	cacheProvider  interfaces.CacheProvider
	httpClient     *http.Client
	clock          func() time.Time

	contentClient *gateway.Client
	catalogSvc    catalog.Service
	siteSvc       site.Service

	searchClient search.Client
	searchAdmin  search.Admin

	routeResolver *routes.Resolver

	reindexHandler    *indexing.ReindexHandler
	invalidateHandler *indexing.InvalidateContentHandler
}

// Option mutates the container before wiring is finalised.
type Option func(*Container)

// WithHTTPClient overrides the transport shared by the content and search
// clients.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithCacheProvider overrides the default in-memory read cache.
func WithCacheProvider(provider interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cacheProvider = provider
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithClock overrides the time source used by the cache.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithCatalogService overrides the default catalog service binding.
func WithCatalogService(svc catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithSiteService overrides the default site service binding.
func WithSiteService(svc site.Service) Option {
	return func(c *Container) {
		c.siteSvc = svc
	}
}

// WithSearchClient overrides the default search client binding.
func WithSearchClient(client search.Client) Option {
	return func(c *Container) {
		c.searchClient = client
	}
}

// WithSearchAdmin overrides the default index admin binding.
func WithSearchAdmin(admin search.Admin) Option {
	return func(c *Container) {
		c.searchAdmin = admin
	}
}

// NewContainer validates the configuration and wires the module graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.cacheProvider == nil {
		if cfg.Cache.Enabled {
			cacheOpts := []cache.Option{}
			if c.clock != nil {
				cacheOpts = append(cacheOpts, cache.WithClock(c.clock))
			}
			c.cacheProvider = cache.NewMemory(cfg.Cache.DefaultTTL, cacheOpts...)
		} else {
			c.cacheProvider = cache.Noop()
		}
	}

	clientOpts := []gateway.ClientOption{
		gateway.WithCache(c.cacheProvider, cfg.Content.RevalidateTTL),
		gateway.WithLogger(logging.CatalogLogger(c.loggerProvider)),
	}
	if c.httpClient != nil {
		clientOpts = append(clientOpts, gateway.WithHTTPClient(c.httpClient))
	}
	c.contentClient = gateway.NewClient(cfg.Content.BaseURL, cfg.Content.APIToken, clientOpts...)

	locales := cfg.I18N.Locales
	if len(locales) == 0 {
		locales = []string{cfg.DefaultLocale}
	}

	if c.catalogSvc == nil {
		c.catalogSvc = gateway.NewCatalogService(c.contentClient, locales,
			gateway.WithPageSize(cfg.Content.PageSize))
	}
	if c.siteSvc == nil {
		c.siteSvc = gateway.NewSiteService(c.contentClient, locales)
	}

	if cfg.Features.Search {
		meiliOpts := []meili.Option{
			meili.WithLogger(logging.SearchLogger(c.loggerProvider)),
			meili.WithTimeout(cfg.Search.Timeout),
		}
		if c.httpClient != nil {
			meiliOpts = append(meiliOpts, meili.WithHTTPClient(c.httpClient))
		}
		client := meili.New(cfg.Search.Host, cfg.Search.APIKey, cfg.Search.Index, meiliOpts...)
		if c.searchClient == nil {
			c.searchClient = client
		}
		if c.searchAdmin == nil {
			c.searchAdmin = meili.NewAdmin(client)
		}
	}

	c.routeResolver = buildRouteResolver(cfg)

	if c.searchAdmin != nil {
		c.reindexHandler = indexing.NewReindexHandler(
			c.catalogSvc,
			c.searchAdmin,
			logging.IndexingLogger(c.loggerProvider),
		)
	}
	c.invalidateHandler = indexing.NewInvalidateContentHandler(
		c.contentClient,
		logging.CatalogLogger(c.loggerProvider),
	)

	return c, nil
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch cfg.Logging.Provider {
	case "", "noop":
		return nil, nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	}
}

func buildRouteResolver(cfg runtimeconfig.Config) *routes.Resolver {
	routeConfig := cfg.Routes.RouteConfig
	if routeConfig == nil {
		return nil
	}

	return routes.New(routes.Options{
		Manager:      urlkit.NewRouteManager(routeConfig),
		DefaultGroup: cfg.Routes.DefaultGroup,
		LocaleGroups: cfg.Routes.LocaleGroups,
		SlugParam:    cfg.Routes.SlugParam,
	})
}

// Catalog returns the catalog service binding.
func (c *Container) Catalog() catalog.Service { return c.catalogSvc }

// Site returns the site content service binding.
func (c *Container) Site() site.Service { return c.siteSvc }

// Search returns the search client binding; nil when search is disabled.
func (c *Container) Search() search.Client { return c.searchClient }

// SearchAdmin returns the index admin binding; nil when search is disabled.
func (c *Container) SearchAdmin() search.Admin { return c.searchAdmin }

// Routes returns the URL resolver; nil when no route table is configured.
func (c *Container) Routes() *routes.Resolver { return c.routeResolver }

// Cache returns the shared cache provider.
func (c *Container) Cache() interfaces.CacheProvider { return c.cacheProvider }

// LoggerProvider returns the configured logger provider; may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// ContentClient returns the underlying content gateway client.
func (c *Container) ContentClient() *gateway.Client { return c.contentClient }

// Reindexer returns the reindex command handler; nil when search is disabled.
func (c *Container) Reindexer() *indexing.ReindexHandler { return c.reindexHandler }

// Invalidator returns the content cache invalidation handler.
func (c *Container) Invalidator() *indexing.InvalidateContentHandler { return c.invalidateHandler }

// NewSuggestController builds a suggest controller bound to one locale using
// the configured debounce tuning. Returns nil when search or suggest is
// disabled.
func (c *Container) NewSuggestController(locale string, opts ...suggest.Option) *suggest.Controller {
	if c.searchClient == nil || !c.Config.Features.Suggest {
		return nil
	}
	base := []suggest.Option{
		suggest.WithDebounce(c.Config.Suggest.Debounce),
		suggest.WithMinQueryLength(c.Config.Suggest.MinQueryLength),
		suggest.WithLimit(c.Config.Suggest.Limit),
		suggest.WithLogger(logging.SuggestLogger(c.loggerProvider)),
	}
	base = append(base, opts...)
	return suggest.NewController(c.searchClient, locale, base...)
}
