// Package routes resolves public storefront URLs from route names. Locales
// map to urlkit groups so "/products/x" and "/ja/products/x" come from the
// same route table.
package routes

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names known to the default table.
const (
	RouteHome     = "home"
	RouteProducts = "products"
	RouteProduct  = "product"
	RoutePage     = "page"
	RouteSearch   = "search"
)

// Options configures the resolver.
type Options struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	// LocaleGroups maps a locale to its urlkit group name. Locales without an
	// entry fall back to DefaultGroup.
	LocaleGroups map[string]string
	SlugParam    string
}

// Resolver builds public URLs from route names using a go-urlkit route table.
// Safe for concurrent use.
type Resolver struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[string]string
	slugParam    string

	mu         sync.RWMutex
	groupCache map[string]*urlkit.Group
}

// New constructs a resolver.
func New(opts Options) *Resolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &Resolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		slugParam:    opts.SlugParam,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// DefaultConfig returns the storefront's route table. Each locale beyond the
// default lives under its own prefixed group with identical route paths.
func DefaultConfig(baseURL, defaultLocale string, locales []string) *urlkit.Config {
	paths := map[string]string{
		RouteHome:     "/",
		RouteProducts: "/products",
		RouteProduct:  "/products/:slug",
		RoutePage:     "/:slug",
		RouteSearch:   "/search",
	}

	groups := []urlkit.GroupConfig{{
		Name:    defaultLocale,
		BaseURL: baseURL,
		Paths:   paths,
	}}
	for _, locale := range locales {
		if locale == defaultLocale {
			continue
		}
		groups = append(groups, urlkit.GroupConfig{
			Name:    locale,
			BaseURL: baseURL,
			Path:    "/" + locale,
			Paths:   paths,
		})
	}

	return &urlkit.Config{Groups: groups}
}

// URL resolves a named route for a locale with the given params.
func (r *Resolver) URL(locale, route string, params map[string]any) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("routes: route manager not configured")
	}

	groupName := r.defaultGroup
	localeKey := strings.ToLower(strings.TrimSpace(locale))
	if r.localeGroups != nil {
		if name, ok := r.localeGroups[localeKey]; ok && strings.TrimSpace(name) != "" {
			groupName = strings.TrimSpace(name)
		}
	}
	if groupName == "" {
		groupName = localeKey
	}

	group, err := r.groupFor(groupName)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

// ProductURL resolves the detail URL for a product slug.
func (r *Resolver) ProductURL(locale, slug string) (string, error) {
	return r.URL(locale, RouteProduct, map[string]any{r.slugParam: slug})
}

// PageURL resolves the URL for a presentational page slug.
func (r *Resolver) PageURL(locale, slug string) (string, error) {
	return r.URL(locale, RoutePage, map[string]any{r.slugParam: slug})
}

// ProductsURL resolves the product listing URL.
func (r *Resolver) ProductsURL(locale string) (string, error) {
	return r.URL(locale, RouteProducts, nil)
}

// HomeURL resolves the locale's landing URL.
func (r *Resolver) HomeURL(locale string) (string, error) {
	return r.URL(locale, RouteHome, nil)
}

func (r *Resolver) groupFor(name string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[name]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	group, err := lookupGroup(r.manager, name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.groupCache[name] = group
	r.mu.Unlock()
	return group, nil
}

// urlkit panics on unknown groups and routes; surface those as errors.
func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("routes: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route %q not found: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
