package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrContentBaseURLRequired indicates the content service origin is missing.
var ErrContentBaseURLRequired = errors.New("storefront config: content service base URL is required")

// ErrSearchHostRequired ensures search features only build with a reachable host.
var ErrSearchHostRequired = errors.New("storefront config: search host is required when search is enabled")

// ErrSearchIndexRequired ensures search features name a target index.
var ErrSearchIndexRequired = errors.New("storefront config: search index name is required when search is enabled")

// ErrDefaultLocaleRequired indicates the default locale is unset.
var ErrDefaultLocaleRequired = errors.New("storefront config: default locale is required")

// ErrDefaultLocaleUnknown indicates the default locale is not in the locale set.
var ErrDefaultLocaleUnknown = errors.New("storefront config: default locale must be a configured locale")

// ErrRevalidateTTLInvalid rejects negative revalidation windows.
var ErrRevalidateTTLInvalid = errors.New("storefront config: revalidate TTL must be zero or positive")

// ErrSuggestDebounceInvalid rejects non-positive debounce intervals.
var ErrSuggestDebounceInvalid = errors.New("storefront config: suggest debounce must be positive")

// ErrSuggestMinQueryInvalid rejects suggestion thresholds below one character.
var ErrSuggestMinQueryInvalid = errors.New("storefront config: suggest minimum query length must be positive")

var ErrLoggingProviderRequired = errors.New("storefront config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("storefront config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("storefront config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("storefront config: logging format is invalid")

// Config aggregates feature flags and service bindings for the storefront module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Content       ContentConfig
	Search        SearchConfig
	I18N          I18NConfig
	Cache         CacheConfig
	Suggest       SuggestConfig
	Routes        RoutesConfig
	Features      Features
	Logging       LoggingConfig
}

// ContentConfig captures the content service endpoint and read policy.
type ContentConfig struct {
	BaseURL       string
	APIToken      string
	RevalidateTTL time.Duration
	PageSize      int
}

// SearchConfig captures the search-index service endpoint.
type SearchConfig struct {
	Host    string
	APIKey  string
	Index   string
	Timeout time.Duration
}

// I18NConfig enumerates the locale set served by the content service.
type I18NConfig struct {
	Enabled bool
	Locales []string
}

// CacheConfig captures cache behaviour toggles for gateway reads.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// SuggestConfig tunes the interactive search controller.
type SuggestConfig struct {
	Debounce       time.Duration
	MinQueryLength int
	Limit          int
}

// RoutesConfig captures front-end routing configuration for URL resolution.
type RoutesConfig struct {
	RouteConfig  *urlkit.Config
	DefaultGroup string
	LocaleGroups map[string]string
	SlugParam    string
}

// Features toggles module functionality.
type Features struct {
	Search  bool
	Suggest bool
	Sitemap bool
	Logger  bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults matching the hosted content
// service's behaviour: a 60 second revalidation window, 25-item listing pages,
// locales en/ja, and inline suggestions debounced at 300ms over 8 hits.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Content: ContentConfig{
			BaseURL:       "http://localhost:1337",
			RevalidateTTL: 60 * time.Second,
			PageSize:      25,
		},
		Search: SearchConfig{
			Host:    "http://localhost:7700",
			Index:   "product",
			Timeout: 5 * time.Second,
		},
		I18N: I18NConfig{
			Enabled: true,
			Locales: []string{"en", "ja"},
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: 60 * time.Second,
		},
		Suggest: SuggestConfig{
			Debounce:       300 * time.Millisecond,
			MinQueryLength: 2,
			Limit:          8,
		},
		Routes: RoutesConfig{
			SlugParam: "slug",
		},
		Features: Features{
			Search:  true,
			Suggest: true,
			Sitemap: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.BaseURL) == "" {
		return ErrContentBaseURLRequired
	}
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if cfg.I18N.Enabled && !containsLocale(cfg.I18N.Locales, cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnknown, cfg.DefaultLocale)
	}
	if cfg.Content.RevalidateTTL < 0 {
		return ErrRevalidateTTLInvalid
	}
	if cfg.Features.Search {
		if strings.TrimSpace(cfg.Search.Host) == "" {
			return ErrSearchHostRequired
		}
		if strings.TrimSpace(cfg.Search.Index) == "" {
			return ErrSearchIndexRequired
		}
	}
	if cfg.Features.Suggest {
		if cfg.Suggest.Debounce <= 0 {
			return ErrSuggestDebounceInvalid
		}
		if cfg.Suggest.MinQueryLength < 1 {
			return ErrSuggestMinQueryInvalid
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func containsLocale(locales []string, locale string) bool {
	needle := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range locales {
		if strings.ToLower(strings.TrimSpace(candidate)) == needle {
			return true
		}
	}
	return false
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
