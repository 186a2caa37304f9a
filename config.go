package storefront

import "github.com/goliatone/go-storefront/internal/runtimeconfig"

var (
	ErrContentBaseURLRequired  = runtimeconfig.ErrContentBaseURLRequired
	ErrSearchHostRequired      = runtimeconfig.ErrSearchHostRequired
	ErrSearchIndexRequired     = runtimeconfig.ErrSearchIndexRequired
	ErrDefaultLocaleRequired   = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleUnknown    = runtimeconfig.ErrDefaultLocaleUnknown
	ErrRevalidateTTLInvalid    = runtimeconfig.ErrRevalidateTTLInvalid
	ErrSuggestDebounceInvalid  = runtimeconfig.ErrSuggestDebounceInvalid
	ErrSuggestMinQueryInvalid  = runtimeconfig.ErrSuggestMinQueryInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ContentConfig = runtimeconfig.ContentConfig
	SearchConfig  = runtimeconfig.SearchConfig
	I18NConfig    = runtimeconfig.I18NConfig
	CacheConfig   = runtimeconfig.CacheConfig
	SuggestConfig = runtimeconfig.SuggestConfig
	RoutesConfig  = runtimeconfig.RoutesConfig
	Features      = runtimeconfig.Features
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the module defaults: local content and search hosts,
// locales en/ja, a 60 second revalidation window, and suggestion tuning of
// 300ms debounce over 8 hits.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv builds configuration from STOREFRONT_* environment variables,
// loading the given dotenv files first when present.
func ConfigFromEnv(files ...string) Config {
	return runtimeconfig.FromEnv(files...)
}
