package runtimeconfig

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names consumed by FromEnv. Every option has a default
// in DefaultConfig, so a missing variable never fails.
const (
	EnvContentURL        = "STOREFRONT_CONTENT_URL"
	EnvContentToken      = "STOREFRONT_CONTENT_TOKEN"
	EnvSearchHost        = "STOREFRONT_SEARCH_HOST"
	EnvSearchAPIKey      = "STOREFRONT_SEARCH_API_KEY"
	EnvSearchIndex       = "STOREFRONT_SEARCH_INDEX"
	EnvRevalidateSeconds = "STOREFRONT_REVALIDATE_SECONDS"
	EnvDefaultLocale     = "STOREFRONT_DEFAULT_LOCALE"
	EnvLocales           = "STOREFRONT_LOCALES"
	EnvLogLevel          = "STOREFRONT_LOG_LEVEL"
)

// FromEnv layers environment variables over DefaultConfig. Files passed in are
// loaded first via godotenv; a missing .env file is not an error so deployments
// that configure the process environment directly keep working.
func FromEnv(files ...string) Config {
	_ = godotenv.Load(files...)

	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvContentURL)); v != "" {
		cfg.Content.BaseURL = v
	}
	if v := os.Getenv(EnvContentToken); v != "" {
		cfg.Content.APIToken = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSearchHost)); v != "" {
		cfg.Search.Host = v
	}
	if v := os.Getenv(EnvSearchAPIKey); v != "" {
		cfg.Search.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSearchIndex)); v != "" {
		cfg.Search.Index = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRevalidateSeconds)); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			cfg.Content.RevalidateTTL = time.Duration(seconds) * time.Second
			cfg.Cache.DefaultTTL = cfg.Content.RevalidateTTL
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultLocale)); v != "" {
		cfg.DefaultLocale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocales)); v != "" {
		cfg.I18N.Locales = splitLocales(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}

	return cfg
}

func splitLocales(raw string) []string {
	parts := strings.Split(raw, ",")
	locales := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	return locales
}
