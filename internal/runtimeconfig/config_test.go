package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing content url",
			mutate:  func(cfg *Config) { cfg.Content.BaseURL = "" },
			wantErr: ErrContentBaseURLRequired,
		},
		{
			name:    "missing default locale",
			mutate:  func(cfg *Config) { cfg.DefaultLocale = "" },
			wantErr: ErrDefaultLocaleRequired,
		},
		{
			name:    "default locale outside set",
			mutate:  func(cfg *Config) { cfg.DefaultLocale = "fr" },
			wantErr: ErrDefaultLocaleUnknown,
		},
		{
			name:    "negative revalidate ttl",
			mutate:  func(cfg *Config) { cfg.Content.RevalidateTTL = -time.Second },
			wantErr: ErrRevalidateTTLInvalid,
		},
		{
			name:    "search enabled without host",
			mutate:  func(cfg *Config) { cfg.Search.Host = "" },
			wantErr: ErrSearchHostRequired,
		},
		{
			name:    "search enabled without index",
			mutate:  func(cfg *Config) { cfg.Search.Index = "" },
			wantErr: ErrSearchIndexRequired,
		},
		{
			name:    "suggest without debounce",
			mutate:  func(cfg *Config) { cfg.Suggest.Debounce = 0 },
			wantErr: ErrSuggestDebounceInvalid,
		},
		{
			name:    "suggest with zero min query",
			mutate:  func(cfg *Config) { cfg.Suggest.MinQueryLength = 0 },
			wantErr: ErrSuggestMinQueryInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "console"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestDisabledFeaturesSkipTheirChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Search = false
	cfg.Features.Suggest = false
	cfg.Search.Host = ""
	cfg.Suggest.Debounce = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled features to skip validation, got %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvContentURL, "https://cms.example.com")
	t.Setenv(EnvContentToken, "secret")
	t.Setenv(EnvSearchHost, "https://search.example.com")
	t.Setenv(EnvRevalidateSeconds, "120")
	t.Setenv(EnvLocales, "en, ja ,de")

	cfg := FromEnv()
	if cfg.Content.BaseURL != "https://cms.example.com" {
		t.Errorf("content url = %q", cfg.Content.BaseURL)
	}
	if cfg.Content.APIToken != "secret" {
		t.Errorf("api token = %q", cfg.Content.APIToken)
	}
	if cfg.Search.Host != "https://search.example.com" {
		t.Errorf("search host = %q", cfg.Search.Host)
	}
	if cfg.Content.RevalidateTTL != 2*time.Minute || cfg.Cache.DefaultTTL != 2*time.Minute {
		t.Errorf("revalidate ttl = %v cache ttl = %v", cfg.Content.RevalidateTTL, cfg.Cache.DefaultTTL)
	}
	if len(cfg.I18N.Locales) != 3 || cfg.I18N.Locales[2] != "de" {
		t.Errorf("locales = %v", cfg.I18N.Locales)
	}
}

func TestFromEnvKeepsDefaultsWhenUnset(t *testing.T) {
	cfg := FromEnv()
	defaults := DefaultConfig()
	if cfg.Search.Index != defaults.Search.Index {
		t.Errorf("index = %q, want default %q", cfg.Search.Index, defaults.Search.Index)
	}
	if cfg.Suggest.Debounce != defaults.Suggest.Debounce {
		t.Errorf("debounce = %v, want %v", cfg.Suggest.Debounce, defaults.Suggest.Debounce)
	}
}
