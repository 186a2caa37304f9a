package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	rootModule     = "storefront"
	catalogModule  = "storefront.catalog"
	siteModule     = "storefront.site"
	searchModule   = "storefront.search"
	suggestModule  = "storefront.suggest"
	indexingModule = "storefront.indexing"
)

const (
	fieldLocale    = "locale"
	fieldIndexName = "index"
	fieldOperation = "operation"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for the content gateway.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// SiteLogger returns the logger namespace reserved for site content reads.
func SiteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, siteModule)
}

// SearchLogger returns the logger namespace reserved for the search client.
func SearchLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, searchModule)
}

// SuggestLogger returns the logger namespace reserved for interactive search.
func SuggestLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, suggestModule)
}

// IndexingLogger returns the logger namespace reserved for index synchronization.
func IndexingLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexingModule)
}

// WithIndexingContext enriches the provided logger with common indexing fields
// such as locale, index name, and operation. Empty values are ignored.
func WithIndexingContext(logger interfaces.Logger, locale, index, operation string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(index); trimmed != "" {
		fields[fieldIndexName] = trimmed
	}
	if trimmed := strings.TrimSpace(operation); trimmed != "" {
		fields[fieldOperation] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
