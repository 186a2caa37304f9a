// Package indexing owns the out-of-band synchronization between the catalog
// and the search index. The serving path never writes to the index; these
// commands are the only writers.
package indexing

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/searchindex"
)

const reindexMessageType = "storefront.indexing.reindex"

// Default paging for catalog reads during a rebuild.
const defaultReindexPageSize = 100

// ReindexCommand rebuilds the search index from the catalog. Because the
// document projection is deterministic and documents upsert by id, re-running
// the command converges rather than duplicating.
type ReindexCommand struct {
	Locales  []string `json:"locales"`
	PageSize int      `json:"page_size,omitempty"`
}

// Type implements command.Message.
func (ReindexCommand) Type() string { return reindexMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ReindexCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Locales) == 0 {
		errs["locales"] = validation.NewError("storefront.indexing.locales_required", "at least one locale is required")
	}
	for _, locale := range m.Locales {
		if locale == "" {
			errs["locales"] = validation.NewError("storefront.indexing.locale_empty", "locales must not contain empty entries")
		}
	}
	if m.PageSize < 0 {
		errs["page_size"] = validation.NewError("storefront.indexing.page_size_invalid", "page_size must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReindexHandler provisions the index schema and streams every locale's
// products through the document transform into the search index.
type ReindexHandler struct {
	inner *commands.Handler[ReindexCommand]
}

// NewReindexHandler wires the handler to the catalog reader and index writer.
func NewReindexHandler(catalogSvc catalog.Service, admin search.Admin, logger interfaces.Logger, opts ...commands.HandlerOption[ReindexCommand]) *ReindexHandler {
	exec := func(ctx context.Context, msg ReindexCommand) error {
		if err := admin.EnsureIndex(ctx, searchindex.DefaultSettings()); err != nil {
			return err
		}

		pageSize := msg.PageSize
		if pageSize <= 0 {
			pageSize = defaultReindexPageSize
		}

		indexed := 0
		for _, locale := range msg.Locales {
			localeLog := logging.WithIndexingContext(logger, locale, searchindex.DefaultIndexName, "reindex")
			localeIndexed := 0
			for page := 1; ; page++ {
				list, err := catalogSvc.ListProducts(ctx, catalog.ListProductsRequest{
					Locale:   locale,
					Page:     page,
					PageSize: pageSize,
					// Rebuilds must see the current catalog, never a cached page.
					Revalidate: -1,
				})
				if err != nil {
					return err
				}

				docs := make([]searchindex.Document, 0, len(list.Items))
				for _, product := range list.Items {
					if product == nil {
						continue
					}
					docs = append(docs, searchindex.Transform(product))
				}
				if err := admin.AddDocuments(ctx, docs); err != nil {
					return err
				}
				indexed += len(docs)
				localeIndexed += len(docs)

				if page >= list.Pagination.PageCount || len(list.Items) == 0 {
					break
				}
			}
			localeLog.Debug("indexing.reindex.locale_done", "documents", localeIndexed)
		}

		logger.Info("indexing.reindex.complete", "documents", indexed, "locales", len(msg.Locales))
		return nil
	}

	handlerOpts := []commands.HandlerOption[ReindexCommand]{
		commands.WithLogger[ReindexCommand](logger),
		commands.WithOperation[ReindexCommand]("indexing.reindex"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReindexHandler{
		inner: commands.NewHandler[ReindexCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReindexCommand].Execute.
func (h *ReindexHandler) Execute(ctx context.Context, msg ReindexCommand) error {
	return h.inner.Execute(ctx, msg)
}
