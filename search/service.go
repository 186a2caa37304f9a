package search

import (
	"context"

	"github.com/goliatone/go-storefront/searchindex"
)

// Client runs full-text queries against the product index.
type Client interface {
	Search(ctx context.Context, req Request) (*Result, error)
}

// Admin provisions and synchronizes the index. Only the out-of-band sync job
// uses it; the serving path never writes.
type Admin interface {
	// EnsureIndex pushes the schema settings so filterable and sortable
	// attributes match the transform's contract.
	EnsureIndex(ctx context.Context, settings searchindex.Settings) error

	// AddDocuments upserts documents by id. Re-running with the same batch is
	// a no-op because the transform is deterministic.
	AddDocuments(ctx context.Context, docs []searchindex.Document) error

	// DeleteDocuments removes documents by id.
	DeleteDocuments(ctx context.Context, ids []int) error
}
