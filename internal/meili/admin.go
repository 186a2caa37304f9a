package meili

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-storefront/search"
	"github.com/goliatone/go-storefront/searchindex"
)

// Admin provisions and synchronizes the index over the same transport as the
// read client.
type Admin struct {
	client *Client
}

var _ search.Admin = (*Admin)(nil)

// NewAdmin wraps a client with the write-side operations.
func NewAdmin(client *Client) *Admin {
	return &Admin{client: client}
}

type createIndexRequest struct {
	UID        string `json:"uid"`
	PrimaryKey string `json:"primaryKey"`
}

// EnsureIndex creates the index if needed and pushes the schema settings.
// Settings are a full replacement, so re-running converges on the same state.
func (a *Admin) EnsureIndex(ctx context.Context, settings searchindex.Settings) error {
	index := settings.IndexName
	if index == "" {
		index = a.client.index
	}

	err := a.client.post(ctx, "/indexes", createIndexRequest{UID: index, PrimaryKey: "id"}, nil)
	if err != nil && !isConflict(err) {
		return err
	}

	return a.client.send(ctx, http.MethodPatch, "/indexes/"+index+"/settings", settings, nil)
}

// AddDocuments upserts documents by primary key.
func (a *Admin) AddDocuments(ctx context.Context, docs []searchindex.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return a.client.post(ctx, "/indexes/"+a.client.index+"/documents", docs, nil)
}

// DeleteDocuments removes documents by id.
func (a *Admin) DeleteDocuments(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	return a.client.post(ctx, "/indexes/"+a.client.index+"/documents/delete-batch", ids, nil)
}

// isConflict recognizes the already-exists answer to index creation.
func isConflict(err error) bool {
	var unavailable *search.UnavailableError
	return errors.As(err, &unavailable) && unavailable.Status == http.StatusConflict
}
