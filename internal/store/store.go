// Package store persists portfolio content as JSON documents grouped into
// named collections.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = errors.New("store: document not found")

// Store is the document persistence interface. The resource layer is a
// thin pass-through on top of it.
type Store interface {
	// List returns every document in a collection.
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Get returns one document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	// Insert stores a new document. The id must not already exist.
	Insert(ctx context.Context, collection, id string, data []byte) error
	// Update replaces an existing document or returns ErrNotFound.
	Update(ctx context.Context, collection, id string, data []byte) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
