package store

import (
	"context"

	"encoding/json"
)

// Store is the remote hierarchical key-value store. Paths are slash-joined
// segments ("products/{id}", "settings"); values are JSON documents.
type Store interface {
	// Get reads the document at path into value. Returns false when the
	// path does not exist; absence is not an error.
	Get(ctx context.Context, path string, value any) (bool, error)
	// Set writes the full document at path, overwriting any prior value.
	Set(ctx context.Context, path string, value any) error
	// Delete removes the document at path. Deleting an absent path is not
	// an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a document is present at path.
	Exists(ctx context.Context, path string) (bool, error)
	// List returns every document under prefix, keyed by the final path
	// segment.
	List(ctx context.Context, prefix string) (map[string]json.RawMessage, error)
	Close() error
}
