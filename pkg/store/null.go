package store

import (
	"context"

	"github.com/matzehuels/snapdock/pkg/boardfile"
)

// NullStore is a no-op store that never persists anything.
// Useful for tests and for running with snapshots disabled (--backend none).
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, name string, doc boardfile.Document) error {
	return nil
}

// Load always reports a missing snapshot.
func (s *NullStore) Load(ctx context.Context, name string) (boardfile.Document, error) {
	return boardfile.Document{}, ErrNotFound
}

// List returns no names.
func (s *NullStore) List(ctx context.Context) ([]string, error) {
	return nil, nil
}

// Delete always reports a missing snapshot.
func (s *NullStore) Delete(ctx context.Context, name string) error {
	return ErrNotFound
}

// Close does nothing.
func (s *NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
