// Package store provides snapshot storage backends for board documents.
//
// Snapshots are named, explicit saves of a board's serialized form, a debug
// facility rather than session persistence (the live board never persists on
// its own). The Store interface has four implementations:
//   - file: JSON files under the XDG data directory (default for CLI use)
//   - redis: Redis-backed storage for shared or remote setups
//   - mongo: MongoDB-backed storage with bson documents
//   - null: no-op storage for tests and --no-store
package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/matzehuels/snapdock/pkg/boardfile"
	snaperrors "github.com/matzehuels/snapdock/pkg/errors"
)

// ErrNotFound is returned by Load and Delete when no snapshot exists under
// the given name.
var ErrNotFound = errors.New("snapshot not found")

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save stores a document under name, replacing any existing snapshot.
	Save(ctx context.Context, name string, doc boardfile.Document) error

	// Load retrieves the document stored under name.
	// Returns ErrNotFound if no such snapshot exists.
	Load(ctx context.Context, name string) (boardfile.Document, error)

	// List returns the names of all stored snapshots in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the snapshot stored under name.
	// Returns ErrNotFound if no such snapshot exists.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// nameRe constrains snapshot names so they are safe as file names, redis key
// suffixes, and mongo document keys alike.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName rejects snapshot names that would be unsafe for any backend.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return snaperrors.New(snaperrors.ErrCodeInvalidInput,
			"invalid snapshot name %q (use letters, digits, '.', '_', '-')", name)
	}
	return nil
}
