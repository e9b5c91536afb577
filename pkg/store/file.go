package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/snapdock/pkg/boardfile"
	"github.com/matzehuels/snapdock/pkg/observability"
)

// FileStore stores snapshots as JSON files in a directory.
// Each snapshot is one file named <name>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the document to <dir>/<name>.json.
func (s *FileStore) Save(ctx context.Context, name string, doc boardfile.Document) error {
	start := time.Now()
	err := s.save(name, doc)
	observability.Store().OnSave(ctx, "file", name, time.Since(start), err)
	return err
}

func (s *FileStore) save(name string, doc boardfile.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0644)
}

// Load reads the document stored under name.
func (s *FileStore) Load(ctx context.Context, name string) (boardfile.Document, error) {
	start := time.Now()
	doc, err := s.load(name)
	observability.Store().OnLoad(ctx, "file", name, time.Since(start), err)
	return doc, err
}

func (s *FileStore) load(name string) (boardfile.Document, error) {
	if err := ValidateName(name); err != nil {
		return boardfile.Document{}, err
	}
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return boardfile.Document{}, ErrNotFound
	}
	if err != nil {
		return boardfile.Document{}, err
	}
	var doc boardfile.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return boardfile.Document{}, err
	}
	return doc, nil
}

// List returns all snapshot names in the directory.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

// Delete removes the snapshot file.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for file stores.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
