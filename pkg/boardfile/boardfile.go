// Package boardfile provides the canonical JSON serialization for boards.
//
// A board serializes to a [Document]: the snap tolerance plus every block's
// geometry, color, and chain link, in insertion order. The format is
// human-readable and round-trip faithful: dump → load produces a board with
// identical behavior. Documents carry bson tags as well, so the mongo
// snapshot store persists them without a parallel type.
package boardfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/snapdock/pkg/board"
)

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a board to indented JSON bytes.
func Marshal(b *board.Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(b, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a board as JSON to an io.Writer.
func Write(b *board.Board, w io.Writer) error {
	return writeTo(b, w)
}

// WriteFile writes a board to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(b, f)
}

// Read decodes a JSON document from an io.Reader into a live board.
func Read(r io.Reader) (*board.Board, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToBoard(doc)
}

// ReadFile reads a JSON file and returns the decoded board.
func ReadFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ReadDocumentFile reads a JSON file into a Document without instantiating a
// board. Used by surfaces that only need the serialized form (visualization,
// snapshot upload).
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(b *board.Board, w io.Writer) error {
	doc := FromBoard(b)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
