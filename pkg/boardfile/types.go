package boardfile

import (
	"github.com/matzehuels/snapdock/pkg/board"
	snaperrors "github.com/matzehuels/snapdock/pkg/errors"
)

// =============================================================================
// Document - Canonical Board Serialization
// =============================================================================

// Document is the canonical serialization format for a board.
// Used for debug dumps, snapshot storage, HTTP responses, and visualization
// input. Blocks appear in board insertion order, which is also the rendering
// and snap-candidate scan order, so round-tripping preserves behavior.
type Document struct {
	Tolerance float64       `json:"tolerance,omitempty" bson:"tolerance,omitempty"`
	Blocks    []BlockRecord `json:"blocks" bson:"blocks"`
}

// BlockRecord is the serialized form of a single block.
type BlockRecord struct {
	ID     string  `json:"id" bson:"id"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`
	Next   string  `json:"next,omitempty" bson:"next,omitempty"`
}

// =============================================================================
// Board ↔ Document Conversion
// =============================================================================

// FromBoard converts a board to its serialization format.
// Blocks are emitted in insertion order for deterministic output.
func FromBoard(b *board.Board) Document {
	blocks := b.Blocks()
	doc := Document{
		Tolerance: b.Tolerance(),
		Blocks:    make([]BlockRecord, len(blocks)),
	}
	for i, blk := range blocks {
		doc.Blocks[i] = BlockRecord{
			ID:     blk.ID,
			X:      blk.X,
			Y:      blk.Y,
			Width:  blk.W,
			Height: blk.H,
			Color:  blk.Color,
			Next:   blk.NextID,
		}
	}
	return doc
}

// ToBoard converts a Document to a live board.
// Returns a structured error for duplicate IDs or non-positive dimensions.
// A Next reference to a nonexistent block is dropped rather than failing:
// the core treats dangling links as end-of-chain, so a truncated link is the
// faithful in-memory form.
func ToBoard(doc Document) (*board.Board, error) {
	b := board.New(doc.Tolerance)
	for _, rec := range doc.Blocks {
		_, err := b.AddBlock(board.Block{
			ID:    rec.ID,
			X:     rec.X,
			Y:     rec.Y,
			W:     rec.Width,
			H:     rec.Height,
			Color: rec.Color,
		})
		if err != nil {
			return nil, snaperrors.Wrap(snaperrors.ErrCodeInvalidBlock, err, "block %q", rec.ID)
		}
	}
	for _, rec := range doc.Blocks {
		if rec.Next != "" {
			b.Connect(rec.ID, rec.Next)
		}
	}
	return b, nil
}
