package board

import (
	"errors"

	"github.com/google/uuid"

	"github.com/matzehuels/snapdock/pkg/geom"
)

var (
	// ErrDuplicateBlockID is returned by [Board.AddBlock] when a block with
	// the same ID already exists. Block IDs are stable and never reused.
	ErrDuplicateBlockID = errors.New("duplicate block ID")

	// ErrNonPositiveSize is returned by [Board.AddBlock] when the block's
	// width or height is zero or negative. Block dimensions are immutable
	// after creation and must be positive.
	ErrNonPositiveSize = errors.New("block width and height must be positive")
)

// Block is a rectangle with identity. Only X, Y, and NextID mutate after
// creation, and only through the operations on [Board] and [Controller].
//
// NextID names the block immediately below this one in its chain, or is empty
// for a chain tail. The relation forms a forest of simple singly-linked
// chains: at most one block points at any given block, and no cycles exist.
// [Board.Connect] enforces the in-edge half of that invariant; traversals are
// step-bounded so that a violated invariant degrades to a truncated walk, not
// an unbounded loop.
type Block struct {
	ID     string
	X      float64
	Y      float64
	W      float64
	H      float64
	Color  string // display-only, ignored by all connectivity logic
	NextID string
}

// Rect returns the block's rectangle in surface coordinates.
func (b *Block) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Pos returns the block's top-left corner.
func (b *Block) Pos() geom.Point {
	return geom.Point{X: b.X, Y: b.Y}
}

// Board is the full in-memory block set. Blocks are indexed by ID and keep a
// stable insertion order, which doubles as the scan order for hit-testing and
// snap-candidate resolution.
//
// The zero value is not usable - use New. Board is single-threaded by design:
// one pointer event is processed to completion before the next is accepted.
type Board struct {
	blocks    map[string]*Block
	order     []string
	tolerance float64
}

// New creates an empty board with the given snap tolerance.
// A negative tolerance is treated as zero (nothing ever snaps).
func New(tolerance float64) *Board {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Board{
		blocks:    make(map[string]*Block),
		tolerance: tolerance,
	}
}

// Tolerance returns the board's snap tolerance in surface units.
func (b *Board) Tolerance() float64 { return b.tolerance }

// AddBlock adds a block to the board and returns the stored copy.
// An empty ID is replaced with a generated UUID. Returns ErrDuplicateBlockID
// if the ID is already taken, or ErrNonPositiveSize for degenerate dimensions.
func (b *Board) AddBlock(blk Block) (*Block, error) {
	if blk.W <= 0 || blk.H <= 0 {
		return nil, ErrNonPositiveSize
	}
	if blk.ID == "" {
		blk.ID = uuid.NewString()
	}
	if _, exists := b.blocks[blk.ID]; exists {
		return nil, ErrDuplicateBlockID
	}
	stored := &blk
	b.blocks[stored.ID] = stored
	b.order = append(b.order, stored.ID)
	return stored, nil
}

// Block returns the block with the given ID and true, or nil and false.
// The returned pointer refers to the live block; position and NextID
// modifications should go through the Board operations instead.
func (b *Board) Block(id string) (*Block, bool) {
	blk, ok := b.blocks[id]
	return blk, ok
}

// Blocks returns all blocks in insertion order.
func (b *Board) Blocks() []*Block {
	out := make([]*Block, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.blocks[id])
	}
	return out
}

// Len returns the number of blocks on the board.
func (b *Board) Len() int { return len(b.blocks) }

// HitTest returns the topmost block containing the point, honoring the
// rendering order contract: later-added blocks draw in front, so the scan
// runs back-to-front over the insertion order. Returns nil, false on a miss.
func (b *Board) HitTest(p geom.Point) (*Block, bool) {
	for i := len(b.order) - 1; i >= 0; i-- {
		blk := b.blocks[b.order[i]]
		if blk.Rect().Contains(p) {
			return blk, true
		}
	}
	return nil, false
}

// seedColors are the display colors cycled through by Seed.
var seedColors = []string{"indianred", "steelblue", "seagreen", "goldenrod", "mediumpurple"}

// Seed returns the fixed demo board: five 200x50 blocks at staggered
// positions, unconnected. Used by the CLI when no configuration supplies a
// block set.
func Seed(tolerance float64) *Board {
	b := New(tolerance)
	for i := 0; i < 5; i++ {
		// Stagger the starting positions so nothing starts within tolerance.
		_, _ = b.AddBlock(Block{
			ID:    seedColors[i],
			X:     float64(40 + i*60),
			Y:     float64(40 + i*90),
			W:     200,
			H:     50,
			Color: seedColors[i],
		})
	}
	return b
}
