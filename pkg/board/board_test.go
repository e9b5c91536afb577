package board

import (
	"errors"
	"testing"

	"github.com/matzehuels/snapdock/pkg/geom"
)

// testBoard builds a board with the given blocks, failing the test on any
// AddBlock error.
func testBoard(t *testing.T, tolerance float64, blocks ...Block) *Board {
	t.Helper()
	b := New(tolerance)
	for _, blk := range blocks {
		if _, err := b.AddBlock(blk); err != nil {
			t.Fatalf("AddBlock(%q): %v", blk.ID, err)
		}
	}
	return b
}

func TestAddBlock(t *testing.T) {
	b := New(20)

	blk, err := b.AddBlock(Block{ID: "a", X: 0, Y: 0, W: 100, H: 50})
	if err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if blk.ID != "a" {
		t.Errorf("ID = %q, want %q", blk.ID, "a")
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestAddBlockGeneratesID(t *testing.T) {
	b := New(20)
	blk, err := b.AddBlock(Block{W: 100, H: 50})
	if err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if blk.ID == "" {
		t.Error("expected generated ID, got empty")
	}
	if _, ok := b.Block(blk.ID); !ok {
		t.Error("generated block not retrievable by ID")
	}
}

func TestAddBlockDuplicateID(t *testing.T) {
	b := testBoard(t, 20, Block{ID: "a", W: 100, H: 50})
	_, err := b.AddBlock(Block{ID: "a", W: 100, H: 50})
	if !errors.Is(err, ErrDuplicateBlockID) {
		t.Errorf("err = %v, want ErrDuplicateBlockID", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d after rejected add, want 1", b.Len())
	}
}

func TestAddBlockDegenerateSize(t *testing.T) {
	b := New(20)
	for _, blk := range []Block{
		{ID: "zero-w", W: 0, H: 50},
		{ID: "zero-h", W: 100, H: 0},
		{ID: "negative", W: -10, H: 50},
	} {
		if _, err := b.AddBlock(blk); !errors.Is(err, ErrNonPositiveSize) {
			t.Errorf("AddBlock(%q) err = %v, want ErrNonPositiveSize", blk.ID, err)
		}
	}
}

func TestBlocksOrder(t *testing.T) {
	b := testBoard(t, 20,
		Block{ID: "first", W: 10, H: 10},
		Block{ID: "second", W: 10, H: 10},
		Block{ID: "third", W: 10, H: 10},
	)

	got := b.Blocks()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, blk := range got {
		if blk.ID != want[i] {
			t.Errorf("Blocks()[%d] = %q, want %q", i, blk.ID, want[i])
		}
	}
}

func TestHitTest(t *testing.T) {
	// "under" added first, "over" second at the same spot: later blocks draw
	// in front and therefore win the hit-test.
	b := testBoard(t, 20,
		Block{ID: "under", X: 0, Y: 0, W: 100, H: 50},
		Block{ID: "over", X: 50, Y: 25, W: 100, H: 50},
	)

	tests := []struct {
		name   string
		p      geom.Point
		wantID string
		wantOK bool
	}{
		{"only under", geom.Point{X: 10, Y: 10}, "under", true},
		{"overlap region", geom.Point{X: 75, Y: 40}, "over", true},
		{"only over", geom.Point{X: 140, Y: 60}, "over", true},
		{"shared corner", geom.Point{X: 100, Y: 50}, "over", true},
		{"miss", geom.Point{X: 300, Y: 300}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk, ok := b.HitTest(tt.p)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && blk.ID != tt.wantID {
				t.Errorf("hit %q, want %q", blk.ID, tt.wantID)
			}
		})
	}
}

func TestNewNegativeTolerance(t *testing.T) {
	b := New(-5)
	if got := b.Tolerance(); got != 0 {
		t.Errorf("Tolerance = %v, want 0", got)
	}
}

func TestSeed(t *testing.T) {
	b := Seed(20)
	if b.Len() != 5 {
		t.Fatalf("Len = %d, want 5", b.Len())
	}
	for _, blk := range b.Blocks() {
		if blk.W != 200 || blk.H != 50 {
			t.Errorf("block %q size = %vx%v, want 200x50", blk.ID, blk.W, blk.H)
		}
		if blk.NextID != "" {
			t.Errorf("block %q starts connected to %q", blk.ID, blk.NextID)
		}
		if blk.Color == "" {
			t.Errorf("block %q has no color", blk.ID)
		}
	}
	// Nothing in the seed should start within snap range.
	if cols := b.Collisions(); len(cols) != 0 {
		t.Errorf("seed board has %d collisions, want 0", len(cols))
	}
}
