package board

import (
	"testing"

	"github.com/matzehuels/snapdock/pkg/geom"
)

func TestCollisionsEmpty(t *testing.T) {
	b := testBoard(t, 20,
		Block{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		Block{ID: "b", X: 500, Y: 500, W: 100, H: 50},
	)
	if got := b.Collisions(); len(got) != 0 {
		t.Errorf("Collisions = %v, want none", got)
	}
}

func TestCollisionsBothDirections(t *testing.T) {
	// b sits exactly under a: a would attach to b's top, b to a's bottom.
	b := testBoard(t, 20,
		Block{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		Block{ID: "b", X: 0, Y: 50, W: 100, H: 50},
	)

	got := b.Collisions()
	if len(got) != 2 {
		t.Fatalf("Collisions = %v, want 2 records", got)
	}

	want := []Collision{
		{BlockID: "a", OtherID: "b", Side: geom.SideTop},
		{BlockID: "b", OtherID: "a", Side: geom.SideBottom},
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Collisions[%d] = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestCollisionsInsertionOrder(t *testing.T) {
	// Three stacked blocks: records must come out grouped by the earlier
	// block of each pair, in insertion order.
	b := testBoard(t, 20,
		Block{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		Block{ID: "b", X: 0, Y: 50, W: 100, H: 50},
		Block{ID: "c", X: 0, Y: 100, W: 100, H: 50},
	)

	got := b.Collisions()
	// Pairs scanned: (a,b), (a,c), (b,c). (a,c) is 100 apart vertically, out
	// of range, so four records remain.
	if len(got) != 4 {
		t.Fatalf("Collisions = %v, want 4 records", got)
	}
	if got[0].BlockID != "a" || got[1].BlockID != "b" {
		t.Errorf("first pair = %+v, %+v; want the a/b pair first", got[0], got[1])
	}
}

func TestCollisionsRespectTolerance(t *testing.T) {
	mk := func(tol float64) *Board {
		return testBoard(t, tol,
			Block{ID: "a", X: 0, Y: 0, W: 100, H: 50},
			Block{ID: "b", X: 0, Y: 60, W: 100, H: 50}, // 10-unit gap
		)
	}

	if got := mk(20).Collisions(); len(got) == 0 {
		t.Error("10-unit gap at tolerance 20: want collisions")
	}
	if got := mk(5).Collisions(); len(got) != 0 {
		t.Errorf("10-unit gap at tolerance 5: got %v, want none", got)
	}
}
