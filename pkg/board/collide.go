package board

import "github.com/matzehuels/snapdock/pkg/geom"

// Collision records that BlockID is within snap tolerance of attaching to the
// given side of OtherID. Collisions are purely advisory: they drive visual
// highlighting and are never consulted by snap resolution itself.
type Collision struct {
	BlockID string    `json:"block_id"`
	OtherID string    `json:"other_id"`
	Side    geom.Side `json:"side"`
}

// Collisions scans every unordered block pair in both directions and returns
// one record per non-none direction, in insertion order. The scan is O(n²),
// which is fine at board scale (tens of blocks, not thousands).
func (b *Board) Collisions() []Collision {
	var out []Collision
	for i := 0; i < len(b.order); i++ {
		for j := i + 1; j < len(b.order); j++ {
			a := b.blocks[b.order[i]]
			c := b.blocks[b.order[j]]
			// The snap relation is not symmetric in which side it reports,
			// so both directions are tested.
			if side := geom.SnapSide(a.Rect(), c.Rect(), b.tolerance); side != geom.SideNone {
				out = append(out, Collision{BlockID: a.ID, OtherID: c.ID, Side: side})
			}
			if side := geom.SnapSide(c.Rect(), a.Rect(), b.tolerance); side != geom.SideNone {
				out = append(out, Collision{BlockID: c.ID, OtherID: a.ID, Side: side})
			}
		}
	}
	return out
}
