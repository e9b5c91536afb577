// Package geom provides the geometric primitives for the snapdock board:
// points, axis-aligned rectangles, inclusive containment tests, and the
// tolerance-based edge-alignment test that decides whether two blocks are
// close enough to snap together.
//
// All coordinates are real-valued, surface-local units with the origin at the
// top-left and Y increasing downward. The package is pure data and math; it
// knows nothing about blocks, chains, or rendering.
package geom

// DefaultTolerance is the snap tolerance in surface units. Two edges within
// this distance of each other are considered touching for connection purposes.
// The tolerance is tunable per board but must be consistent across all snap
// checks in one build.
const DefaultTolerance = 20.0

// Side identifies which edge of a target rectangle an active rectangle would
// attach to.
type Side int

const (
	// SideNone indicates the rectangles are not within snap tolerance.
	SideNone Side = iota
	// SideTop indicates the active rectangle would sit immediately above the
	// target (active's bottom edge near target's top edge).
	SideTop
	// SideBottom indicates the active rectangle would sit immediately below
	// the target (active's top edge near target's bottom edge).
	SideBottom
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// MarshalJSON encodes the side as its lowercase name, so debug dumps read
// "top"/"bottom" instead of bare integers.
func (s Side) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Point is a position in surface-local coordinates.
type Point struct {
	X float64
	Y float64
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle identified by its top-left corner and size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive, so the corners themselves are contained.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// OverlapsX reports whether the horizontal spans of the two rectangles
// intersect (touching edges count as overlapping).
func (r Rect) OverlapsX(o Rect) bool {
	return r.Right() >= o.X && r.X <= o.Right()
}

// SnapSide reports which side of target the active rectangle would snap to,
// or SideNone if the two are not within tolerance of each other.
//
// The rectangles are eligible only if their horizontal spans are aligned
// within tolerance on at least one edge pair (left edges or right edges).
// Given alignment, SideTop is reported when active's bottom edge is within
// tolerance of target's top edge, SideBottom when active's top edge is within
// tolerance of target's bottom edge. When both edges match, SideTop wins.
//
// The relation is not symmetric: SnapSide(a, b) reports where a attaches
// relative to b, which differs from SnapSide(b, a).
func SnapSide(active, target Rect, tolerance float64) Side {
	if tolerance < 0 {
		return SideNone
	}

	left := abs(active.X - target.X)
	right := abs(active.Right() - target.Right())
	if min(left, right) > tolerance {
		return SideNone
	}

	if abs(active.Bottom()-target.Y) <= tolerance {
		return SideTop
	}
	if abs(active.Y-target.Bottom()) <= tolerance {
		return SideBottom
	}
	return SideNone
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
