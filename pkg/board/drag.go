package board

import (
	"slices"

	"github.com/matzehuels/snapdock/pkg/geom"
	"github.com/matzehuels/snapdock/pkg/observability"
)

// DragSession is the transient record of an in-progress pointer-driven move.
// It exists only between a pointer-down that hit a block and the matching
// pointer-up, and is destroyed unconditionally on pointer-up.
type DragSession struct {
	// GrabbedID is the block under the pointer at grab time.
	GrabbedID string `json:"grabbed_id"`

	// StackIDs is the grabbed block followed by its full descendant chain in
	// head-to-tail order. The stack moves as one rigid unit.
	StackIDs []string `json:"stack_ids"`

	// Offset is the pointer position minus the grabbed block's top-left at
	// grab time, so the block doesn't jump under the cursor.
	Offset geom.Point `json:"offset"`
}

// InStack reports whether the block id rides along with this drag.
func (s *DragSession) InStack(id string) bool {
	return s != nil && slices.Contains(s.StackIDs, id)
}

// Controller owns the board, the optional drag session, the hovered block and
// the advisory collision snapshot, and exposes the three pointer entry points
// as its only mutators. Hosts call the entry points with surface-local
// coordinates (already translated from device coordinates) and repaint
// whenever TakeRedraw reports true.
//
// Controller is single-threaded: each entry point runs to completion before
// the next event is delivered, and no partial state is ever observable.
type Controller struct {
	board      *Board
	session    *DragSession
	hovered    string
	collisions []Collision
	redraw     bool
}

// NewController creates a controller over the given board.
func NewController(b *Board) *Controller {
	return &Controller{board: b}
}

// Board returns the underlying board.
func (c *Controller) Board() *Board { return c.board }

// Session returns the active drag session, or nil.
func (c *Controller) Session() *DragSession { return c.session }

// Hovered returns the id of the block currently under the pointer, or "".
func (c *Controller) Hovered() string { return c.hovered }

// Collisions returns the collision snapshot taken at the last pointer-down.
// It is recomputed wholesale on each grab, never incrementally patched.
func (c *Controller) Collisions() []Collision { return c.collisions }

// TakeRedraw reports whether state changed since the last call and resets the
// flag. Hosts use it as the on-demand redraw signal after each event.
func (c *Controller) TakeRedraw() bool {
	r := c.redraw
	c.redraw = false
	return r
}

// Reset replaces the controller's board and drops all transient state.
func (c *Controller) Reset(b *Board) {
	c.board = b
	c.session = nil
	c.hovered = ""
	c.collisions = nil
	c.redraw = true
}

// PointerDown begins a drag if a block is under the pointer. Grabbing a block
// pulls it out of whatever it was attached above while keeping everything
// attached below it. A pointer-down during an active drag replaces the
// session. On a miss the session and collision snapshot are cleared.
func (c *Controller) PointerDown(x, y float64) {
	c.redraw = true
	p := geom.Point{X: x, Y: y}

	hit, ok := c.board.HitTest(p)
	if !ok {
		c.session = nil
		c.collisions = nil
		return
	}

	if above, ok := c.board.Above(hit.ID); ok {
		c.board.Disconnect(hit.ID)
		observability.Board().OnDetach(hit.ID, above.ID)
	}

	stack := append([]string{hit.ID}, c.board.DescendantsBelow(hit.ID)...)
	c.session = &DragSession{
		GrabbedID: hit.ID,
		StackIDs:  stack,
		Offset:    p.Sub(hit.Pos()),
	}
	c.collisions = c.board.Collisions()
	observability.Board().OnPointerDown(hit.ID, len(stack))
}

// PointerMove repositions the dragged stack (if a drag is active) and always
// refreshes the hovered block. Hovering is an independent hit-test against
// the live pointer position, not gated by drag state.
func (c *Controller) PointerMove(x, y float64) {
	p := geom.Point{X: x, Y: y}

	hovered := ""
	if hit, ok := c.board.HitTest(p); ok {
		hovered = hit.ID
	}
	if hovered != c.hovered {
		c.hovered = hovered
		c.redraw = true
	}

	if c.session == nil {
		return
	}
	if _, ok := c.board.Block(c.session.GrabbedID); !ok {
		// Stale session referencing a block no longer present.
		return
	}
	target := p.Sub(c.session.Offset)
	c.board.MoveTo(c.session.GrabbedID, target.X, target.Y)
	c.redraw = true
}

// PointerUp runs snap resolution for the dragged stack and then destroys the
// session and collision snapshot unconditionally, whether or not a snap
// occurred. A pointer-up with no active session is a no-op.
func (c *Controller) PointerUp() {
	if c.session == nil {
		return
	}
	snapped := c.board.ResolveSnap(c.session.StackIDs)
	observability.Board().OnPointerUp(c.session.GrabbedID, snapped)
	c.session = nil
	c.collisions = nil
	c.redraw = true
}
