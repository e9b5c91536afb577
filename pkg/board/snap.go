package board

import (
	"github.com/matzehuels/snapdock/pkg/geom"
	"github.com/matzehuels/snapdock/pkg/observability"
)

// Snap resolution. On release, the dragged chain either splices into an
// existing chain, attaches under some block, attaches above some chain's
// tail, or stays exactly where the pointer left it. Candidates are evaluated
// in strict priority order and within each tier in board insertion order; the
// first match wins and no further candidates are considered.

// ResolveSnap decides whether and where the dragged chain attaches, mutating
// the chain links and positions accordingly. stack must be the dragged
// chain's block IDs in head-to-tail order. Returns true if a snap occurred.
// An empty or stale stack is a no-op.
func (b *Board) ResolveSnap(stack []string) bool {
	if len(stack) == 0 {
		return false
	}
	first, ok := b.blocks[stack[0]]
	if !ok {
		return false
	}
	last, ok := b.blocks[stack[len(stack)-1]]
	if !ok {
		return false
	}

	inStack := make(map[string]bool, len(stack))
	for _, id := range stack {
		inStack[id] = true
	}

	if b.resolveInsertion(first, last, inStack) {
		return true
	}
	if b.resolveAppendBelow(last, inStack) {
		return true
	}
	return b.resolveAppendAbove(first, inStack)
}

// resolveInsertion splices the dragged chain between a connected pair T→B
// when the dragged head sits within tolerance of the gap between T's bottom
// edge and B's top edge and overlaps T horizontally.
func (b *Board) resolveInsertion(first, last *Block, inStack map[string]bool) bool {
	for _, id := range b.order {
		top := b.blocks[id]
		if inStack[top.ID] || top.NextID == "" || inStack[top.NextID] {
			continue
		}
		bottom, ok := b.blocks[top.NextID]
		if !ok {
			continue
		}

		gapTop := top.Y + top.H
		if !(gapTop-b.tolerance < first.Y && first.Y < bottom.Y+b.tolerance) {
			continue
		}
		if !first.Rect().OverlapsX(top.Rect()) {
			continue
		}

		b.Connect(top.ID, first.ID)
		b.Connect(last.ID, bottom.ID)
		b.MoveTo(first.ID, top.X, gapTop)
		b.RestackFrom(first.ID, gapTop)
		observability.Board().OnSnap("insert", top.ID, first.ID)
		return true
	}
	return false
}

// resolveAppendBelow attaches the dragged chain's tail immediately above some
// target block (the dragged chain ends up on top of the target's chain).
func (b *Board) resolveAppendBelow(last *Block, inStack map[string]bool) bool {
	for _, id := range b.order {
		target := b.blocks[id]
		if inStack[target.ID] {
			continue
		}
		if geom.SnapSide(last.Rect(), target.Rect(), b.tolerance) != geom.SideTop {
			continue
		}

		b.MoveTo(last.ID, target.X, target.Y-last.H)
		b.Connect(last.ID, target.ID)
		b.RestackFrom(target.ID, target.Y)
		observability.Board().OnSnap("append-below", last.ID, target.ID)
		return true
	}
	return false
}

// resolveAppendAbove attaches the dragged chain's head under the tail of some
// other chain (the dragged chain ends up hanging below it).
func (b *Board) resolveAppendAbove(first *Block, inStack map[string]bool) bool {
	for _, id := range b.order {
		target := b.blocks[id]
		if inStack[target.ID] {
			continue
		}
		tail := b.TailOf(target.ID)
		if tail == nil || inStack[tail.ID] {
			continue
		}
		if geom.SnapSide(first.Rect(), tail.Rect(), b.tolerance) != geom.SideBottom {
			continue
		}

		y := tail.Y + tail.H
		b.MoveTo(first.ID, tail.X, y)
		b.Connect(tail.ID, first.ID)
		b.RestackFrom(first.ID, y)
		observability.Board().OnSnap("append-above", tail.ID, first.ID)
		return true
	}
	return false
}
