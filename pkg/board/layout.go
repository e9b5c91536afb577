package board

// Position propagation. Moving any member of a chain must leave the whole
// chain rendering as one contiguous, x-aligned vertical stack with zero
// inter-block gaps, no matter which member moved.

// MoveTo writes (x, y) onto the block and propagates positions through its
// chain: every ancestor stacks immediately above (child y minus ancestor
// height), every descendant immediately below (running y cursor advanced by
// each block's height). The whole chain shares the new x coordinate.
// An unknown id is a silent no-op.
func (b *Board) MoveTo(id string, x, y float64) {
	blk, ok := b.blocks[id]
	if !ok {
		return
	}
	blk.X = x
	blk.Y = y

	// Upward: each ancestor sits touching on top of its child.
	cur := blk
	for steps := 0; steps < len(b.blocks); steps++ {
		anc, ok := b.Above(cur.ID)
		if !ok {
			break
		}
		anc.Y = cur.Y - anc.H
		anc.X = x
		cur = anc
	}

	// Downward: descendants stack under the moved block.
	b.RestackFrom(blk.NextID, y+blk.H)
	b.alignXBelow(blk, x)
}

// RestackFrom re-lays-out the Y coordinates of a chain starting at the block
// with the given id placed at startY, advancing by each block's height down
// the NextID links. X coordinates are untouched. Unknown or dangling ids end
// the walk silently, exactly as DescendantsBelow does.
func (b *Board) RestackFrom(id string, startY float64) {
	cur, ok := b.blocks[id]
	if !ok {
		return
	}
	y := startY
	for steps := 0; steps <= len(b.blocks); steps++ {
		cur.Y = y
		y += cur.H
		next, ok := b.blocks[cur.NextID]
		if !ok {
			return
		}
		cur = next
	}
}

// alignXBelow writes x onto every descendant of blk.
func (b *Board) alignXBelow(blk *Block, x float64) {
	cur := blk
	for steps := 0; steps < len(b.blocks); steps++ {
		next, ok := b.blocks[cur.NextID]
		if !ok {
			return
		}
		next.X = x
		cur = next
	}
}
