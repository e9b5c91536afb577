package board

// Chain traversal over the NextID relation. Every walk in this file is
// iterative and bounded by the total block count, so a dangling NextID (the
// target no longer exists) or a violated acyclicity invariant ends the walk
// as if the chain stopped there.

// Above returns the block, if any, whose NextID points at id.
// With the in-edge uniqueness invariant intact there is at most one; the scan
// runs in insertion order and returns the first match.
func (b *Board) Above(id string) (*Block, bool) {
	for _, candidate := range b.order {
		blk := b.blocks[candidate]
		if blk.NextID == id && blk.ID != id {
			return blk, true
		}
	}
	return nil, false
}

// DescendantsBelow returns the IDs of every block connected below id, in
// head-to-tail order, excluding id itself. An unknown id yields nil.
func (b *Board) DescendantsBelow(id string) []string {
	blk, ok := b.blocks[id]
	if !ok {
		return nil
	}

	var out []string
	cur := blk
	for steps := 0; steps < len(b.blocks); steps++ {
		next, ok := b.blocks[cur.NextID]
		if !ok {
			break
		}
		out = append(out, next.ID)
		cur = next
	}
	return out
}

// TailOf returns the last block reachable from id by following NextID links,
// which is id's own block when it has no successor. Returns nil for an
// unknown id.
func (b *Board) TailOf(id string) *Block {
	blk, ok := b.blocks[id]
	if !ok {
		return nil
	}
	cur := blk
	for steps := 0; steps < len(b.blocks); steps++ {
		next, ok := b.blocks[cur.NextID]
		if !ok {
			break
		}
		cur = next
	}
	return cur
}

// Connect links top directly above bottom. If bottom already had a
// predecessor, that edge is cleared first so every block keeps at most one
// in-edge. Unknown IDs and self-links are silent no-ops.
func (b *Board) Connect(topID, bottomID string) {
	top, ok := b.blocks[topID]
	if !ok || topID == bottomID {
		return
	}
	if _, ok := b.blocks[bottomID]; !ok {
		return
	}
	b.Disconnect(bottomID)
	top.NextID = bottomID
}

// Disconnect clears whichever edge currently points at id, leaving id a chain
// head. No-op if no block points at id.
func (b *Board) Disconnect(id string) {
	for _, candidate := range b.order {
		blk := b.blocks[candidate]
		if blk.NextID == id && blk.ID != id {
			blk.NextID = ""
			return
		}
	}
}
