package tree

import "github.com/ishan-karmakar/rp3d-vendordep/aabb"

// Debug and introspection helpers, mirroring B2DynamicTree's
// ValidateStructure/ValidateMetrics/GetMaxBalance/GetAreaRatio/
// ComputeHeight. The Validate* checks and ComputeHeight recurse over the
// subtree of the node they are given; MaxBalance and AreaRatio scan every
// live record in the pool. Their checks panic through assertf rather than
// debugAssert, so they run regardless of how DebugChecks is set.

// ValidateStructure panics if any reachable node's parent/child links are
// inconsistent: every non-root's parent must point back at it, and a
// leaf must have no children.
func (t *Tree) ValidateStructure(id NodeID) {
	if id == NilNode {
		return
	}
	n := t.pool.get(id)
	if id == t.root {
		assertf(n.parent == NilNode, "ValidateStructure: root has a parent")
	}
	if n.isLeaf() {
		assertf(n.left == NilNode, "ValidateStructure: leaf %d has a left child", id)
		assertf(n.right == NilNode, "ValidateStructure: leaf %d has a right child", id)
		assertf(n.height == 0, "ValidateStructure: leaf %d has height %d", id, n.height)
		return
	}
	assertf(t.pool.get(n.left).parent == id, "ValidateStructure: left child of %d doesn't point back", id)
	assertf(t.pool.get(n.right).parent == id, "ValidateStructure: right child of %d doesn't point back", id)
	t.ValidateStructure(n.left)
	t.ValidateStructure(n.right)
}

// ValidateMetrics panics if any reachable internal node's cached height
// or AABB disagrees with what its children actually imply.
func (t *Tree) ValidateMetrics(id NodeID) {
	if id == NilNode {
		return
	}
	n := t.pool.get(id)
	if n.isLeaf() {
		return
	}
	left, right := t.pool.get(n.left), t.pool.get(n.right)
	wantHeight := 1 + max(left.height, right.height)
	assertf(n.height == wantHeight, "ValidateMetrics: node %d height %d, want %d", id, n.height, wantHeight)

	var merged aabb.AABB
	merged.MergeInto(left.box, right.box)
	assertf(merged == n.box, "ValidateMetrics: node %d aabb mismatch", id)

	t.ValidateMetrics(n.left)
	t.ValidateMetrics(n.right)
}

// MaxBalance returns the largest |left.height - right.height| over every
// live internal node.
func (t *Tree) MaxBalance() int {
	maxBalance := 0
	for _, n := range t.pool.records {
		if n.height <= 1 {
			continue
		}
		left, right := n.left, n.right
		bal := t.pool.height(right) - t.pool.height(left)
		if bal < 0 {
			bal = -bal
		}
		if bal > maxBalance {
			maxBalance = bal
		}
	}
	return maxBalance
}

// AreaRatio returns the ratio of the total volume of every live node's
// AABB to the root's volume — a proxy for how much "fat" padding and
// overlap the tree is carrying.
func (t *Tree) AreaRatio() float64 {
	if t.root == NilNode {
		return 0.0
	}
	rootVolume := t.pool.get(t.root).box.Volume()
	total := 0.0
	for _, n := range t.pool.records {
		total += n.box.Volume()
	}
	return total / rootVolume
}

// ComputeHeight recomputes id's subtree height from scratch, bypassing
// the cached height field — used by tests to detect a stale cache.
func (t *Tree) ComputeHeight(id NodeID) int {
	n := t.pool.get(id)
	if n.isLeaf() {
		return 0
	}
	return 1 + max(t.ComputeHeight(n.left), t.ComputeHeight(n.right))
}
