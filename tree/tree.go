// Package tree implements the dynamic bounding-volume hierarchy used as
// the broad-phase acceleration structure for a 3D collision-detection
// engine: a self-balancing binary tree of AABBs over opaque leaf
// payloads, with a free-list-backed pool, surface-area-cost insertion,
// parent-splicing removal, and single-rotation AVL-style rebalancing.
//
// Ported from CollisionB2DynamicTree.go's B2DynamicTree, generalized from
// 2D perimeter cost to 3D volume cost and from a direct-index node pool
// to a handle-indirected one (see DESIGN.md).
package tree

import (
	"github.com/golang/geo/r3"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
)

// Tree is a dynamic AABB tree. The zero value is not usable; construct
// one with New.
type Tree struct {
	pool *pool
	root NodeID

	gap                    float64
	displacementMultiplier float64

	insertionCount int
}

// New constructs an empty Tree with the given options applied over the
// defaults (DefaultGap, DefaultDisplacementMultiplier).
func New(opts ...Option) *Tree {
	t := &Tree{
		pool:                   newPool(),
		root:                   NilNode,
		gap:                    DefaultGap,
		displacementMultiplier: DefaultDisplacementMultiplier,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root node's handle, or NilNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// NumUsed reports how many node records — leaves plus internal nodes —
// are currently live.
func (t *Tree) NumUsed() int {
	return t.pool.numUsed()
}

// NumAllocated reports the pool's current backing-array capacity.
func (t *Tree) NumAllocated() int {
	return t.pool.numAllocated
}

// AABB returns id's stored bounding box: the fat AABB for a leaf, the
// tight union of children for an internal node.
func (t *Tree) AABB(id NodeID) aabb.AABB {
	return t.pool.get(id).box
}

// IsLeaf reports whether id names a leaf node.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.pool.get(id).isLeaf()
}

// Children returns id's two children. Calling it on a leaf is a
// programmer error.
func (t *Tree) Children(id NodeID) (left, right NodeID) {
	n := t.pool.get(id)
	debugAssert(!n.isLeaf(), "Children: node %d is a leaf", id)
	return n.left, n.right
}

// Payload returns a leaf's opaque payload. Calling it on an internal node
// is a programmer error.
func (t *Tree) Payload(id NodeID) any {
	n := t.pool.get(id)
	debugAssert(n.isLeaf(), "Payload: node %d is not a leaf", id)
	return n.payload
}

// Height returns id's cached height (0 for a leaf, -1 for a handle that
// names no live node).
func (t *Tree) Height(id NodeID) int {
	return t.pool.height(id)
}

// Insert registers payload under tightAABB, padded into a fresh fat AABB,
// and returns the new leaf's handle. Grounded on
// B2DynamicTree.CreateProxy/InsertLeaf.
func (t *Tree) Insert(payload any, tightAABB aabb.AABB) NodeID {
	id := t.pool.allocate()
	n := t.pool.get(id)
	n.height = 0
	n.payload = payload
	n.box = tightAABB.Expanded(gapVec(t.gap))

	t.insertLeaf(id)
	return id
}

// Remove deletes a previously inserted leaf. id must name a live leaf.
// Grounded on B2DynamicTree.DestroyProxy/RemoveLeaf.
func (t *Tree) Remove(id NodeID) {
	n := t.pool.get(id)
	assertf(n.isLeaf(), "Remove: node %d is not a leaf", id)

	t.removeLeaf(id)
	t.pool.release(id)
}

// Update refreshes a leaf's fat AABB after its object moved to
// newTightAABB with the given frame displacement. It returns true iff the
// leaf was actually reinserted into the tree (the old fat AABB no longer
// contained the new tight box); id is unchanged either way. Grounded on
// B2DynamicTree.MoveProxy, generalized to 3D per ReactPhysics3D's
// DynamicAABBTree::updateObject.
func (t *Tree) Update(id NodeID, newTightAABB aabb.AABB, displacement r3.Vector) bool {
	n := t.pool.get(id)
	assertf(n.isLeaf(), "Update: node %d is not a leaf", id)

	if n.box.Contains(newTightAABB) {
		return false
	}

	t.removeLeaf(id)

	fat := newTightAABB.Expanded(gapVec(t.gap))
	dg := displacement.Mul(t.displacementMultiplier)
	fat = biasInDirectionOfMotion(fat, dg)

	// removeLeaf may have released a now-childless parent, which can
	// shrink the pool's backing array and invalidate n — re-fetch it.
	t.pool.get(id).box = fat
	t.insertLeaf(id)
	return true
}

func (t *Tree) insertLeaf(leaf NodeID) {
	t.insertionCount++

	if t.root == NilNode {
		t.root = leaf
		t.pool.get(leaf).parent = NilNode
		return
	}

	leafBox := t.pool.get(leaf).box
	index := t.root
	for !t.pool.get(index).isLeaf() {
		cur := t.pool.get(index)
		child1, child2 := cur.left, cur.right

		var merged aabb.AABB
		merged.MergeInto(cur.box, leafBox)
		combinedVolume := merged.Volume()
		costSibling := 2.0 * combinedVolume
		inheritance := 2.0 * (combinedVolume - cur.box.Volume())

		cost1 := childDescentCost(t.pool.get(child1), leafBox, inheritance)
		cost2 := childDescentCost(t.pool.get(child2), leafBox, inheritance)

		if costSibling < cost1 && costSibling < cost2 {
			break
		}

		if cost1 < cost2 {
			index = child1
		} else {
			index = child2
		}
	}

	sibling := index
	oldParent := t.pool.get(sibling).parent

	// allocate may grow the pool's backing array, invalidating any *node
	// obtained before this call — re-fetch sibling's record afterward
	// rather than holding a pointer across it.
	newParent := t.pool.allocate()
	siblingNode := t.pool.get(sibling)
	np := t.pool.get(newParent)
	np.parent = oldParent
	np.height = siblingNode.height + 1
	np.box.MergeInto(leafBox, siblingNode.box)
	np.left = sibling
	np.right = leaf

	siblingNode.parent = newParent
	t.pool.get(leaf).parent = newParent

	if oldParent != NilNode {
		parentNode := t.pool.get(oldParent)
		if parentNode.left == sibling {
			parentNode.left = newParent
		} else {
			parentNode.right = newParent
		}
	} else {
		t.root = newParent
	}

	t.fixupAncestors(t.pool.get(leaf).parent)
}

func (t *Tree) removeLeaf(leaf NodeID) {
	if leaf == t.root {
		t.root = NilNode
		return
	}

	parent := t.pool.get(leaf).parent
	parentNode := t.pool.get(parent)
	grand := parentNode.parent

	var sibling NodeID
	if parentNode.left == leaf {
		sibling = parentNode.right
	} else {
		sibling = parentNode.left
	}

	if grand != NilNode {
		grandNode := t.pool.get(grand)
		if grandNode.left == parent {
			grandNode.left = sibling
		} else {
			grandNode.right = sibling
		}
		t.pool.get(sibling).parent = grand
		t.pool.release(parent)

		t.fixupAncestors(grand)
	} else {
		t.root = sibling
		t.pool.get(sibling).parent = NilNode
		t.pool.release(parent)
	}
}

// fixupAncestors walks from index to the root, rebalancing and
// recomputing height/AABB at each ancestor. Shared by insertLeaf (walk
// starts at the new leaf's parent) and removeLeaf (walk starts at the
// grandparent).
func (t *Tree) fixupAncestors(index NodeID) {
	for index != NilNode {
		index = t.balance(index)

		n := t.pool.get(index)
		left, right := t.pool.get(n.left), t.pool.get(n.right)
		n.height = 1 + max(left.height, right.height)
		n.box.MergeInto(left.box, right.box)

		index = n.parent
	}
}

func childDescentCost(child *node, leafBox aabb.AABB, inheritance float64) float64 {
	var merged aabb.AABB
	merged.MergeInto(leafBox, child.box)
	if child.isLeaf() {
		return merged.Volume() + inheritance
	}
	return merged.Volume() - child.box.Volume() + inheritance
}
