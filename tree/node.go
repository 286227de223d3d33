package tree

import "github.com/ishan-karmakar/rp3d-vendordep/aabb"

// NodeID identifies a node handle — a leaf returned by Insert, or an
// internal node visited transiently during a structural traversal. Ported
// from CollisionB2DynamicTree.go's use of a plain int proxyId; this
// package additionally guarantees a NodeID never changes identity except
// on its own removal (see DESIGN.md's pool identity note), which a
// direct-index scheme does not.
type NodeID int32

// NilNode is the sentinel "no node" value.
const NilNode NodeID = -1

// node is a fixed-size record: parent/left/right wiring, height
// bookkeeping, the node's (possibly fat) AABB, and its opaque payload.
// Mirrors CollisionB2DynamicTree.go's B2TreeNode, generalized to 3D.
type node struct {
	parent, left, right NodeID
	height              int
	box                 aabb.AABB
	payload             any
}

func (n *node) isLeaf() bool {
	return n.left == NilNode
}
