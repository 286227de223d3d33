// Package broadphase wires tree.Tree into the move-buffering,
// pair-generation layer that sits directly on top of it — an external
// collaborator kept just outside the tree core itself.
package broadphase

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
	"github.com/ishan-karmakar/rp3d-vendordep/query"
	"github.com/ishan-karmakar/rp3d-vendordep/tree"
	"github.com/samber/lo"
)

// Pair is an unordered pair of leaves whose fat AABBs overlap, reported
// with the lower-valued id first so duplicate pairs compare equal.
type Pair struct {
	A, B tree.NodeID
}

func newPair(x, y tree.NodeID) Pair {
	if x < y {
		return Pair{A: x, B: y}
	}
	return Pair{A: y, B: x}
}

// Phase is the broad-phase layer: a tree.Tree plus the move buffer and
// pair-generation bookkeeping from CollisionB2BroadPhase.go's
// B2BroadPhase, generalized to 3D and rebuilt on tree's public API
// instead of reaching into its internals.
type Phase struct {
	tree *tree.Tree

	moveBuffer []tree.NodeID
	queryID    tree.NodeID
	pairs      []Pair
}

// New constructs an empty broad phase over a freshly built tree.Tree.
func New(opts ...tree.Option) *Phase {
	return &Phase{tree: tree.New(opts...)}
}

// CreateProxy inserts a new leaf for tightAABB and buffers it for pair
// generation on the next UpdatePairs. Grounded on B2BroadPhase.CreateProxy.
func (p *Phase) CreateProxy(payload any, tightAABB aabb.AABB) tree.NodeID {
	id := p.tree.Insert(payload, tightAABB)
	p.bufferMove(id)
	return id
}

// DestroyProxy removes a previously created leaf, unbuffering it from any
// pending move. Grounded on B2BroadPhase.DestroyProxy.
func (p *Phase) DestroyProxy(id tree.NodeID) {
	p.unbufferMove(id)
	p.tree.Remove(id)
}

// MoveProxy updates a leaf's tight AABB/displacement and, if the tree
// actually reinserted it, buffers it for pair generation. Grounded on
// B2BroadPhase.MoveProxy.
func (p *Phase) MoveProxy(id tree.NodeID, newTightAABB aabb.AABB, displacement r3.Vector) {
	if p.tree.Update(id, newTightAABB, displacement) {
		p.bufferMove(id)
	}
}

// TouchProxy forces id into the move buffer without changing its AABB —
// useful when a payload's pairing relevance changed without motion.
// Grounded on B2BroadPhase.TouchProxy.
func (p *Phase) TouchProxy(id tree.NodeID) {
	p.bufferMove(id)
}

func (p *Phase) bufferMove(id tree.NodeID) {
	p.moveBuffer = append(p.moveBuffer, id)
}

func (p *Phase) unbufferMove(id tree.NodeID) {
	for i, buffered := range p.moveBuffer {
		if buffered == id {
			p.moveBuffer[i] = tree.NilNode
		}
	}
}

// UpdatePairs re-queries the tree for every buffered moved leaf,
// deduplicates the resulting candidate pairs, and invokes cb once per
// distinct pair, in ascending (A, B) order. Grounded on
// B2BroadPhase.UpdatePairs, with the dedup step built on samber/lo
// instead of a hand-rolled skip-adjacent-duplicates scan and the ordering
// done with sort.Slice.
func (p *Phase) UpdatePairs(cb func(a, b tree.NodeID)) {
	p.pairs = p.pairs[:0]

	for _, id := range p.moveBuffer {
		if id == tree.NilNode {
			continue
		}
		p.queryID = id
		fat := p.tree.AABB(id)
		query.Overlap(p.tree, fat, p.queryCallback)
	}
	p.moveBuffer = p.moveBuffer[:0]

	unique := lo.UniqBy(p.pairs, func(pr Pair) Pair { return pr })
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].A != unique[j].A {
			return unique[i].A < unique[j].A
		}
		return unique[i].B < unique[j].B
	})

	for _, pr := range unique {
		cb(pr.A, pr.B)
	}
}

func (p *Phase) queryCallback(other tree.NodeID) bool {
	if other == p.queryID {
		return true
	}
	p.pairs = append(p.pairs, newPair(p.queryID, other))
	return true
}

// Tree exposes the underlying tree for query code that needs direct
// structural access (e.g. a one-off ray cast) beyond pair generation.
func (p *Phase) Tree() *tree.Tree {
	return p.tree
}
