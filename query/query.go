package query

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
	"github.com/ishan-karmakar/rp3d-vendordep/tree"
)

// OverlapCallback is invoked once per leaf whose AABB overlaps the query
// box. Returning false stops the traversal early.
type OverlapCallback func(leaf tree.NodeID) bool

// Overlap enumerates every leaf in t whose stored AABB overlaps box,
// stopping early if cb returns false. Grounded on B2DynamicTree.Query,
// rebuilt entirely on the tree's public accessors since this layer lives
// outside the core.
func Overlap(t *tree.Tree, box aabb.AABB, cb OverlapCallback) {
	var s stack[tree.NodeID]
	s.push(t.Root())

	for !s.empty() {
		id := s.pop()
		if id == tree.NilNode {
			continue
		}
		if !aabb.Overlaps(t.AABB(id), box) {
			continue
		}
		if t.IsLeaf(id) {
			if !cb(id) {
				return
			}
			continue
		}
		left, right := t.Children(id)
		s.push(left)
		s.push(right)
	}
}

// RayCastInput describes a segment from P1 to P2, truncated to
// MaxFraction of the way from P1 to P2.
type RayCastInput struct {
	P1, P2      r3.Vector
	MaxFraction float64
}

// RayCastCallback is invoked once per leaf whose AABB the segment passes
// through. Returning a value <= 0 stops the cast entirely; returning a
// positive value shrinks MaxFraction to that value for the rest of the
// traversal, narrowing the segment as closer hits are found — the same
// callback protocol B2DynamicTree.RayCast uses.
type RayCastCallback func(leaf tree.NodeID, input RayCastInput) float64

// RayCast walks t looking for leaves whose AABB the segment in input
// passes through, narrowing the segment as cb reports closer hits.
// Grounded on B2DynamicTree.RayCast; the 2D perpendicular-distance
// separating-axis test is replaced with a standard 3D slab test since
// that trick is specific to 2D segments.
func RayCast(t *tree.Tree, input RayCastInput, cb RayCastCallback) {
	maxFraction := input.MaxFraction
	p1 := input.P1
	d := input.P2.Sub(p1)

	segment := segmentAABB(p1, d, maxFraction)

	var s stack[tree.NodeID]
	s.push(t.Root())

	for !s.empty() {
		id := s.pop()
		if id == tree.NilNode {
			continue
		}
		if !aabb.Overlaps(t.AABB(id), segment) {
			continue
		}
		if !slabIntersects(t.AABB(id), p1, d, maxFraction) {
			continue
		}

		if t.IsLeaf(id) {
			value := cb(id, RayCastInput{P1: p1, P2: input.P2, MaxFraction: maxFraction})
			if value <= 0.0 {
				return
			}
			maxFraction = value
			segment = segmentAABB(p1, d, maxFraction)
			continue
		}

		left, right := t.Children(id)
		s.push(left)
		s.push(right)
	}
}

func segmentAABB(p1, d r3.Vector, maxFraction float64) aabb.AABB {
	p2 := p1.Add(d.Mul(maxFraction))
	return aabb.Merge(aabb.New(p1, p1), aabb.New(p2, p2))
}

// slabIntersects is the standard ray/AABB slab test, restricted to the
// [0, maxFraction] parameter range.
func slabIntersects(box aabb.AABB, p1, d r3.Vector, maxFraction float64) bool {
	tmin, tmax := 0.0, maxFraction

	axes := [3]struct{ p1, d, lo, hi float64 }{
		{p1.X, d.X, box.Min.X, box.Max.X},
		{p1.Y, d.Y, box.Min.Y, box.Max.Y},
		{p1.Z, d.Z, box.Min.Z, box.Max.Z},
	}

	for _, ax := range axes {
		if math.Abs(ax.d) < 1e-12 {
			if ax.p1 < ax.lo || ax.p1 > ax.hi {
				return false
			}
			continue
		}
		inv := 1.0 / ax.d
		t1 := (ax.lo - ax.p1) * inv
		t2 := (ax.hi - ax.p1) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}
