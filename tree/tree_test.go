package tree

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) aabb.AABB {
	return aabb.New(r3.Vector{X: minX, Y: minY, Z: minZ}, r3.Vector{X: maxX, Y: maxY, Z: maxZ})
}

func TestEmptyTree(t *testing.T) {
	tr := New()
	assert.Equal(t, NilNode, tr.Root())
	assert.Equal(t, 0, tr.NumUsed())
}

func TestInsertSingleLeaf(t *testing.T) {
	tr := New()
	id := tr.Insert("payload", box(0, 0, 0, 1, 1, 1))

	require.Equal(t, id, tr.Root())
	assert.True(t, tr.IsLeaf(id))
	assert.Equal(t, 0, tr.Height(id))
	assert.Equal(t, "payload", tr.Payload(id))
	assert.Equal(t, box(-DefaultGap, -DefaultGap, -DefaultGap, 1+DefaultGap, 1+DefaultGap, 1+DefaultGap), tr.AABB(id))
}

func TestInsertTwoLeaves(t *testing.T) {
	tr := New()
	a := tr.Insert("a", box(0, 0, 0, 1, 1, 1))
	b := tr.Insert("b", box(10, 0, 0, 11, 1, 1))

	root := tr.Root()
	assert.NotEqual(t, a, root)
	assert.NotEqual(t, b, root)
	assert.False(t, tr.IsLeaf(root))
	assert.Equal(t, 1, tr.Height(root))

	left, right := tr.Children(root)
	assert.ElementsMatch(t, []NodeID{a, b}, []NodeID{left, right})

	want := aabb.Merge(tr.AABB(a), tr.AABB(b))
	assert.Equal(t, want, tr.AABB(root))
}

func TestInsertThirdLeafKeepsBalance(t *testing.T) {
	tr := New()
	tr.Insert("a", box(0, 0, 0, 1, 1, 1))
	tr.Insert("b", box(10, 0, 0, 11, 1, 1))
	tr.Insert("c", box(20, 0, 0, 21, 1, 1))

	assert.Equal(t, 2, tr.Height(tr.Root()))
	assert.LessOrEqual(t, tr.MaxBalance(), 1)
	tr.ValidateStructure(tr.Root())
	tr.ValidateMetrics(tr.Root())
}

func TestRemoveRootLeaf(t *testing.T) {
	tr := New()
	id := tr.Insert("a", box(0, 0, 0, 1, 1, 1))
	tr.Remove(id)
	assert.Equal(t, NilNode, tr.Root())
	assert.Equal(t, 0, tr.NumUsed())
}

func TestRemoveLeafSplicesParent(t *testing.T) {
	tr := New()
	a := tr.Insert("a", box(0, 0, 0, 1, 1, 1))
	b := tr.Insert("b", box(10, 0, 0, 11, 1, 1))

	tr.Remove(a)
	assert.Equal(t, b, tr.Root())
	assert.True(t, tr.IsLeaf(tr.Root()))
	assert.Equal(t, 1, tr.NumUsed())
}

func TestIdentityStableAcrossOtherOperations(t *testing.T) {
	tr := New()
	first := tr.Insert("first", box(0, 0, 0, 1, 1, 1))

	others := make([]NodeID, 0, 50)
	for i := 0; i < 50; i++ {
		base := float64(i) * 5
		others = append(others, tr.Insert(i, box(base, base, base, base+1, base+1, base+1)))
	}

	assert.True(t, tr.IsLeaf(first))
	assert.Equal(t, "first", tr.Payload(first))

	// Remove a handful of other leaves; first must still be untouched.
	for _, id := range others[:25] {
		tr.Remove(id)
	}
	assert.True(t, tr.IsLeaf(first))
	assert.Equal(t, "first", tr.Payload(first))
}

func TestUpdateWithinFatAABBIsNoop(t *testing.T) {
	tr := New()
	id := tr.Insert("a", box(0, 0, 0, 1, 1, 1))

	reinserted := tr.Update(id, box(0.01, 0, 0, 1.01, 1, 1), r3.Vector{})
	assert.False(t, reinserted)
	assert.Equal(t, "a", tr.Payload(id))
}

func TestUpdateOutsideFatAABBReinsertsWithAsymmetricPadding(t *testing.T) {
	tr := New(WithGap(0.1), WithDisplacementMultiplier(2.0))
	id := tr.Insert("a", box(0, 0, 0, 1, 1, 1))

	reinserted := tr.Update(id, box(5, 0, 0, 6, 1, 1), r3.Vector{X: 5, Y: 0, Z: 0})
	assert.True(t, reinserted)
	assert.Equal(t, "a", tr.Payload(id))

	got := tr.AABB(id)
	assert.InDelta(t, 5-0.1, got.Min.X, 1e-9)
	assert.InDelta(t, 6+2.0*5+0.1, got.Max.X, 1e-9)
	assert.InDelta(t, 0-0.1, got.Min.Y, 1e-9)
	assert.InDelta(t, 1+0.1, got.Max.Y, 1e-9)
}

func TestValidateMetricsOnGrownTree(t *testing.T) {
	tr := New()
	for i := 0; i < 200; i++ {
		base := float64(i)
		tr.Insert(i, box(base, 0, 0, base+1, 1, 1))
	}
	tr.ValidateStructure(tr.Root())
	tr.ValidateMetrics(tr.Root())
	assert.LessOrEqual(t, tr.MaxBalance(), 1)
	assert.Equal(t, tr.ComputeHeight(tr.Root()), tr.Height(tr.Root()))
}
