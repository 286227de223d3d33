package aabb

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return New(r3.Vector{X: minX, Y: minY, Z: minZ}, r3.Vector{X: maxX, Y: maxY, Z: maxZ})
}

func TestVolume(t *testing.T) {
	b := box(0, 0, 0, 2, 3, 4)
	assert.Equal(t, 24.0, b.Volume())
}

func TestMerge(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(10, -1, 0, 11, 1, 1)
	m := Merge(a, b)
	assert.Equal(t, box(0, -1, 0, 11, 1, 1), m)
}

func TestMergeIntoMatchesMerge(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(-5, 2, 2, -2, 3, 3)
	var got AABB
	got.MergeInto(a, b)
	assert.Equal(t, Merge(a, b), got)
}

func TestContains(t *testing.T) {
	outer := box(0, 0, 0, 10, 10, 10)
	inner := box(1, 1, 1, 9, 9, 9)
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))

	edge := box(0, 0, 0, 10, 10, 10)
	assert.True(t, outer.Contains(edge))
}

func TestOverlaps(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(0.5, 0.5, 0.5, 2, 2, 2)
	c := box(5, 5, 5, 6, 6, 6)

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
	assert.False(t, Overlaps(a, c))
}

func TestExpanded(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)
	got := b.Expanded(r3.Vector{X: 0.1, Y: 0.1, Z: 0.1})
	assert.Equal(t, box(-0.1, -0.1, -0.1, 1.1, 1.1, 1.1), got)
}

func TestCenterAndExtents(t *testing.T) {
	b := box(-1, -2, -3, 3, 4, 5)
	assert.Equal(t, r3.Vector{X: 1, Y: 1, Z: 1}, b.Center())
	assert.Equal(t, r3.Vector{X: 2, Y: 3, Z: 4}, b.Extents())
}

func TestMergeIsCommutative(t *testing.T) {
	a := box(0, -2, 5, 1, 1, 9)
	b := box(-3, 0, 0, 2, 4, 6)
	if diff := cmp.Diff(Merge(a, b), Merge(b, a)); diff != "" {
		t.Errorf("merge not commutative:\n%s", diff)
	}
}
