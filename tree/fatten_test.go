package tree

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestGapVecUniform(t *testing.T) {
	assert.Equal(t, r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, gapVec(0.1))
}

func TestBiasInDirectionOfMotionPositiveAxis(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)
	got := biasInDirectionOfMotion(b, r3.Vector{X: 3, Y: -2, Z: 0})

	assert.InDelta(t, 0, got.Min.X, 1e-9)
	assert.InDelta(t, 4, got.Max.X, 1e-9)
	assert.InDelta(t, -2, got.Min.Y, 1e-9)
	assert.InDelta(t, 1, got.Max.Y, 1e-9)
	assert.InDelta(t, 0, got.Min.Z, 1e-9)
	assert.InDelta(t, 1, got.Max.Z, 1e-9)
}
