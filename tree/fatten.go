package tree

import (
	"github.com/golang/geo/r3"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
)

func gapVec(gap float64) r3.Vector {
	return r3.Vector{X: gap, Y: gap, Z: gap}
}

// biasInDirectionOfMotion extends box's far side in the direction of the
// scaled displacement dg, independently per axis. Grounded on
// B2DynamicTree.MoveProxy's per-axis d.X/d.Y handling, extended to the Z
// axis.
func biasInDirectionOfMotion(box aabb.AABB, dg r3.Vector) aabb.AABB {
	if dg.X < 0 {
		box.Min.X += dg.X
	} else {
		box.Max.X += dg.X
	}
	if dg.Y < 0 {
		box.Min.Y += dg.Y
	} else {
		box.Max.Y += dg.Y
	}
	if dg.Z < 0 {
		box.Min.Z += dg.Z
	} else {
		box.Max.Z += dg.Z
	}
	return box
}
