// Package aabb implements the 3D axis-aligned bounding box value type the
// dynamic tree is built on. It is an external collaborator kept outside
// the tree core: the tree stores and merges AABBs but never constructs
// them from geometry itself.
package aabb

import "github.com/golang/geo/r3"

// AABB is a 3D axis-aligned bounding box described by two opposite corners.
type AABB struct {
	Min, Max r3.Vector
}

// New returns the AABB with the given corners.
func New(min, max r3.Vector) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the midpoint of the box.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the half-widths of the box along each axis.
func (b AABB) Extents() r3.Vector {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Volume returns the product of the box's three side lengths. Volume is the
// surface-area-heuristic cost metric used throughout insertion.
func (b AABB) Volume() float64 {
	d := b.Max.Sub(b.Min)
	return d.X * d.Y * d.Z
}

// Merge returns the smallest AABB enclosing both a and b.
func Merge(a, b AABB) AABB {
	return AABB{Min: minVec(a.Min, b.Min), Max: maxVec(a.Max, b.Max)}
}

// MergeInto writes the smallest AABB enclosing a and b into the receiver,
// avoiding an extra value copy on the hot insertion/rebalancing path.
func (b *AABB) MergeInto(a1, a2 AABB) {
	b.Min = minVec(a1.Min, a2.Min)
	b.Max = maxVec(a1.Max, a2.Max)
}

// Contains reports whether b encloses other on every axis. The bounds are
// inclusive: a box whose faces coincide with b's counts as contained.
func (b AABB) Contains(other AABB) bool {
	return b.Min.X <= other.Min.X && b.Min.Y <= other.Min.Y && b.Min.Z <= other.Min.Z &&
		other.Max.X <= b.Max.X && other.Max.Y <= b.Max.Y && other.Max.Z <= b.Max.Z
}

// Overlaps reports whether a and b intersect. Boxes that only touch on a
// face, edge or corner count as overlapping.
func Overlaps(a, b AABB) bool {
	d1 := b.Min.Sub(a.Max)
	d2 := a.Min.Sub(b.Max)
	if d1.X > 0.0 || d1.Y > 0.0 || d1.Z > 0.0 {
		return false
	}
	if d2.X > 0.0 || d2.Y > 0.0 || d2.Z > 0.0 {
		return false
	}
	return true
}

// Expanded returns b grown by d on every side: d is subtracted from Min
// and added to Max, componentwise.
func (b AABB) Expanded(d r3.Vector) AABB {
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

func minVec(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func maxVec(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}
