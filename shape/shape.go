// Package shape provides example opaque payloads for the tree: a
// collision-shape type kept outside the tree core, included here only
// so the tree has something concrete to hold and the broad phase has
// something concrete to query. Narrow-phase behavior (contact
// generation, penetration depth) is deliberately not implemented — that's
// the job of a real collision-shape type, not this one.
package shape

import (
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/ishan-karmakar/rp3d-vendordep/aabb"
)

// Shape is anything the tree can hold a leaf for: something with an ID
// and a tight AABB. Loosely grounded on CollisionB2ShapeCircle.go and
// CollisionB2ShapePolygon.go's shape-carries-its-own-bounds design.
type Shape interface {
	ID() uuid.UUID
	AABB() aabb.AABB
}

// Sphere is a ball-shaped payload, the 3D analog of
// CollisionB2ShapeCircle.go's B2CircleShape.
type Sphere struct {
	id     uuid.UUID
	Center r3.Vector
	Radius float64
}

// NewSphere constructs a Sphere with a fresh identity.
func NewSphere(center r3.Vector, radius float64) *Sphere {
	return &Sphere{id: uuid.New(), Center: center, Radius: radius}
}

func (s *Sphere) ID() uuid.UUID { return s.id }

func (s *Sphere) AABB() aabb.AABB {
	r := r3.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return aabb.New(s.Center.Sub(r), s.Center.Add(r))
}

// Box is an axis-aligned box payload, the 3D analog of
// CollisionB2ShapePolygon.go's B2PolygonShape restricted to its own
// bounding box (no per-vertex narrow-phase data).
type Box struct {
	id       uuid.UUID
	Min, Max r3.Vector
}

// NewBox constructs a Box with a fresh identity.
func NewBox(min, max r3.Vector) *Box {
	return &Box{id: uuid.New(), Min: min, Max: max}
}

func (b *Box) ID() uuid.UUID { return b.id }

func (b *Box) AABB() aabb.AABB {
	return aabb.New(b.Min, b.Max)
}
