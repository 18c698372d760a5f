package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeBox
)

// Shape is a tagged collision shape. Exactly one of Radius or HalfExtents
// is meaningful depending on Type. Collision dispatch switches on the tag
// pair, so bodies never need run-time type probing.
type Shape struct {
	Type ShapeType

	// Radius of the circle (ShapeCircle only)
	Radius float64
	// Half-width and half-height of the box (ShapeBox only)
	HalfExtents mgl64.Vec2
}

// NewCircleShape creates a circle shape with the given radius
func NewCircleShape(radius float64) *Shape {
	return &Shape{Type: ShapeCircle, Radius: radius}
}

// NewBoxShape creates a box shape from its full width and height
func NewBoxShape(width, height float64) *Shape {
	return &Shape{
		Type:        ShapeBox,
		HalfExtents: mgl64.Vec2{width * 0.5, height * 0.5},
	}
}

// Inertia calculates the moment of inertia about the centroid.
// Returns 0 for non-positive mass, so degenerate bodies end up with
// a zero inverse inertia.
func (s *Shape) Inertia(mass float64) float64 {
	if mass <= 0 {
		return 0
	}

	switch s.Type {
	case ShapeCircle:
		// Solid disc: I = (1/2) * m * r²
		return 0.5 * mass * s.Radius * s.Radius
	case ShapeBox:
		// Full dimensions are 2*halfExtents
		w := s.HalfExtents.X() * 2
		h := s.HalfExtents.Y() * 2

		// Rectangle about its center: I = (m/12) * (w² + h²)
		return mass * (w*w + h*h) / 12.0
	}

	return 0
}

// AABB calculates the world-space axis-aligned bounding box for the shape
// at the given position and orientation
func (s *Shape) AABB(pos mgl64.Vec2, angle float64) AABB {
	switch s.Type {
	case ShapeCircle:
		// Circle AABB is not affected by rotation, only by position
		ext := mgl64.Vec2{s.Radius, s.Radius}

		return AABB{
			Min: pos.Sub(ext),
			Max: pos.Add(ext),
		}
	case ShapeBox:
		c := math.Abs(math.Cos(angle))
		sn := math.Abs(math.Sin(angle))

		ext := mgl64.Vec2{
			c*s.HalfExtents.X() + sn*s.HalfExtents.Y(),
			sn*s.HalfExtents.X() + c*s.HalfExtents.Y(),
		}

		return AABB{
			Min: pos.Sub(ext),
			Max: pos.Add(ext),
		}
	}

	return AABB{Min: pos, Max: pos}
}
