// Package collision implements narrow-phase contact generation for the
// circle and box shape pairings.
package collision

import "github.com/go-gl/mathgl/mgl64"

// ContactPoint is a single contact point in a collision manifold.
//
// Penetration is signed: positive means the shapes overlap, negative means
// they are separated but within the speculative-contact distance. The same
// convention flows through the constraints and the solver.
type ContactPoint struct {
	Point       mgl64.Vec2
	Penetration float64
}

// Manifold holds the contact information between two bodies for one step.
type Manifold struct {
	// Body indices, A < B
	A, B int
	// Unit normal pointing from A to B
	Normal mgl64.Vec2
	// Tangent, the normal rotated 90° counter-clockwise
	Tangent mgl64.Vec2
	// 1 or 2 contact points
	Points []ContactPoint
}

// NewManifold builds a manifold, deriving the tangent from the normal
func NewManifold(a, b int, normal mgl64.Vec2, points []ContactPoint) Manifold {
	return Manifold{
		A:       a,
		B:       b,
		Normal:  normal,
		Tangent: perp(normal),
		Points:  points,
	}
}

func perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}
