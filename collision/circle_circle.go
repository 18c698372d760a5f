package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CircleCircle tests two circles and returns the a→b normal and the single
// contact point. The contact is kept while the gap is within the
// speculative distance, reported as a negative penetration.
func CircleCircle(centerA mgl64.Vec2, radiusA float64, centerB mgl64.Vec2, radiusB float64, speculative float64) (mgl64.Vec2, ContactPoint, bool) {
	delta := centerB.Sub(centerA)
	distSq := delta.LenSqr()
	radiusSum := radiusA + radiusB

	maxDist := radiusSum + speculative
	if distSq > maxDist*maxDist {
		return mgl64.Vec2{}, ContactPoint{}, false
	}

	var normal mgl64.Vec2
	var penetration float64

	dist := math.Sqrt(distSq)
	if dist > 1e-6 {
		normal = delta.Mul(1.0 / dist)
		penetration = radiusSum - dist
	} else {
		// Coincident centers: arbitrary but stable axis
		normal = mgl64.Vec2{1, 0}
		penetration = radiusSum
	}

	cp := ContactPoint{
		Point:       centerA.Add(normal.Mul(radiusA)),
		Penetration: penetration,
	}

	return normal, cp, true
}
