package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoxCircle tests an oriented box against a circle. The returned normal
// points from the box towards the circle.
func BoxCircle(boxCenter mgl64.Vec2, boxAngle float64, halfExtents mgl64.Vec2, circleCenter mgl64.Vec2, radius float64, speculative float64) (mgl64.Vec2, ContactPoint, bool) {
	rot := mgl64.Rotate2D(boxAngle)
	invRot := rot.Transpose()

	deltaLocal := invRot.Mul2x1(circleCenter.Sub(boxCenter))

	// Closest point on the box to the circle center, in box space
	closestLocal := mgl64.Vec2{
		clamp(deltaLocal.X(), -halfExtents.X(), halfExtents.X()),
		clamp(deltaLocal.Y(), -halfExtents.Y(), halfExtents.Y()),
	}

	diff := deltaLocal.Sub(closestLocal)
	distSq := diff.LenSqr()

	maxR := radius + speculative
	if distSq > maxR*maxR {
		return mgl64.Vec2{}, ContactPoint{}, false
	}

	var normalLocal, contactLocal mgl64.Vec2
	var penetration float64

	if distSq > 1e-12 {
		// Center outside the box; penetration goes negative once the
		// surfaces separate (speculative contact)
		dist := math.Sqrt(distSq)
		normalLocal = diff.Mul(1.0 / dist)
		contactLocal = closestLocal
		penetration = radius - dist
	} else {
		// Center inside the box: push out through the nearest face
		dx := halfExtents.X() - math.Abs(deltaLocal.X())
		dy := halfExtents.Y() - math.Abs(deltaLocal.Y())

		if dx < dy {
			signX := math.Copysign(1, deltaLocal.X())
			normalLocal = mgl64.Vec2{signX, 0}
			contactLocal = mgl64.Vec2{signX * halfExtents.X(), deltaLocal.Y()}
			penetration = radius + dx
		} else {
			signY := math.Copysign(1, deltaLocal.Y())
			normalLocal = mgl64.Vec2{0, signY}
			contactLocal = mgl64.Vec2{deltaLocal.X(), signY * halfExtents.Y()}
			penetration = radius + dy
		}
	}

	cp := ContactPoint{
		Point:       rot.Mul2x1(contactLocal).Add(boxCenter),
		Penetration: penetration,
	}

	return rot.Mul2x1(normalLocal), cp, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
