package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func TestCircleShape_Inertia(t *testing.T) {
	shape := NewCircleShape(0.5)

	// I = 0.5 * m * r²
	expected := 0.5 * 2.0 * 0.5 * 0.5
	inertia := shape.Inertia(2.0)

	if math.Abs(inertia-expected) > epsilon {
		t.Errorf("Expected inertia %f, got %f", expected, inertia)
	}
}

func TestBoxShape_Inertia(t *testing.T) {
	shape := NewBoxShape(1.0, 0.6)

	// I = m * (w² + h²) / 12
	expected := 3.0 * (1.0*1.0 + 0.6*0.6) / 12.0
	inertia := shape.Inertia(3.0)

	if math.Abs(inertia-expected) > epsilon {
		t.Errorf("Expected inertia %f, got %f", expected, inertia)
	}
}

func TestShape_Inertia_NonPositiveMass(t *testing.T) {
	circle := NewCircleShape(1.0)
	box := NewBoxShape(1.0, 1.0)

	if circle.Inertia(0) != 0 {
		t.Errorf("Expected zero inertia for zero mass, got %f", circle.Inertia(0))
	}
	if box.Inertia(-1.0) != 0 {
		t.Errorf("Expected zero inertia for negative mass, got %f", box.Inertia(-1.0))
	}
}

func TestCircleShape_AABB_IgnoresRotation(t *testing.T) {
	shape := NewCircleShape(0.75)
	pos := mgl64.Vec2{2, -1}

	aabb1 := shape.AABB(pos, 0)
	aabb2 := shape.AABB(pos, 1.3)

	if aabb1 != aabb2 {
		t.Errorf("Expected identical AABBs, got %v and %v", aabb1, aabb2)
	}

	expectedMin := mgl64.Vec2{2 - 0.75, -1 - 0.75}
	if !vecNear(aabb1.Min, expectedMin, epsilon) {
		t.Errorf("Expected min %v, got %v", expectedMin, aabb1.Min)
	}
}

func TestBoxShape_AABB_AxisAligned(t *testing.T) {
	shape := NewBoxShape(2.0, 1.0)
	aabb := shape.AABB(mgl64.Vec2{0, 0}, 0)

	if !vecNear(aabb.Min, mgl64.Vec2{-1, -0.5}, epsilon) {
		t.Errorf("Expected min (-1, -0.5), got %v", aabb.Min)
	}
	if !vecNear(aabb.Max, mgl64.Vec2{1, 0.5}, epsilon) {
		t.Errorf("Expected max (1, 0.5), got %v", aabb.Max)
	}
}

func TestBoxShape_AABB_Rotated(t *testing.T) {
	shape := NewBoxShape(2.0, 1.0)
	angle := math.Pi / 2

	// Rotated 90°: width and height swap
	aabb := shape.AABB(mgl64.Vec2{0, 0}, angle)

	if !vecNear(aabb.Min, mgl64.Vec2{-0.5, -1}, 1e-9) {
		t.Errorf("Expected min (-0.5, -1), got %v", aabb.Min)
	}
	if !vecNear(aabb.Max, mgl64.Vec2{0.5, 1}, 1e-9) {
		t.Errorf("Expected max (0.5, 1), got %v", aabb.Max)
	}
}

func TestBoxShape_AABB_RotatedExtents(t *testing.T) {
	shape := NewBoxShape(2.0, 1.0)
	angle := 0.35

	aabb := shape.AABB(mgl64.Vec2{1, 2}, angle)

	// Extents per axis: |cos|·hx + |sin|·hy
	c, s := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
	ex := c*1.0 + s*0.5
	ey := s*1.0 + c*0.5

	if !vecNear(aabb.Min, mgl64.Vec2{1 - ex, 2 - ey}, epsilon) {
		t.Errorf("Expected min (%f, %f), got %v", 1-ex, 2-ey, aabb.Min)
	}
	if !vecNear(aabb.Max, mgl64.Vec2{1 + ex, 2 + ey}, epsilon) {
		t.Errorf("Expected max (%f, %f), got %v", 1+ex, 2+ey, aabb.Max)
	}
}

func vecNear(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance && math.Abs(a.Y()-b.Y()) <= tolerance
}
