package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody represents a rigid body in the physics simulation.
//
// A body is static iff InvMass == 0; static bodies also carry a zero
// InvInertia and ignore forces, impulses and integration. There is no
// separate "is static" flag: every hot loop relies on the zero-inverse-mass
// convention directly.
type RigidBody struct {
	// Linear motion
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2 // Linear velocity (m/s)
	InvMass float64

	// Angular motion
	Angle      float64 // Orientation (rad)
	Omega      float64 // Angular velocity (rad/s)
	InvInertia float64

	force  mgl64.Vec2
	torque float64

	// Collision shape, nil for point masses that never collide
	Shape *Shape
}

// NewBody creates a rigid body with the given shape.
// Mass <= 0 yields a static body (zero inverse mass and inertia).
// A nil shape yields a point mass that skips collision entirely.
func NewBody(pos mgl64.Vec2, angle float64, mass float64, shape *Shape) *RigidBody {
	rb := &RigidBody{
		Pos:   pos,
		Angle: angle,
		Shape: shape,
	}

	if mass > 0 {
		rb.InvMass = 1.0 / mass
	}
	if shape != nil {
		if inertia := shape.Inertia(mass); inertia > 0 {
			rb.InvInertia = 1.0 / inertia
		}
	}

	return rb
}

// NewBox creates a body with a box shape from its full width and height
func NewBox(pos mgl64.Vec2, angle float64, mass float64, width, height float64) *RigidBody {
	return NewBody(pos, angle, mass, NewBoxShape(width, height))
}

// NewCircle creates a body with a circle shape
func NewCircle(pos mgl64.Vec2, angle float64, mass float64, radius float64) *RigidBody {
	return NewBody(pos, angle, mass, NewCircleShape(radius))
}

// NewParticle creates a shapeless point mass. Particles take part in
// integration and force generators but never collide.
func NewParticle(pos mgl64.Vec2, vel mgl64.Vec2, mass float64) *RigidBody {
	rb := NewBody(pos, 0, mass, nil)
	rb.Vel = vel

	return rb
}

// Static reports whether the body has infinite mass
func (rb *RigidBody) Static() bool {
	return rb.InvMass == 0
}

// Mass returns the body mass, or 0 for static bodies
func (rb *RigidBody) Mass() float64 {
	if rb.InvMass == 0 {
		return 0
	}

	return 1.0 / rb.InvMass
}

// AddForce accumulates a force (N) to be applied at the next velocity
// integration. Static bodies ignore it.
func (rb *RigidBody) AddForce(force mgl64.Vec2) {
	if rb.InvMass == 0 {
		return
	}

	rb.force = rb.force.Add(force)
}

// AddTorque accumulates a torque (N·m). Static bodies ignore it.
func (rb *RigidBody) AddTorque(torque float64) {
	if rb.InvMass == 0 {
		return
	}

	rb.torque += torque
}

// Force returns the currently accumulated force
func (rb *RigidBody) Force() mgl64.Vec2 {
	return rb.force
}

// Torque returns the currently accumulated torque
func (rb *RigidBody) Torque() float64 {
	return rb.torque
}

// ClearForces resets the force and torque accumulators
func (rb *RigidBody) ClearForces() {
	rb.force = mgl64.Vec2{}
	rb.torque = 0
}

// IntegrateVelocity applies the accumulated force and torque to the
// velocities over dt
func (rb *RigidBody) IntegrateVelocity(dt float64) {
	if rb.InvMass == 0 {
		return
	}

	rb.Vel = rb.Vel.Add(rb.force.Mul(rb.InvMass * dt))
	rb.Omega += rb.torque * rb.InvInertia * dt
}

// IntegratePosition advances the pose by the current velocities over dt
func (rb *RigidBody) IntegratePosition(dt float64) {
	if rb.InvMass == 0 {
		return
	}

	rb.Pos = rb.Pos.Add(rb.Vel.Mul(dt))
	rb.Angle += rb.Omega * dt
}

// VelocityAt returns the velocity of the body material point at offset r
// from the center of mass
func (rb *RigidBody) VelocityAt(r mgl64.Vec2) mgl64.Vec2 {
	return rb.Vel.Add(mgl64.Vec2{-rb.Omega * r.Y(), rb.Omega * r.X()})
}

// AABB returns the world bounding box of the body shape. Shapeless bodies
// get a small point box so the broad phase can still order them.
func (rb *RigidBody) AABB() AABB {
	if rb.Shape == nil {
		ext := mgl64.Vec2{0.01, 0.01}
		return AABB{Min: rb.Pos.Sub(ext), Max: rb.Pos.Add(ext)}
	}

	return rb.Shape.AABB(rb.Pos, rb.Angle)
}
