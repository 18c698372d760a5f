package constraint

import (
	"math"

	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/collision"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactConstraint is one scalar contact: a single manifold point turned
// into a normal and a tangent velocity constraint between two bodies.
//
// Jn and Jt accumulate the Lagrange multipliers over the solver sweeps.
// Jn never goes negative (contact is one-sided) and |Jt| stays within the
// friction cone of the current Jn.
type ContactConstraint struct {
	IndexA, IndexB int

	Point   mgl64.Vec2
	Normal  mgl64.Vec2
	Tangent mgl64.Vec2
	// Signed penetration at build time, positive = overlapping
	Penetration float64

	// Contact offsets from each body center, world frame at build time
	RA, RB mgl64.Vec2

	// Effective scalar masses along the normal and tangent; 0 collapses
	// the constraint to a no-op
	NormalMass  float64
	TangentMass float64

	// Accumulated impulses
	Jn, Jt float64

	// Baumgarte + restitution right-hand side, fixed at build time
	Bias float64

	Friction float64
}

// newContactConstraint precomputes everything the sweeps need: anchors,
// effective masses, and the bias folding Baumgarte correction and
// restitution together. The relative normal velocity is captured here,
// before any impulse is applied.
func newContactConstraint(indexA, indexB int, normal, tangent mgl64.Vec2, cp collision.ContactPoint, bodyA, bodyB *actor.RigidBody, params SolverParams, invDt float64) ContactConstraint {
	rA := cp.Point.Sub(bodyA.Pos)
	rB := cp.Point.Sub(bodyB.Pos)

	effMass := func(axis mgl64.Vec2) float64 {
		rnA := cross(rA, axis)
		rnB := cross(rB, axis)
		inv := bodyA.InvMass + bodyB.InvMass +
			rnA*rnA*bodyA.InvInertia +
			rnB*rnB*bodyB.InvInertia
		if inv > 1e-8 {
			return 1.0 / inv
		}
		return 0
	}

	// Baumgarte bias only corrects overlap beyond the slop, capped so deep
	// penetrations cannot catapult bodies apart
	var penetrationBias float64
	if cp.Penetration > params.Slop {
		penetrationBias = params.Baumgarte * invDt * (cp.Penetration - params.Slop)
		penetrationBias = math.Min(penetrationBias, params.MaxBiasVelocity)
	}

	relVel := bodyB.VelocityAt(rB).Sub(bodyA.VelocityAt(rA))
	vn := relVel.Dot(normal)

	var restitutionBias float64
	if vn < -params.RestitutionThreshold {
		restitutionBias = -params.Restitution * vn
	}

	return ContactConstraint{
		IndexA:      indexA,
		IndexB:      indexB,
		Point:       cp.Point,
		Normal:      normal,
		Tangent:     tangent,
		Penetration: cp.Penetration,
		RA:          rA,
		RB:          rB,
		NormalMass:  effMass(normal),
		TangentMass: effMass(tangent),
		Bias:        penetrationBias + restitutionBias,
		Friction:    params.Friction,
	}
}

// SolveNormal runs one normal-impulse update, clamping the accumulated
// impulse to stay non-negative
func (c *ContactConstraint) SolveNormal(bodies []*actor.RigidBody) {
	bodyA, bodyB, ok := bodyPair(bodies, c.IndexA, c.IndexB)
	if !ok {
		return
	}

	vn := bodyB.VelocityAt(c.RB).Sub(bodyA.VelocityAt(c.RA)).Dot(c.Normal)
	lambda := -c.NormalMass * (vn - c.Bias)

	jnOld := c.Jn
	c.Jn = math.Max(jnOld+lambda, 0)

	applyImpulsePair(bodyA, bodyB, c.RA, c.RB, c.Normal, c.Jn-jnOld)
}

// SolveTangent runs one friction update, clamping the accumulated impulse
// to the Coulomb cone of the current normal impulse
func (c *ContactConstraint) SolveTangent(bodies []*actor.RigidBody) {
	bodyA, bodyB, ok := bodyPair(bodies, c.IndexA, c.IndexB)
	if !ok {
		return
	}

	vt := bodyB.VelocityAt(c.RB).Sub(bodyA.VelocityAt(c.RA)).Dot(c.Tangent)
	lambda := -c.TangentMass * vt

	maxJt := c.Friction * c.Jn
	jtOld := c.Jt
	c.Jt = clampAbs(jtOld+lambda, maxJt)

	applyImpulsePair(bodyA, bodyB, c.RA, c.RB, c.Tangent, c.Jt-jtOld)
}

// warmStart replays the impulses inherited from the previous step so the
// sweeps start near the converged solution
func (c *ContactConstraint) warmStart(bodies []*actor.RigidBody) {
	if c.Jn == 0 && c.Jt == 0 {
		return
	}

	bodyA, bodyB, ok := bodyPair(bodies, c.IndexA, c.IndexB)
	if !ok {
		return
	}

	applyImpulsePair(bodyA, bodyB, c.RA, c.RB, c.Normal, c.Jn)
	applyImpulsePair(bodyA, bodyB, c.RA, c.RB, c.Tangent, c.Jt)
}

// applyImpulsePair applies dir*magnitude to B and the opposite to A.
// Static bodies absorb nothing since their inverse masses are zero.
func applyImpulsePair(bodyA, bodyB *actor.RigidBody, rA, rB, dir mgl64.Vec2, magnitude float64) {
	impulse := dir.Mul(magnitude)

	bodyA.Vel = bodyA.Vel.Sub(impulse.Mul(bodyA.InvMass))
	bodyA.Omega -= bodyA.InvInertia * cross(rA, impulse)

	bodyB.Vel = bodyB.Vel.Add(impulse.Mul(bodyB.InvMass))
	bodyB.Omega += bodyB.InvInertia * cross(rB, impulse)
}

func bodyPair(bodies []*actor.RigidBody, indexA, indexB int) (*actor.RigidBody, *actor.RigidBody, bool) {
	if indexA == indexB ||
		indexA < 0 || indexA >= len(bodies) ||
		indexB < 0 || indexB >= len(bodies) {
		return nil, nil, false
	}

	return bodies[indexA], bodies[indexB], true
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(v, limit))
}
