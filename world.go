package plume

import (
	"math"

	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/collision"
	"github.com/akmonengine/plume/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// Integrator selects how unconstrained motion is advanced
type Integrator int

const (
	// SemiImplicitEuler updates velocity from forces first and position
	// from the new velocity last. All stability tuning targets this path.
	SemiImplicitEuler Integrator = iota
	// ExplicitEuler advances position with the pre-update velocity. Kept
	// as a fallback for comparison runs.
	ExplicitEuler
)

// ForceGenerator adds forces to bodies once per step, before velocity
// integration.
//
// An implementation may read any body state and call AddForce/AddTorque on
// any body. It must not add, remove or reorder bodies, and must not call
// Step.
type ForceGenerator interface {
	Apply(w *World)
}

// World owns the bodies and the per-step pipeline state
type World struct {
	// List of all rigid bodies in the world. Insertion order defines the
	// body indices and is stable for the life of the world.
	Bodies []*actor.RigidBody
	// Gravity acceleration (m/s², or N/kg)
	Gravity    mgl64.Vec2
	Integrator Integrator
	Solver     *constraint.ConstraintSolver

	Events Events

	forces    []ForceGenerator
	manifolds []collision.Manifold
}

// NewWorld creates an empty world with default solver parameters
func NewWorld(gravity mgl64.Vec2, integrator Integrator) *World {
	return &World{
		Gravity:    gravity,
		Integrator: integrator,
		Solver:     constraint.NewConstraintSolver(constraint.DefaultSolverParams().Iterations),
	}
}

// AddBody adds a rigid body to the world and returns its index
func (w *World) AddBody(body *actor.RigidBody) int {
	w.Bodies = append(w.Bodies, body)

	return len(w.Bodies) - 1
}

// AddForceGenerator registers a force generator. Generators run in
// insertion order every step.
func (w *World) AddForceGenerator(g ForceGenerator) {
	w.forces = append(w.forces, g)
}

// Manifolds returns the contact manifolds of the last completed step.
// The slice is owned by the world and valid until the next Step.
func (w *World) Manifolds() []collision.Manifold {
	return w.manifolds
}

// DrainEvents returns the collision events queued since the last drain
// and empties the queue
func (w *World) DrainEvents() []Event {
	return w.Events.Drain()
}

// Step advances the simulation by dt seconds.
//
// dt must be positive and finite, otherwise the step is a no-op and no
// state mutates. Per step: clear accumulators, gravity, force generators,
// velocity integration, broad phase, narrow phase, constraint build,
// solver sweeps, position integration.
func (w *World) Step(dt float64) {
	if dt <= 0 || math.IsInf(dt, 0) || math.IsNaN(dt) {
		return
	}

	w.clearForces()
	w.applyGravity()
	for _, g := range w.forces {
		g.Apply(w)
	}

	w.integrateVelocities(dt)

	pairs := BroadPhase(w.Bodies, w.Solver.Params.SpeculativeDistance)
	w.manifolds = NarrowPhase(w.Bodies, pairs, w.Solver.Params.SpeculativeDistance)

	w.Events.recordCollisions(w.manifolds)

	w.Solver.BuildConstraints(w.manifolds, w.Bodies, dt)
	w.Solver.Solve(w.Bodies)

	w.integratePositions(dt)
}

func (w *World) clearForces() {
	for _, body := range w.Bodies {
		body.ClearForces()
	}
}

func (w *World) applyGravity() {
	for _, body := range w.Bodies {
		if body.InvMass == 0 {
			continue
		}
		body.AddForce(w.Gravity.Mul(body.Mass()))
	}
}

func (w *World) integrateVelocities(dt float64) {
	for _, body := range w.Bodies {
		// Explicit Euler moves the pose with the pre-update velocity, so
		// the position update happens here instead of after the solver
		if w.Integrator == ExplicitEuler {
			body.IntegratePosition(dt)
		}
		body.IntegrateVelocity(dt)
	}
}

func (w *World) integratePositions(dt float64) {
	if w.Integrator == ExplicitEuler {
		return
	}

	for _, body := range w.Bodies {
		body.IntegratePosition(dt)
	}
}
