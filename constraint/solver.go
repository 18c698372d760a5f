package constraint

import (
	"math"

	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/collision"
)

// cacheCellSize quantises contact anchors for warm-start matching. Exact
// positions never match across steps once bodies drift; snapping to a grid
// survives small translations and rotations.
const cacheCellSize = 0.05

type cacheKey struct {
	a, b         int
	cellX, cellY int
}

func newCacheKey(c *ContactConstraint) cacheKey {
	return cacheKey{
		a:     c.IndexA,
		b:     c.IndexB,
		cellX: int(math.Round(c.Point.X() / cacheCellSize)),
		cellY: int(math.Round(c.Point.Y() / cacheCellSize)),
	}
}

type cachedImpulse struct {
	jn, jt float64
}

// ConstraintSolver owns the per-step constraint list and the warm-start
// cache that survives across steps
type ConstraintSolver struct {
	Constraints []ContactConstraint
	Params      SolverParams

	cache  map[cacheKey]cachedImpulse
	prevDt float64
}

// NewConstraintSolver creates a solver with default parameters and the
// given iteration count
func NewConstraintSolver(iterations int) *ConstraintSolver {
	params := DefaultSolverParams()
	params.Iterations = iterations

	return &ConstraintSolver{
		Params: params,
		cache:  map[cacheKey]cachedImpulse{},
	}
}

// BuildConstraints rebuilds the constraint list from the step's manifolds.
//
// The previous list's accumulated impulses are first stashed in the cache,
// keyed by body pair and quantised anchor; fresh constraints that match a
// key inherit them, rescaled by dtNew/dtPrev so warm starts stay stable
// under variable step sizes. Keys not revisited are dropped.
func (s *ConstraintSolver) BuildConstraints(manifolds []collision.Manifold, bodies []*actor.RigidBody, dt float64) {
	for k := range s.cache {
		delete(s.cache, k)
	}
	for i := range s.Constraints {
		c := &s.Constraints[i]
		if c.Jn != 0 || c.Jt != 0 {
			s.cache[newCacheKey(c)] = cachedImpulse{jn: c.Jn, jt: c.Jt}
		}
	}

	s.Constraints = s.Constraints[:0]

	var invDt float64
	if dt > 0 {
		invDt = 1.0 / dt
	}

	dtScale := 1.0
	if s.prevDt > 0 {
		dtScale = dt / s.prevDt
	}

	for _, manifold := range manifolds {
		if manifold.A < 0 || manifold.A >= len(bodies) ||
			manifold.B < 0 || manifold.B >= len(bodies) {
			continue
		}
		bodyA := bodies[manifold.A]
		bodyB := bodies[manifold.B]

		for _, cp := range manifold.Points {
			c := newContactConstraint(manifold.A, manifold.B, manifold.Normal, manifold.Tangent, cp, bodyA, bodyB, s.Params, invDt)
			if cached, ok := s.cache[newCacheKey(&c)]; ok {
				c.Jn = cached.jn * dtScale
				c.Jt = cached.jt * dtScale
			}
			s.Constraints = append(s.Constraints, c)
		}
	}

	s.prevDt = dt
}

// Solve applies the warm-start impulses, then runs the configured number
// of Gauss-Seidel sweeps: all normal updates, then all tangent updates.
func (s *ConstraintSolver) Solve(bodies []*actor.RigidBody) {
	for i := range s.Constraints {
		s.Constraints[i].warmStart(bodies)
	}

	for iter := 0; iter < s.Params.Iterations; iter++ {
		for i := range s.Constraints {
			s.Constraints[i].SolveNormal(bodies)
		}
		for i := range s.Constraints {
			s.Constraints[i].SolveTangent(bodies)
		}
	}
}
