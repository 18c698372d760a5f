// Package plume is a 2D rigid-body physics engine: sweep-and-prune broad
// phase, analytic narrow phase for circle and box shapes, and a
// sequential-impulse contact solver with warm starting.
package plume

import (
	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/collision"
)

// Pair is a candidate body index pair emitted by the broad phase, A < B
type Pair struct {
	A, B int
}

// NarrowPhase builds a contact manifold for every candidate pair that
// actually touches (or comes within the speculative distance). Pairs with
// out-of-range indices or shapeless bodies are skipped.
func NarrowPhase(bodies []*actor.RigidBody, pairs []Pair, speculative float64) []collision.Manifold {
	manifolds := make([]collision.Manifold, 0, len(pairs))

	for _, pair := range pairs {
		if pair.A < 0 || pair.B < 0 || pair.A >= len(bodies) || pair.B >= len(bodies) {
			continue
		}

		bodyA := bodies[pair.A]
		bodyB := bodies[pair.B]
		if bodyA.Shape == nil || bodyB.Shape == nil {
			continue
		}

		if manifold, ok := detectPair(pair, bodyA, bodyB, speculative); ok {
			manifolds = append(manifolds, manifold)
		}
	}

	return manifolds
}

// detectPair dispatches on the shape tag pair. The circle/box ordering is
// normalised by swapping and flipping the normal, keeping the manifold
// normal pointing a→b.
func detectPair(pair Pair, bodyA, bodyB *actor.RigidBody, speculative float64) (collision.Manifold, bool) {
	shapeA := bodyA.Shape
	shapeB := bodyB.Shape

	switch {
	case shapeA.Type == actor.ShapeCircle && shapeB.Type == actor.ShapeCircle:
		normal, cp, ok := collision.CircleCircle(bodyA.Pos, shapeA.Radius, bodyB.Pos, shapeB.Radius, speculative)
		if !ok {
			return collision.Manifold{}, false
		}
		return collision.NewManifold(pair.A, pair.B, normal, []collision.ContactPoint{cp}), true

	case shapeA.Type == actor.ShapeBox && shapeB.Type == actor.ShapeCircle:
		normal, cp, ok := collision.BoxCircle(bodyA.Pos, bodyA.Angle, shapeA.HalfExtents, bodyB.Pos, shapeB.Radius, speculative)
		if !ok {
			return collision.Manifold{}, false
		}
		return collision.NewManifold(pair.A, pair.B, normal, []collision.ContactPoint{cp}), true

	case shapeA.Type == actor.ShapeCircle && shapeB.Type == actor.ShapeBox:
		normal, cp, ok := collision.BoxCircle(bodyB.Pos, bodyB.Angle, shapeB.HalfExtents, bodyA.Pos, shapeA.Radius, speculative)
		if !ok {
			return collision.Manifold{}, false
		}
		// Detection ran box→circle, so flip to keep the normal a→b
		return collision.NewManifold(pair.A, pair.B, normal.Mul(-1), []collision.ContactPoint{cp}), true

	default:
		normal, points, ok := collision.BoxBox(bodyA.Pos, bodyA.Angle, shapeA.HalfExtents, bodyB.Pos, bodyB.Angle, shapeB.HalfExtents, speculative)
		if !ok {
			return collision.Manifold{}, false
		}
		return collision.NewManifold(pair.A, pair.B, normal, points), true
	}
}
