package forces

import (
	"github.com/akmonengine/plume"
	"github.com/go-gl/mathgl/mgl64"
)

// springEnd is either a body index or a fixed world anchor
type springEnd struct {
	body   int
	anchor mgl64.Vec2
	isBody bool
}

// Spring is a Hookean spring with viscous damping along its axis:
// F = -k·(|d| - rest)·d̂ - c·(vRel·d̂)·d̂, applied equal and opposite to
// its body ends. Below 1e-6 separation the direction is undefined and no
// force is applied.
type Spring struct {
	a, b springEnd

	// Stiffness (N/m)
	K float64
	// Axial damping (N·s/m)
	C float64
	// Rest length (m)
	Rest float64
}

// Between creates a spring connecting two bodies
func Between(i, j int, k, c, rest float64) *Spring {
	return &Spring{
		a:    springEnd{body: i, isBody: true},
		b:    springEnd{body: j, isBody: true},
		K:    k,
		C:    c,
		Rest: rest,
	}
}

// ToAnchor creates a spring between a body and a fixed world anchor
func ToAnchor(i int, anchor mgl64.Vec2, k, c, rest float64) *Spring {
	return &Spring{
		a:    springEnd{body: i, isBody: true},
		b:    springEnd{anchor: anchor},
		K:    k,
		C:    c,
		Rest: rest,
	}
}

// AnchorPos returns the world positions of both ends, for debug drawing.
// The flag is false when a body end has an out-of-range index.
func (s *Spring) AnchorPos(w *plume.World) (mgl64.Vec2, mgl64.Vec2, bool) {
	pa, _, ok := resolveEnd(w, s.a)
	if !ok {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}
	pb, _, ok := resolveEnd(w, s.b)
	if !ok {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}

	return pa, pb, true
}

func (s *Spring) Apply(w *plume.World) {
	pa, va, ok := resolveEnd(w, s.a)
	if !ok {
		return
	}
	pb, vb, ok := resolveEnd(w, s.b)
	if !ok {
		return
	}

	displacement := pa.Sub(pb)
	distance := displacement.Len()
	if distance < 1e-6 {
		return
	}

	direction := displacement.Mul(1.0 / distance)
	extension := distance - s.Rest
	fSpring := direction.Mul(-s.K * extension)

	axial := va.Sub(vb).Dot(direction)
	fDamp := direction.Mul(-s.C * axial)

	fa := fSpring.Add(fDamp)

	if s.a.isBody {
		w.Bodies[s.a.body].AddForce(fa)
	}
	if s.b.isBody {
		w.Bodies[s.b.body].AddForce(fa.Mul(-1))
	}
}

func resolveEnd(w *plume.World, end springEnd) (mgl64.Vec2, mgl64.Vec2, bool) {
	if !end.isBody {
		return end.anchor, mgl64.Vec2{}, true
	}
	if end.body < 0 || end.body >= len(w.Bodies) {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}

	body := w.Bodies[end.body]

	return body.Pos, body.Vel, true
}
