// Package forces ships the built-in force generators: linear viscous drag
// and a damped Hookean spring.
package forces

import (
	"github.com/akmonengine/plume"
)

// LinearDrag applies F = -k·v to every dynamic body
type LinearDrag struct {
	K float64
}

func (d *LinearDrag) Apply(w *plume.World) {
	for _, body := range w.Bodies {
		if body.InvMass == 0 {
			continue
		}
		body.AddForce(body.Vel.Mul(-d.K))
	}
}
