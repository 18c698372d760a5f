package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/actor"
	"github.com/akmonengine/plume/forces"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	world := plume.NewWorld(mgl64.Vec2{0, -9.81}, plume.SemiImplicitEuler)
	world.Solver.Params.Iterations = 20
	world.Solver.Params.Restitution = 0.1
	world.Solver.Params.Friction = 0.8

	// Static ground
	groundIdx := world.AddBody(actor.NewBox(mgl64.Vec2{0, -3.75}, 0, 0, 20.0, 0.5))

	// Stack of boxes with a slight alternating offset
	boxW, boxH := 1.0, 0.5
	startY := -3.5 + boxH*0.5 + 0.01
	for i := 0; i < 5; i++ {
		x := 0.02 * float64(i%2)
		y := startY + (boxH+0.02)*float64(i)
		world.AddBody(actor.NewBox(mgl64.Vec2{x, y}, 0, 1.0, boxW, boxH))
	}

	// A circle dropped onto the stack
	ballIdx := world.AddBody(actor.NewCircle(mgl64.Vec2{0.3, 2.5}, 0, 0.5, 0.3))

	// A particle hanging from a damped spring, with drag
	particleIdx := world.AddBody(actor.NewParticle(mgl64.Vec2{3, 0}, mgl64.Vec2{}, 1.0))
	world.AddForceGenerator(forces.ToAnchor(particleIdx, mgl64.Vec2{3, 2}, 40.0, 2.0, 1.0))
	world.AddForceGenerator(&forces.LinearDrag{K: 0.2})

	dt := 1.0 / 240.0
	steps := 240 * 4

	for i := 0; i <= steps; i++ {
		world.Step(dt)

		for _, ev := range world.DrainEvents() {
			switch e := ev.(type) {
			case plume.CollisionEnterEvent:
				fmt.Printf("t=%.3f enter  %d-%d\n", float64(i)*dt, e.A, e.B)
			case plume.CollisionExitEvent:
				fmt.Printf("t=%.3f exit   %d-%d\n", float64(i)*dt, e.A, e.B)
			}
		}

		if i%240 == 0 {
			ball := world.Bodies[ballIdx]
			particle := world.Bodies[particleIdx]
			fmt.Printf("t=%.1fs ball=(%.3f, %.3f) particle=(%.3f, %.3f) contacts=%d\n",
				float64(i)*dt,
				ball.Pos.X(), ball.Pos.Y(),
				particle.Pos.X(), particle.Pos.Y(),
				len(world.Manifolds()))
		}
	}

	fmt.Printf("ground stayed at (%.3f, %.3f)\n",
		world.Bodies[groundIdx].Pos.X(), world.Bodies[groundIdx].Pos.Y())
}
