package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	screenW = 1280
	screenH = 720
	scale   = 60.0
	fixedDt = 1.0 / 240.0
)

func toScreen(p mgl64.Vec2) rl.Vector2 {
	return rl.Vector2{
		X: float32(screenW*0.5 + p.X()*scale),
		Y: float32(screenH*0.5 - p.Y()*scale),
	}
}

func drawBody(body *actor.RigidBody, color rl.Color) {
	if body.Shape == nil {
		center := toScreen(body.Pos)
		rl.DrawCircleV(center, 3, color)
		return
	}

	switch body.Shape.Type {
	case actor.ShapeCircle:
		center := toScreen(body.Pos)
		radius := float32(body.Shape.Radius * scale)
		rl.DrawCircleLinesV(center, radius, color)
		// Radius line shows the spin
		tip := body.Pos.Add(mgl64.Vec2{
			math.Cos(body.Angle) * body.Shape.Radius,
			math.Sin(body.Angle) * body.Shape.Radius,
		})
		rl.DrawLineV(center, toScreen(tip), color)
	case actor.ShapeBox:
		rot := mgl64.Rotate2D(body.Angle)
		h := body.Shape.HalfExtents
		corners := [4]mgl64.Vec2{
			{-h.X(), -h.Y()},
			{h.X(), -h.Y()},
			{h.X(), h.Y()},
			{-h.X(), h.Y()},
		}
		var pts [4]rl.Vector2
		for i, c := range corners {
			pts[i] = toScreen(rot.Mul2x1(c).Add(body.Pos))
		}
		for i := 0; i < 4; i++ {
			rl.DrawLineV(pts[i], pts[(i+1)%4], color)
		}
	}
}

func drawContacts(w *plume.World) {
	for _, m := range w.Manifolds() {
		for _, cp := range m.Points {
			p := toScreen(cp.Point)
			color := rl.Red
			if cp.Penetration < 0 {
				// Speculative contact, not yet overlapping
				color = rl.Orange
			}
			rl.DrawCircleV(p, 3, color)

			tip := cp.Point.Add(m.Normal.Mul(0.25))
			rl.DrawLineV(p, toScreen(tip), color)
		}
	}
}

func buildScene(w *plume.World) {
	// Ground and a slope
	w.AddBody(actor.NewBox(mgl64.Vec2{0, -4.5}, 0, 0, 20.0, 0.6))
	w.AddBody(actor.NewBox(mgl64.Vec2{-4.5, -1.5}, 0.35, 0, 7.0, 0.5))

	// Pyramid of boxes
	boxW, boxH := 0.9, 0.5
	rows := 7
	baseY := -4.2 + boxH*0.5 + 0.01
	for row := 0; row < rows; row++ {
		count := rows - row
		y := baseY + float64(row)*(boxH+0.01)
		startX := 1.5 - float64(count-1)*boxW*0.55
		for i := 0; i < count; i++ {
			x := startX + float64(i)*boxW*1.1
			w.AddBody(actor.NewBox(mgl64.Vec2{x, y}, 0, 1.0, boxW, boxH))
		}
	}

	// Circles rolling down the slope
	for i := 0; i < 3; i++ {
		w.AddBody(actor.NewCircle(mgl64.Vec2{-6.5 + float64(i)*0.8, 1.5}, 0, 0.6, 0.3))
	}
}

func main() {
	rl.InitWindow(screenW, screenH, "plume - box pyramid")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	world := plume.NewWorld(mgl64.Vec2{0, -9.81}, plume.SemiImplicitEuler)
	world.Solver.Params.Iterations = 20
	world.Solver.Params.Friction = 0.8
	world.Solver.Params.Restitution = 0.1

	buildScene(world)

	showContacts := false
	accumulator := 0.0

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyV) {
			showContacts = !showContacts
		}

		frameDt := math.Min(float64(rl.GetFrameTime()), 1.0/30.0)
		accumulator += frameDt
		for accumulator >= fixedDt {
			world.Step(fixedDt)
			accumulator -= fixedDt
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		for _, body := range world.Bodies {
			color := rl.DarkBlue
			if body.Static() {
				color = rl.DarkGray
			}
			drawBody(body, color)
		}

		if showContacts {
			drawContacts(world)
		}

		rl.DrawText("V: toggle contacts", 10, 10, 20, rl.Gray)
		rl.EndDrawing()
	}
}
