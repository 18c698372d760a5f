package plume

import (
	"strings"
	"testing"

	"github.com/akmonengine/plume/constraint"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error for empty document, got %v", err)
	}

	defaults := constraint.DefaultSolverParams()
	if cfg.Solver.Iterations != defaults.Iterations {
		t.Errorf("Expected %d iterations, got %d", defaults.Iterations, cfg.Solver.Iterations)
	}
	if cfg.Gravity != [2]float64{0, -9.81} {
		t.Errorf("Expected standard gravity, got %v", cfg.Gravity)
	}
	if cfg.Integrator != "semi_implicit" {
		t.Errorf("Expected semi_implicit integrator, got %q", cfg.Integrator)
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	doc := `
gravity: [0, -3.71]
solver:
  iterations: 24
  restitution: 0
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Gravity != [2]float64{0, -3.71} {
		t.Errorf("Expected overridden gravity, got %v", cfg.Gravity)
	}
	if cfg.Solver.Iterations != 24 {
		t.Errorf("Expected 24 iterations, got %d", cfg.Solver.Iterations)
	}
	if cfg.Solver.Restitution != 0 {
		t.Errorf("Expected explicit zero restitution, got %f", cfg.Solver.Restitution)
	}
	// Untouched fields keep their defaults
	if cfg.Solver.Slop != constraint.DefaultSolverParams().Slop {
		t.Errorf("Expected default slop, got %f", cfg.Solver.Slop)
	}
}

func TestLoadConfig_UnknownIntegrator(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("integrator: rk4\n"))
	if err == nil {
		t.Error("Expected error for unknown integrator")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("solver: [not, a, map]\n"))
	if err == nil {
		t.Error("Expected decode error for malformed document")
	}
}

func TestNewWorldFromConfig(t *testing.T) {
	doc := `
gravity: [0, -1.62]
integrator: explicit
solver:
  iterations: 30
  friction: 0.7
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	world := NewWorldFromConfig(cfg)

	if world.Integrator != ExplicitEuler {
		t.Error("Expected explicit integrator")
	}
	if world.Gravity.Y() != -1.62 {
		t.Errorf("Expected configured gravity, got %v", world.Gravity)
	}
	if world.Solver.Params.Iterations != 30 {
		t.Errorf("Expected 30 iterations, got %d", world.Solver.Params.Iterations)
	}
	if world.Solver.Params.Friction != 0.7 {
		t.Errorf("Expected friction 0.7, got %f", world.Solver.Params.Friction)
	}
}
