package plume

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/plume/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config holds the world tuning that can be loaded from a YAML document
// before the simulation loop starts. Fields absent from the document keep
// their defaults.
type Config struct {
	Gravity    [2]float64   `yaml:"gravity"`
	Integrator string       `yaml:"integrator"` // "semi_implicit" or "explicit"
	Solver     SolverConfig `yaml:"solver"`
}

// SolverConfig mirrors constraint.SolverParams for serialisation
type SolverConfig struct {
	Iterations           int     `yaml:"iterations"`
	Baumgarte            float64 `yaml:"baumgarte"`
	Slop                 float64 `yaml:"slop"`
	MaxBiasVelocity      float64 `yaml:"max_bias_velocity"`
	RestitutionThreshold float64 `yaml:"restitution_threshold"`
	Restitution          float64 `yaml:"restitution"`
	Friction             float64 `yaml:"friction"`
	SpeculativeDistance  float64 `yaml:"speculative_distance"`
}

// DefaultConfig returns the same tuning as NewWorld with default solver
// parameters and standard gravity
func DefaultConfig() Config {
	params := constraint.DefaultSolverParams()

	return Config{
		Gravity:    [2]float64{0, -9.81},
		Integrator: "semi_implicit",
		Solver: SolverConfig{
			Iterations:           params.Iterations,
			Baumgarte:            params.Baumgarte,
			Slop:                 params.Slop,
			MaxBiasVelocity:      params.MaxBiasVelocity,
			RestitutionThreshold: params.RestitutionThreshold,
			Restitution:          params.Restitution,
			Friction:             params.Friction,
			SpeculativeDistance:  params.SpeculativeDistance,
		},
	}
}

// LoadConfig decodes a YAML document over the defaults, so partial
// documents only override the fields they mention
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Integrator != "semi_implicit" && cfg.Integrator != "explicit" {
		return DefaultConfig(), fmt.Errorf("unknown integrator %q", cfg.Integrator)
	}

	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML config file
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// NewWorldFromConfig builds a world with the configured gravity,
// integrator and solver parameters
func NewWorldFromConfig(cfg Config) *World {
	integrator := SemiImplicitEuler
	if cfg.Integrator == "explicit" {
		integrator = ExplicitEuler
	}

	w := NewWorld(mgl64.Vec2{cfg.Gravity[0], cfg.Gravity[1]}, integrator)
	w.Solver.Params = constraint.SolverParams{
		Iterations:           cfg.Solver.Iterations,
		Baumgarte:            cfg.Solver.Baumgarte,
		Slop:                 cfg.Solver.Slop,
		MaxBiasVelocity:      cfg.Solver.MaxBiasVelocity,
		RestitutionThreshold: cfg.Solver.RestitutionThreshold,
		Restitution:          cfg.Solver.Restitution,
		Friction:             cfg.Solver.Friction,
		SpeculativeDistance:  cfg.Solver.SpeculativeDistance,
	}

	return w
}
