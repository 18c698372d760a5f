// Package constraint materialises contact manifolds into scalar velocity
// constraints and resolves them with warm-started sequential impulses.
package constraint

// SolverParams are the cross-cutting tuning knobs shared by the broad
// phase, narrow phase and solver. Keep this small and explicit.
type SolverParams struct {
	// Gauss-Seidel sweeps per step
	Iterations int

	// Fraction of the penetration error corrected per step via the
	// velocity bias
	Baumgarte float64
	// Penetration below this is left uncorrected to avoid jitter at rest
	Slop float64
	// Upper bound on the Baumgarte part of the bias velocity (m/s); the
	// restitution term is added on top of it uncapped
	MaxBiasVelocity float64

	// Restitution only kicks in above this approach speed (m/s)
	RestitutionThreshold float64
	// Coefficient of restitution applied to every contact
	Restitution float64
	// Coulomb friction coefficient applied to every contact
	Friction float64

	// Extra distance treated as "in range" for speculative contacts.
	// Expands broad-phase AABBs and lets the narrow phase emit contacts
	// slightly before overlap.
	SpeculativeDistance float64
}

// DefaultSolverParams returns the tuning the stacking scenes were
// calibrated with
func DefaultSolverParams() SolverParams {
	return SolverParams{
		Iterations:           10,
		Baumgarte:            0.2,
		Slop:                 0.01,
		MaxBiasVelocity:      4.0,
		RestitutionThreshold: 1.0,
		Restitution:          0.3,
		Friction:             0.5,
		SpeculativeDistance:  0.05,
	}
}
