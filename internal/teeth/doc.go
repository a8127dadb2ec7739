// Package teeth simulates a row of teeth pushed by a shared force.
//
// Each tooth is an independent point mass with a fixed rest position and a
// small displacement that is hard-clamped to [MaxDisplacement]. Teeth near
// the middle of the row receive more of the applied force than those at the
// ends, but every tooth receives at least [MinInfluence] of it.
//
// The integration is explicit Euler with a frame-time dependent damping
// factor, so results depend on the dt sequence the caller supplies:
//
//	sim := teeth.New()
//	sim.Initialize(3, 900, 400)
//	sim.Step(1.0/60, p)
//	for _, pos := range sim.Positions(p.K) { ... }
package teeth
