// Package dynamo provides the primitives shared by the tooth simulation.
//
//   - [Vec2]: planar vector used for positions, displacements and velocities
//   - [Clamp], [Polar]: scalar helpers for saturation and force resolution
//   - sentinel errors such as [ErrParameterBounds] and [ErrNonFinite]
//
// # Example
//
//	f := dynamo.Polar(10, dynamo.DegToRad(30))
//	d := dynamo.Vec2{X: 0.5}.Clamp(0.02)
package dynamo
