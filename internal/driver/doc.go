// Package driver runs the tooth simulation frame by frame.
//
// A [Ticker] reconciles one frame: it measures the wall-clock delta since the
// previous frame, clamps it to MaxDt, steps the simulation and collects the
// render positions. A [Loop] owns a Ticker and reschedules it until its
// context is cancelled, applying [Input] messages sent from other goroutines
// between frames.
package driver
