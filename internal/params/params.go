// Package params holds the tunable inputs of the tooth simulation.
package params

import (
	"fmt"
	"math"

	"github.com/san-kum/toothsim/internal/dynamo"
)

// Raw is a set of control values as the user enters them.
type Raw struct {
	ForceN     float64 `yaml:"force_n" mapstructure:"force_n"`
	AngleDeg   float64 `yaml:"angle_deg" mapstructure:"angle_deg"`
	K          float64 `yaml:"k" mapstructure:"k"`
	Damping    float64 `yaml:"damping" mapstructure:"damping"`
	TeethCount int     `yaml:"teeth" mapstructure:"teeth"`
}

// State is the snapshot read by the simulation each step.
// Theta is in radians.
type State struct {
	ForceN  float64
	Theta   float64
	K       float64
	Damping float64
	Teeth   int
}

func FromRaw(raw Raw) State {
	var s State
	s.Update(raw)
	return s
}

// Update replaces every field from raw. Values are stored verbatim apart
// from the degree to radian conversion; nothing is clamped.
func (s *State) Update(raw Raw) {
	*s = State{
		ForceN:  raw.ForceN,
		Theta:   dynamo.DegToRad(raw.AngleDeg),
		K:       raw.K,
		Damping: raw.Damping,
		Teeth:   raw.TeethCount,
	}
}

func (s State) Raw() Raw {
	return Raw{
		ForceN:     s.ForceN,
		AngleDeg:   dynamo.RadToDeg(s.Theta),
		K:          s.K,
		Damping:    s.Damping,
		TeethCount: s.Teeth,
	}
}

func (s State) Force() dynamo.Vec2 { return dynamo.Polar(s.ForceN, s.Theta) }

func (s State) ForceComponents() (fx, fy float64) {
	f := s.Force()
	return f.X, f.Y
}

// Info is the informational readout shown next to the jaw.
func (s State) Info(teeth int) string {
	fx, fy := s.ForceComponents()
	return fmt.Sprintf("Fx=%.3f N, Fy=%.3f N, teeth: %d", fx, fy, teeth)
}

// Validate reports the first non-finite or out of range field. Update never
// calls it; callers that want to reject bad input do so before updating.
func (s State) Validate() error {
	fields := []struct {
		name string
		v    float64
		min  float64
	}{
		{"force", s.ForceN, 0},
		{"angle", s.Theta, math.Inf(-1)},
		{"k", s.K, math.Inf(-1)},
		{"damping", s.Damping, 0},
	}
	for _, f := range fields {
		if !dynamo.IsFinite(f.v) {
			return &dynamo.ParamError{Name: f.name, Value: f.v, Wrapped: dynamo.ErrNonFinite}
		}
		if f.v < f.min {
			return &dynamo.ParamError{Name: f.name, Value: f.v, Wrapped: dynamo.ErrParameterBounds}
		}
	}
	if s.Teeth < 1 {
		return &dynamo.ParamError{Name: "teeth", Value: float64(s.Teeth), Wrapped: dynamo.ErrParameterBounds}
	}
	return nil
}
