package params

import (
	"math"

	"github.com/san-kum/toothsim/internal/dynamo"
)

// Names lists the adjustable parameters in display order.
var Names = []string{"force", "angle", "k", "damping", "teeth"}

// Range describes a control's soft limits and step.
type Range struct {
	Min, Max, Step float64
}

// Ranges mirror the jaw page sliders. They bound nudges from the UI only.
var Ranges = map[string]Range{
	"force":   {Min: 0, Max: 20, Step: 0.1},
	"angle":   {Min: -180, Max: 180, Step: 1},
	"k":       {Min: 0.1, Max: 5, Step: 0.1},
	"damping": {Min: 0, Max: 1, Step: 0.01},
	"teeth":   {Min: 1, Max: 10, Step: 1},
}

// Params returns the current values keyed by name, angle in degrees.
func (s State) Params() map[string]float64 {
	raw := s.Raw()
	return map[string]float64{
		"force":   raw.ForceN,
		"angle":   raw.AngleDeg,
		"k":       raw.K,
		"damping": raw.Damping,
		"teeth":   float64(raw.TeethCount),
	}
}

// SetParam changes one parameter and reapplies the whole set through Update.
func (s *State) SetParam(name string, value float64) error {
	raw := s.Raw()
	switch name {
	case "force":
		raw.ForceN = value
	case "angle":
		raw.AngleDeg = value
	case "k":
		raw.K = value
	case "damping":
		raw.Damping = value
	case "teeth":
		raw.TeethCount = int(math.Round(value))
	default:
		return &dynamo.ParamError{Name: name, Value: value, Wrapped: dynamo.ErrUnknownParam}
	}
	s.Update(raw)
	return nil
}

// Nudge moves a parameter by steps increments of its range step, staying
// inside the range. The new value is returned.
func (s *State) Nudge(name string, steps int) (float64, error) {
	r, ok := Ranges[name]
	if !ok {
		return 0, &dynamo.ParamError{Name: name, Wrapped: dynamo.ErrUnknownParam}
	}
	v := s.Params()[name] + float64(steps)*r.Step
	v = math.Round(v/r.Step) * r.Step
	v = dynamo.Clamp(v, r.Min, r.Max)
	return v, s.SetParam(name, v)
}
