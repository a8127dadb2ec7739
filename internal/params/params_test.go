package params

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/toothsim/internal/dynamo"
)

func TestUpdate_ConvertsAngle(t *testing.T) {
	var s State
	s.Update(Raw{ForceN: 10, AngleDeg: 90, K: 1.5, Damping: 0.2, TeethCount: 4})

	if s.ForceN != 10 || s.K != 1.5 || s.Damping != 0.2 || s.Teeth != 4 {
		t.Errorf("unexpected state %+v", s)
	}
	if math.Abs(s.Theta-math.Pi/2) > 1e-12 {
		t.Errorf("theta = %v, want pi/2", s.Theta)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	s := FromRaw(Raw{ForceN: 3, AngleDeg: 45, K: 2, Damping: 0.5, TeethCount: 7})
	s.Update(Raw{TeethCount: 1})

	if s != (State{Teeth: 1}) {
		t.Errorf("stale fields survived update: %+v", s)
	}
}

func TestUpdate_NoClamping(t *testing.T) {
	s := FromRaw(Raw{ForceN: -5, AngleDeg: 720, K: -1, Damping: 99, TeethCount: 0})
	if s.ForceN != -5 || s.K != -1 || s.Damping != 99 || s.Teeth != 0 {
		t.Errorf("values were altered: %+v", s)
	}

	s = FromRaw(Raw{ForceN: math.NaN()})
	if !math.IsNaN(s.ForceN) {
		t.Error("NaN force should pass through")
	}
}

func TestForceComponents(t *testing.T) {
	tests := []struct {
		angle  float64
		fx, fy float64
	}{
		{0, 10, 0},
		{90, 0, 10},
		{180, -10, 0},
		{-90, 0, -10},
	}

	for _, tt := range tests {
		s := FromRaw(Raw{ForceN: 10, AngleDeg: tt.angle})
		fx, fy := s.ForceComponents()
		if math.Abs(fx-tt.fx) > 1e-9 || math.Abs(fy-tt.fy) > 1e-9 {
			t.Errorf("angle %v: got (%v, %v), want (%v, %v)", tt.angle, fx, fy, tt.fx, tt.fy)
		}
	}
}

func TestInfo(t *testing.T) {
	s := FromRaw(Raw{ForceN: 2, AngleDeg: 0})
	want := "Fx=2.000 N, Fy=0.000 N, teeth: 3"
	if got := s.Info(3); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want error
	}{
		{"ok", Raw{ForceN: 5, K: 1, Damping: 0.2, TeethCount: 3}, nil},
		{"nan force", Raw{ForceN: math.NaN(), TeethCount: 3}, dynamo.ErrNonFinite},
		{"inf k", Raw{K: math.Inf(1), TeethCount: 3}, dynamo.ErrNonFinite},
		{"negative force", Raw{ForceN: -1, TeethCount: 3}, dynamo.ErrParameterBounds},
		{"negative damping", Raw{Damping: -0.1, TeethCount: 3}, dynamo.ErrParameterBounds},
		{"no teeth", Raw{TeethCount: 0}, dynamo.ErrParameterBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromRaw(tt.raw).Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetParam(t *testing.T) {
	s := FromRaw(Raw{ForceN: 1, AngleDeg: 10, K: 1, Damping: 0.1, TeethCount: 5})

	if err := s.SetParam("angle", 30); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Params()["angle"]-30) > 1e-9 {
		t.Errorf("angle = %v, want 30", s.Params()["angle"])
	}
	if s.ForceN != 1 || s.Teeth != 5 {
		t.Errorf("other fields changed: %+v", s)
	}

	if err := s.SetParam("teeth", 2.6); err != nil {
		t.Fatal(err)
	}
	if s.Teeth != 3 {
		t.Errorf("teeth = %d, want 3", s.Teeth)
	}

	if err := s.SetParam("mass", 1); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestNudge(t *testing.T) {
	s := FromRaw(Raw{ForceN: 19.95, Damping: 0, TeethCount: 1})

	v, err := s.Nudge("force", 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 20 || s.ForceN != 20 {
		t.Errorf("force nudge = %v, want 20", v)
	}

	if v, _ := s.Nudge("damping", -1); v != 0 {
		t.Errorf("damping should stay at floor, got %v", v)
	}
	if v, _ := s.Nudge("teeth", 2); v != 3 || s.Teeth != 3 {
		t.Errorf("teeth nudge = %v (%d), want 3", v, s.Teeth)
	}
	if _, err := s.Nudge("bogus", 1); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
