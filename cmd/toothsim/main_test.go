package main

import (
	"math"
	"strconv"
	"testing"

	"github.com/san-kum/toothsim/internal/params"
	"github.com/san-kum/toothsim/internal/teeth"
)

func TestNewRootCmd_FrameDefaultsPerCommand(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		cmd  string
		want int
		got  *int
	}{
		{"run", 120, &runFrames},
		{"svg", 60, &svgFrames},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			sub, _, err := root.Find([]string{tt.cmd})
			if err != nil {
				t.Fatalf("find %s: %v", tt.cmd, err)
			}
			f := sub.Flags().Lookup("frames")
			if f == nil {
				t.Fatalf("%s has no frames flag", tt.cmd)
			}
			if f.DefValue != strconv.Itoa(tt.want) {
				t.Errorf("%s --frames default = %s, want %d", tt.cmd, f.DefValue, tt.want)
			}
			if *tt.got != tt.want {
				t.Errorf("%s frame count after setup = %d, want %d", tt.cmd, *tt.got, tt.want)
			}
		})
	}
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "svg", "presets", "config"} {
		sub, _, err := root.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCentreTooth(t *testing.T) {
	sim := teeth.New()
	sim.Initialize(3, 900, 400)
	p := params.FromRaw(params.Raw{ForceN: 5, AngleDeg: 0, K: 1, Damping: 0.2, TeethCount: 3})
	sim.Step(0.016, p)

	offset, disp, err := centreTooth(sim, sim.Positions(p.K))
	if err != nil {
		t.Fatal(err)
	}
	if !disp.IsValid() {
		t.Fatalf("displacement %v not finite", disp)
	}
	if disp.X <= 0 || offset <= 0 {
		t.Errorf("expected positive push, got offset=%g disp=%v", offset, disp)
	}
}

func TestCentreTooth_NonFinite(t *testing.T) {
	sim := teeth.New()
	sim.Initialize(1, 900, 400)
	p := params.FromRaw(params.Raw{ForceN: math.NaN(), K: 1, Damping: 0.2, TeethCount: 1})
	sim.Step(0.016, p)

	_, disp, err := centreTooth(sim, sim.Positions(p.K))
	if err != nil {
		t.Fatal(err)
	}
	if disp.IsValid() {
		t.Errorf("expected non-finite displacement, got %v", disp)
	}
}

func TestCentreTooth_Empty(t *testing.T) {
	offset, disp, err := centreTooth(teeth.New(), nil)
	if err != nil || offset != 0 || disp.X != 0 || disp.Y != 0 {
		t.Errorf("empty row: offset=%g disp=%v err=%v", offset, disp, err)
	}
}
