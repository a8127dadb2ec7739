package driver

import (
	"time"

	"github.com/san-kum/toothsim/internal/params"
	"github.com/san-kum/toothsim/internal/teeth"
)

// DefaultMaxDt caps the step after a stall such as a suspended terminal.
const DefaultMaxDt = 0.035

// Input is a parameter change from the UI. Commit marks a tooth count
// change that should rebuild the row.
type Input struct {
	Raw    params.Raw
	Commit bool
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	DT        float64
	Positions []teeth.Position
	Fx, Fy    float64
	Teeth     int
	Info      string
}

type Ticker struct {
	sim           *teeth.Simulation
	params        params.State
	width, height float64
	maxDt         float64
	last          time.Time
	started       bool
}

// NewTicker initializes sim with p.Teeth teeth in a width x height layout.
func NewTicker(sim *teeth.Simulation, p params.State, width, height, maxDt float64) *Ticker {
	if maxDt <= 0 {
		maxDt = DefaultMaxDt
	}
	t := &Ticker{sim: sim, params: p, width: width, height: height, maxDt: maxDt}
	t.Reset()
	return t
}

func (t *Ticker) Params() params.State         { return t.params }
func (t *Ticker) Simulation() *teeth.Simulation { return t.sim }
func (t *Ticker) Layout() (width, height float64) {
	return t.width, t.height
}

// Start marks now as the previous frame time.
func (t *Ticker) Start(now time.Time) {
	t.last = now
	t.started = true
}

// Apply stores the new parameters. Only a commit rebuilds the row.
func (t *Ticker) Apply(in Input) {
	t.params.Update(in.Raw)
	if in.Commit {
		t.Reset()
	}
}

// Resize records a new layout size. It takes effect at the next Reset.
func (t *Ticker) Resize(width, height float64) {
	t.width, t.height = width, height
}

// Reset rebuilds the row with the current tooth count and layout.
func (t *Ticker) Reset() {
	t.sim.Initialize(t.params.Teeth, t.width, t.height)
}

// Tick advances the simulation by the time elapsed since the last tick.
func (t *Ticker) Tick(now time.Time) Frame {
	if !t.started {
		t.Start(now)
	}
	dt := now.Sub(t.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > t.maxDt {
		dt = t.maxDt
	}
	t.last = now
	return t.Advance(dt)
}

// Advance steps by an explicit dt, bypassing the clock.
func (t *Ticker) Advance(dt float64) Frame {
	t.sim.Step(dt, t.params)

	fx, fy := t.params.ForceComponents()
	n := t.sim.Len()
	return Frame{
		DT:        dt,
		Positions: t.sim.Positions(t.params.K),
		Fx:        fx,
		Fy:        fy,
		Teeth:     n,
		Info:      t.params.Info(n),
	}
}
