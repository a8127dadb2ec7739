package teeth

import (
	"math"

	"github.com/san-kum/toothsim/internal/dynamo"
	"github.com/san-kum/toothsim/internal/params"
)

const (
	// Pitch is the horizontal spacing between rest positions in layout units.
	Pitch = 100.0
	// BaseYOffset lifts the row above the vertical centre of the layout.
	BaseYOffset = 40.0
	// PixelScale converts displacement into layout units before k is applied.
	PixelScale = 1200.0
	// DampingGain scales the damping parameter into a per-second decay rate.
	DampingGain = 6.0
	// MinInfluence is the share of the force an edge tooth still receives.
	MinInfluence = 0.6

	DefaultMass     = 0.01
	MaxDisplacement = 0.02
)

// Body is one tooth. Base never changes after Initialize.
type Body struct {
	Base dynamo.Vec2
	Disp dynamo.Vec2
	Vel  dynamo.Vec2
	Mass float64
}

// Position is a render coordinate in layout space.
type Position struct {
	X, Y float64
}

// Simulation owns the tooth row. The zero value is uninitialized.
type Simulation struct {
	bodies []Body
	ready  bool
}

func New() *Simulation {
	return &Simulation{}
}

func (s *Simulation) Ready() bool { return s.ready }
func (s *Simulation) Len() int    { return len(s.bodies) }

// Initialize replaces the body set with count resting teeth centred in a
// width x height layout.
func (s *Simulation) Initialize(count int, width, height float64) {
	if count < 0 {
		count = 0
	}
	startX := (width - Pitch*float64(count-1)) / 2
	baseY := height/2 - BaseYOffset

	bodies := make([]Body, count)
	for i := range bodies {
		bodies[i] = Body{
			Base: dynamo.Vec2{X: startX + float64(i)*Pitch, Y: baseY},
			Mass: DefaultMass,
		}
	}
	s.bodies = bodies
	s.ready = true
}

// Influence is the share of the nominal force received by tooth i of n.
func Influence(i, n int) float64 {
	center := float64(n-1) / 2
	distFactor := 1 - math.Abs(float64(i)-center)/float64(n)
	return MinInfluence + (1-MinInfluence)*distFactor
}

// Step advances every tooth by dt seconds. dt is not clamped here.
func (s *Simulation) Step(dt float64, p params.State) {
	if !s.ready {
		return
	}
	force := p.Force()
	damp := math.Max(0, 1-p.Damping*dt*DampingGain)
	n := len(s.bodies)

	for i := range s.bodies {
		b := &s.bodies[i]
		applied := force.Scale(Influence(i, n))
		accel := dynamo.Vec2{X: applied.X / b.Mass, Y: applied.Y / b.Mass}

		b.Vel = b.Vel.Add(accel.Scale(dt)).Scale(damp)
		b.Disp = b.Disp.Add(b.Vel.Scale(dt)).Clamp(MaxDisplacement)
	}
}

// Positions maps displacements to render coordinates using the visual gain
// k. Vertical motion is drawn at half scale.
func (s *Simulation) Positions(k float64) []Position {
	if !s.ready {
		return nil
	}
	out := make([]Position, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = Position{
			X: b.Base.X + roundHalfUp(k*b.Disp.X*PixelScale),
			Y: b.Base.Y + roundHalfUp(k*b.Disp.Y*PixelScale/2),
		}
	}
	return out
}

// Bodies returns a copy of the current body state.
func (s *Simulation) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Body returns tooth i.
func (s *Simulation) Body(i int) (Body, error) {
	if !s.ready {
		return Body{}, dynamo.ErrNotInitialized
	}
	if i < 0 || i >= len(s.bodies) {
		return Body{}, &dynamo.ParamError{Name: "index", Value: float64(i), Wrapped: dynamo.ErrParameterBounds}
	}
	return s.bodies[i], nil
}

// roundHalfUp rounds half values towards +Inf so offsets of -0.5 snap to 0
// rather than -1.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
