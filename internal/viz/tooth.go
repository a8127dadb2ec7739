package viz

import (
	"math"

	"github.com/san-kum/toothsim/internal/teeth"
)

// toothOutline traces the tooth icon in its 64x80 box, crown up.
var toothOutline = [][2]float64{
	{16, 10}, {32, 4}, {48, 10}, {54, 22}, {48, 36}, {44, 54},
	{32, 74}, {20, 54}, {16, 36}, {10, 22}, {16, 10},
}

const (
	toothBoxW = 64.0
	toothBoxH = 80.0
)

// Projection maps layout units to canvas sub-pixels.
type Projection struct {
	SX, SY float64
}

// NewProjection fits a width x height layout onto c.
func NewProjection(c *Canvas, width, height float64) Projection {
	if width <= 0 || height <= 0 {
		return Projection{}
	}
	return Projection{
		SX: float64(c.Width*2) / width,
		SY: float64(c.Height*4) / height,
	}
}

func (p Projection) point(x, y float64) (int, int) {
	return int(math.Round(x * p.SX)), int(math.Round(y * p.SY))
}

// DrawTooth draws one tooth with its icon box anchored at pos, as the
// page translated each icon by its top-left corner.
func (c *Canvas) DrawTooth(p Projection, pos teeth.Position) {
	for i := 1; i < len(toothOutline); i++ {
		a, b := toothOutline[i-1], toothOutline[i]
		x0, y0 := p.point(pos.X+a[0], pos.Y+a[1])
		x1, y1 := p.point(pos.X+b[0], pos.Y+b[1])
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawJaw draws a gum line under the resting row.
func (c *Canvas) DrawJaw(p Projection, positions []teeth.Position) {
	if len(positions) == 0 {
		return
	}
	y := positions[0].Y + toothBoxH*0.6
	x0, py := p.point(positions[0].X-toothBoxW/4, y)
	x1, _ := p.point(positions[len(positions)-1].X+toothBoxW*1.25, y)
	c.DrawLine(x0, py, x1, py)
}
