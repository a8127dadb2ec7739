package viz

import "github.com/charmbracelet/harmonica"

// forceGauge eases the displayed force towards its target so slider jumps
// read as motion instead of snapping.
type forceGauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newForceGauge(fps int) forceGauge {
	if fps <= 0 {
		fps = 60
	}
	return forceGauge{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.9)}
}

func (g *forceGauge) step(target float64) float64 {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, target)
	return g.pos
}
