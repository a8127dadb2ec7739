package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/toothsim/internal/teeth"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	c.Set(3, 7)
	assert.True(t, c.IsSet(0, 0))
	assert.True(t, c.IsSet(3, 7))
	assert.False(t, c.IsSet(1, 0))
	assert.Equal(t, rune(0x2801), c.Grid[0][0])

	c.Set(-1, 0)
	c.Set(100, 100)
	assert.False(t, c.IsSet(100, 100))

	c.Clear()
	assert.False(t, c.IsSet(0, 0))
	assert.Equal(t, strings.Repeat(string(rune(brailleBlank)), 4)+"\n"+strings.Repeat(string(rune(brailleBlank)), 4), c.String())
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 3, 19, 3)
	for x := 0; x < 20; x++ {
		assert.True(t, c.IsSet(x, 3), "pixel %d not set", x)
	}
	assert.False(t, c.IsSet(5, 2))
}

func TestDrawTooth_FollowsPosition(t *testing.T) {
	c := NewCanvas(50, 10)
	proj := NewProjection(c, 500, 200)

	c.DrawTooth(proj, teeth.Position{X: 0, Y: 0})
	left := litColumns(c)

	c.Clear()
	c.DrawTooth(proj, teeth.Position{X: 200, Y: 0})
	right := litColumns(c)

	assert.NotEmpty(t, left)
	assert.Equal(t, len(left), len(right))
	assert.Equal(t, left[0]+40, right[0])
}

func TestNewProjection_Degenerate(t *testing.T) {
	c := NewCanvas(10, 4)
	assert.Equal(t, Projection{}, NewProjection(c, 0, 100))
	assert.Equal(t, Projection{SX: 0.2, SY: 0.16}, NewProjection(c, 100, 100))
}

func TestGaugeBar(t *testing.T) {
	assert.Equal(t, 10, strings.Count(GaugeBar(0.5, 20), "█"))
	assert.Equal(t, 20, strings.Count(GaugeBar(2, 20), "█"))
	assert.Equal(t, 20, strings.Count(GaugeBar(-1, 20), "░"))
}

func litColumns(c *Canvas) []int {
	var cols []int
	for x := 0; x < c.Width*2; x++ {
		for y := 0; y < c.Height*4; y++ {
			if c.IsSet(x, y) {
				cols = append(cols, x)
				break
			}
		}
	}
	return cols
}
