package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/toothsim/internal/teeth"
)

// ToothPath is the tooth icon outline in a 64x80 view box.
const ToothPath = "M16 10 C20 2,44 2,48 10 C56 18,56 30,48 36 C44 39,44 68,32 74 C20 68,20 39,16 36 C8 30,8 18,16 10 Z"

// FrameToSVG draws one tooth icon per position inside a width x height
// jaw area. Each icon is translated by its top-left corner.
func FrameToSVG(positions []teeth.Position, width, height float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#fbe9ec"/>
<defs><path id="tooth" d="%s" fill="white" stroke="#d0d0d0" stroke-width="2"/></defs>
`, width, height, width, height, ToothPath))

	for i, p := range positions {
		sb.WriteString(fmt.Sprintf(`<use id="tooth-%d" href="#tooth" transform="translate(%g %g)"/>
`, i, p.X, p.Y))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteFrame(path string, positions []teeth.Position, width, height float64) error {
	return os.WriteFile(path, []byte(FrameToSVG(positions, width, height)), 0644)
}
