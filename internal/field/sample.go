package field

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GlyphRamp orders glyphs sparsest to densest; higher intensity picks a
// visually denser glyph.
var GlyphRamp = []rune(" .=+*#%@WM")

const (
	barrierGlyph = '█'
	barrierHex   = "#3a4766"
	blankGlyph   = ' '
)

// Cell is one rendered grid cell.
type Cell struct {
	Kind  CellKind
	Glyph rune
	Hex   string // empty for blank cells
}

// GlyphIndex maps a clamped intensity onto the ramp. Monotone and always
// in range, even at the extremes.
func GlyphIndex(clamped float64) int {
	if clamped <= 0 {
		return 0
	}
	idx := int(math.Floor(clamped * float64(len(GlyphRamp)-1)))
	if idx > len(GlyphRamp)-1 {
		idx = len(GlyphRamp) - 1
	}
	return idx
}

// Color maps a signed amplitude and its clamped intensity to an HSL color:
// hue flips on the sign of the amplitude, lightness follows
// clamped^LightExp scaled into [LightMin, LightMax], saturation is fixed.
func (m *Model) Color(amplitude, clamped float64) string {
	hue := m.params.HuePositive
	if amplitude < 0 {
		hue = m.params.HueNegative
	}
	light := m.params.LightMin + (m.params.LightMax-m.params.LightMin)*math.Pow(clamped, m.params.LightExp)
	return colorful.Hsl(hue, m.params.Saturation, light).Hex()
}

// Sample produces the glyph and color for one cell at clock value t. Wall
// cells are a static overlay: barrier cells get a fixed glyph and color,
// gap and source-side cells stay blank regardless of t.
func (m *Model) Sample(col, row int, t float64) Cell {
	kind := m.Kind(col, row)
	switch kind {
	case CellBarrier:
		return Cell{Kind: kind, Glyph: barrierGlyph, Hex: barrierHex}
	case CellEmpty, CellGap:
		return Cell{Kind: kind, Glyph: blankGlyph}
	}
	a := m.Amplitude(col, row, t)
	clamped := m.Intensity(a)
	glyph := GlyphRamp[GlyphIndex(clamped)]
	if glyph == blankGlyph {
		return Cell{Kind: kind, Glyph: blankGlyph}
	}
	return Cell{Kind: kind, Glyph: glyph, Hex: m.Color(a, clamped)}
}
