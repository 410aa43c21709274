// Package rain implements the digital-rain variant: every cell holds an
// independent (glyph, opacity) pair with no spatial coupling. Unlike the
// wave model it is randomized per tick, though reproducible under a fixed
// seed.
package rain

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sakshamxt/fringe/internal/grid"
)

// CharSets are the named glyph pools a cell can resample from.
var CharSets = map[string][]rune{
	"matrix":  []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ"),
	"binary":  []rune("01"),
	"ascii":   []rune("abcdefghijklmnopqrstuvwxyz0123456789"),
	"symbols": []rune("!@#$%^&*()_+-=[]{}<>?"),
}

// Params are the rain tuning constants.
type Params struct {
	RespawnProb float64 // chance per cell per tick of resampling
	FadeStep    float64 // opacity lost per tick
	CharSet     []rune

	Hue        float64 // degrees
	Saturation float64
	LightMax   float64 // lightness at full opacity
}

// DefaultParams returns the stock rain tuning.
func DefaultParams() Params {
	return Params{
		RespawnProb: 0.02,
		FadeStep:    0.035,
		CharSet:     CharSets["matrix"],
		Hue:         130,
		Saturation:  0.9,
		LightMax:    0.7,
	}
}

// Cell is one grid cell's animation state.
type Cell struct {
	Glyph   rune
	Opacity float64
}

// Grid owns the per-cell state for one geometry. The tick loop passes it
// explicitly; there is no ambient state. Rebuilt wholesale on resize.
type Grid struct {
	Columns, Rows int

	params Params
	cells  []Cell // row-major
	rng    *rand.Rand
}

// New allocates a fully faded grid for the geometry. The seed makes runs
// reproducible.
func New(geo grid.Geometry, p Params, seed int64) *Grid {
	if len(p.CharSet) == 0 {
		p.CharSet = CharSets["matrix"]
	}
	g := &Grid{
		Columns: geo.Columns,
		Rows:    geo.Rows,
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
	}
	if !geo.Empty() {
		g.cells = make([]Cell, geo.Cells())
		for i := range g.cells {
			g.cells[i].Glyph = ' '
		}
	}
	return g
}

// Step advances one tick: every opacity decays toward zero, and each cell
// independently resamples with the respawn probability, resetting its
// opacity to 1.
func (g *Grid) Step() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Opacity -= g.params.FadeStep
		if c.Opacity < 0 {
			c.Opacity = 0
		}
		if g.rng.Float64() < g.params.RespawnProb {
			c.Glyph = g.params.CharSet[g.rng.Intn(len(g.params.CharSet))]
			c.Opacity = 1
		}
	}
}

// At returns the cell at (col, row); faded-out cells read as blank.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= g.Columns || row >= g.Rows {
		return Cell{Glyph: ' '}
	}
	return g.cells[row*g.Columns+col]
}

// Color maps opacity straight onto lightness; a cell fades to black rather
// than to a background color, which reads as transparency in the terminal.
func (g *Grid) Color(opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return colorful.Hsl(g.params.Hue, g.params.Saturation, g.params.LightMax*opacity).Hex()
}

// Visible reports whether the cell contributes ink to the frame.
func (c Cell) Visible() bool {
	return c.Opacity > 0 && c.Glyph != ' '
}
