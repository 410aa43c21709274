package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakshamxt/fringe/internal/field"
	"github.com/sakshamxt/fringe/internal/rain"
)

// Renderer materializes one full frame of styled text per tick. Each frame
// fully replaces the previous one; there is no diffing. Styles are cached
// per color since the palette a frame touches is small and recurring.
type Renderer struct {
	styles map[string]lipgloss.Style
}

func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[string]lipgloss.Style)}
}

func (r *Renderer) style(hex string) lipgloss.Style {
	s, ok := r.styles[hex]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		r.styles[hex] = s
	}
	return s
}

// Wave walks the grid row-major, sampling the field model for every cell
// at clock value t. Runs of one color are styled together to keep the
// escape-sequence overhead down.
func (r *Renderer) Wave(m *field.Model, t float64) string {
	if m.Geo.Empty() {
		return ""
	}
	var b strings.Builder
	var run strings.Builder
	runHex := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runHex == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(r.style(runHex).Render(run.String()))
		}
		run.Reset()
	}
	for row := 0; row < m.Geo.Rows; row++ {
		if row > 0 {
			flush()
			b.WriteByte('\n')
		}
		for col := 0; col < m.Geo.Columns; col++ {
			c := m.Sample(col, row, t)
			if c.Hex != runHex {
				flush()
				runHex = c.Hex
			}
			run.WriteRune(c.Glyph)
		}
	}
	flush()
	return b.String()
}

// Rain renders the rain grid; opacity is already folded into each cell's
// color, blank cells pass through unstyled.
func (r *Renderer) Rain(g *rain.Grid) string {
	if g.Columns <= 0 || g.Rows <= 0 {
		return ""
	}
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Columns; col++ {
			c := g.At(col, row)
			if !c.Visible() {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(r.style(g.Color(c.Opacity)).Render(string(c.Glyph)))
		}
	}
	return b.String()
}

// PlainWave renders one unstyled text frame, suitable for piping or
// comparing in tests.
func PlainWave(m *field.Model, t float64) string {
	if m.Geo.Empty() {
		return ""
	}
	var b strings.Builder
	for row := 0; row < m.Geo.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < m.Geo.Columns; col++ {
			b.WriteRune(m.Sample(col, row, t).Glyph)
		}
	}
	return b.String()
}
