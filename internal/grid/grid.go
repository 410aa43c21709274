package grid

import "math"

// Character cell pitch in pixels. These are presentation constants matching
// a typical 8x16 terminal font, shared with the GIF rasterizer; they are
// tunable, not physical truths.
const (
	CharWidthPx  = 8.0
	CharHeightPx = 16.0
)

// Orientation selects which way the animation flows across the surface.
type Orientation int

const (
	// Horizontal: wide surface, barrier is a column, waves travel left to right.
	Horizontal Orientation = iota
	// Vertical: tall surface, barrier is a row, waves travel top to bottom.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Geometry is the character-grid shape derived from a surface's pixel size.
type Geometry struct {
	PixelWidth  float64
	PixelHeight float64
	Columns     int
	Rows        int
}

// Size converts pixel dimensions into a character grid. Columns and rows
// floor toward zero; non-positive pixel dimensions yield an empty grid.
func Size(pxWidth, pxHeight float64) Geometry {
	g := Geometry{PixelWidth: pxWidth, PixelHeight: pxHeight}
	if pxWidth > 0 {
		g.Columns = int(math.Floor(pxWidth / CharWidthPx))
	}
	if pxHeight > 0 {
		g.Rows = int(math.Floor(pxHeight / CharHeightPx))
	}
	return g
}

// FromCells builds the geometry for a surface already measured in character
// cells, such as a terminal window.
func FromCells(columns, rows int) Geometry {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	return Geometry{
		PixelWidth:  float64(columns) * CharWidthPx,
		PixelHeight: float64(rows) * CharHeightPx,
		Columns:     columns,
		Rows:        rows,
	}
}

// Empty reports whether the grid has no renderable cells.
func (g Geometry) Empty() bool {
	return g.Columns <= 0 || g.Rows <= 0
}

// Cells returns the total cell count.
func (g Geometry) Cells() int {
	if g.Empty() {
		return 0
	}
	return g.Columns * g.Rows
}

// Orient picks the flow direction from the surface's own aspect ratio.
// A surface taller than it is wide flows top to bottom. The same policy
// applies to every variant.
func (g Geometry) Orient() Orientation {
	if g.PixelHeight > g.PixelWidth {
		return Vertical
	}
	return Horizontal
}
