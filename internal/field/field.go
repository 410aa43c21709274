package field

import (
	"math"

	"github.com/sakshamxt/fringe/internal/grid"
)

// CellKind classifies a grid cell for rendering.
type CellKind uint8

const (
	// CellEmpty is the quiet region behind the sources; always blank.
	CellEmpty CellKind = iota
	// CellBarrier is an opaque cell on the barrier line.
	CellBarrier
	// CellGap is a slit opening on the barrier line; always blank.
	CellGap
	// CellField is eligible for wave sampling.
	CellField
)

// Source is a point wave emitter sitting in a slit on the barrier line.
type Source struct {
	X, Y int
}

// Params are the tunable constants of the wave model. All are compile-time
// presentation choices surfaced through the config layer.
type Params struct {
	Wavenumber  float64 // k, radians per cell
	Speed       float64 // s, phase advance per clock unit
	Gain        float64 // intensity scale before clamping
	Attenuation float64 // radial falloff factor

	SeparationFrac float64 // fraction of the transverse extent between slits
	GapRadius      int     // slit half-width in cells

	HuePositive float64 // degrees, amplitude above equilibrium
	HueNegative float64 // degrees, amplitude below equilibrium
	Saturation  float64
	LightMin    float64
	LightMax    float64
	LightExp    float64 // < 1 biases mid-tones brighter
}

// DefaultParams returns the stock wave tuning.
func DefaultParams() Params {
	return Params{
		Wavenumber:     0.9,
		Speed:          3.0,
		Gain:           45.0,
		Attenuation:    1.5,
		SeparationFrac: 0.22,
		GapRadius:      1,
		HuePositive:    197,
		HueNegative:    330,
		Saturation:     0.85,
		LightMin:       0.20,
		LightMax:       0.85,
		LightExp:       0.65,
	}
}

// Model holds everything derived from one surface geometry: the wall cell
// map, the three sources and the distance cache. It is rebuilt wholesale on
// resize and never mutated by sampling.
type Model struct {
	Geo         grid.Geometry
	Orientation grid.Orientation
	Sources     [3]Source

	params Params
	kinds  []CellKind // row-major, Columns*Rows
	dists  []float64  // row-major, 3 per cell
}

// barrierFrac places the wall this far along the propagation axis.
const barrierFrac = 0.125

// New derives a Model from the geometry. An empty geometry yields a Model
// that samples nothing.
func New(geo grid.Geometry, p Params) *Model {
	m := &Model{
		Geo:         geo,
		Orientation: geo.Orient(),
		params:      p,
	}
	if geo.Empty() {
		return m
	}

	along, across := geo.Columns, geo.Rows
	if m.Orientation == grid.Vertical {
		along, across = geo.Rows, geo.Columns
	}

	wall := int(float64(along) * barrierFrac)
	if wall < 1 {
		wall = 1
	}

	center := across / 2
	sep := int(float64(across) * p.SeparationFrac)
	offsets := [3]int{-sep, 0, sep}
	for i, off := range offsets {
		t := center + off
		if t < 0 {
			t = 0
		}
		if t >= across {
			t = across - 1
		}
		if m.Orientation == grid.Horizontal {
			m.Sources[i] = Source{X: wall, Y: t}
		} else {
			m.Sources[i] = Source{X: t, Y: wall}
		}
	}

	m.kinds = make([]CellKind, geo.Cells())
	m.dists = make([]float64, geo.Cells()*3)
	for row := 0; row < geo.Rows; row++ {
		for col := 0; col < geo.Columns; col++ {
			a, t := col, row
			if m.Orientation == grid.Vertical {
				a, t = row, col
			}
			idx := row*geo.Columns + col
			switch {
			case a < wall:
				m.kinds[idx] = CellEmpty
			case a == wall:
				m.kinds[idx] = CellBarrier
				if m.nearSlit(t, center, offsets) {
					m.kinds[idx] = CellGap
				}
			default:
				m.kinds[idx] = CellField
				for i, src := range m.Sources {
					dx := float64(col - src.X)
					dy := float64(row - src.Y)
					m.dists[idx*3+i] = math.Sqrt(dx*dx + dy*dy)
				}
			}
		}
	}
	return m
}

func (m *Model) nearSlit(transverse, center int, offsets [3]int) bool {
	for _, off := range offsets {
		d := transverse - (center + off)
		if d < 0 {
			d = -d
		}
		if d <= m.params.GapRadius {
			return true
		}
	}
	return false
}

// Params returns the tuning the model was built with.
func (m *Model) Params() Params { return m.params }

// Kind reports the wall cell map entry for (col, row). Out-of-range cells
// are empty.
func (m *Model) Kind(col, row int) CellKind {
	if col < 0 || row < 0 || col >= m.Geo.Columns || row >= m.Geo.Rows {
		return CellEmpty
	}
	return m.kinds[row*m.Geo.Columns+col]
}

// Distance returns the cached Euclidean distance from a field cell to
// source i, in cell units. Zero for non-field cells.
func (m *Model) Distance(col, row, i int) float64 {
	if col < 0 || row < 0 || col >= m.Geo.Columns || row >= m.Geo.Rows {
		return 0
	}
	return m.dists[(row*m.Geo.Columns+col)*3+i]
}

// Amplitude is the superposed signed wave value at a field cell for clock
// value t. A plain sum over the three sources, so constructive and
// destructive fringes emerge; max(1, d*attenuation) guards the division at
// the sources.
func (m *Model) Amplitude(col, row int, t float64) float64 {
	idx := (row*m.Geo.Columns + col) * 3
	var a float64
	for i := 0; i < 3; i++ {
		d := m.dists[idx+i]
		a += math.Sin(m.params.Wavenumber*d-m.params.Speed*t) / math.Max(1, d*m.params.Attenuation)
	}
	return a
}

// Intensity is the clamped perceptual brightness for an amplitude:
// the optics convention intensity = amplitude^2, scaled by gain into [0, 1].
func (m *Model) Intensity(amplitude float64) float64 {
	i := amplitude * amplitude * m.params.Gain
	if i > 1 {
		return 1
	}
	return i
}
