package field

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sakshamxt/fringe/internal/grid"
)

var _ = Describe("Model", func() {
	var m *Model

	// 80x20 cells: horizontal flow, wall at column 10, sources at rows
	// 6, 10 and 14 on the wall line.
	BeforeEach(func() {
		m = New(grid.FromCells(80, 20), DefaultParams())
	})

	Describe("wall cell map", func() {
		It("places the three sources symmetrically on the wall line", func() {
			Expect(m.Orientation).To(Equal(grid.Horizontal))
			Expect(m.Sources).To(Equal([3]Source{{10, 6}, {10, 10}, {10, 14}}))
		})

		It("marks exactly the barrier line as barrier or gap", func() {
			for row := 0; row < 20; row++ {
				Expect(m.Kind(10, row)).To(Or(Equal(CellBarrier), Equal(CellGap)))
				Expect(m.Kind(3, row)).To(Equal(CellEmpty))
				Expect(m.Kind(40, row)).To(Equal(CellField))
			}
		})

		It("opens a gap iff within the gap radius of a source", func() {
			for row := 0; row < 20; row++ {
				want := CellBarrier
				for _, src := range m.Sources {
					if d := row - src.Y; d >= -1 && d <= 1 {
						want = CellGap
					}
				}
				Expect(m.Kind(10, row)).To(Equal(want), "row %d", row)
			}
		})

		It("renders wall cells as a static overlay independent of time", func() {
			for row := 0; row < 20; row++ {
				at0 := m.Sample(10, row, 0)
				at9 := m.Sample(10, row, 9.7)
				Expect(at9).To(Equal(at0))
				if at0.Kind == CellGap {
					Expect(at0.Glyph).To(Equal(' '))
					Expect(at0.Hex).To(BeEmpty())
				}
			}
			Expect(m.Sample(3, 5, 0).Glyph).To(Equal(' '))
		})
	})

	Describe("distance cache", func() {
		It("caches Euclidean distances in cell units", func() {
			Expect(m.Distance(11, 10, 1)).To(BeNumerically("~", 1.0, 1e-12))
			Expect(m.Distance(11, 10, 0)).To(BeNumerically("~", math.Sqrt(17), 1e-12))
			Expect(m.Distance(14, 7, 2)).To(BeNumerically("~", math.Hypot(4, 7), 1e-12))
		})

		It("is rebuilt to exactly the new geometry on resize", func() {
			small := New(grid.FromCells(40, 10), DefaultParams())
			Expect(small.Geo.Cells()).To(Equal(400))
			Expect(len(small.kinds)).To(Equal(400))
			Expect(len(small.dists)).To(Equal(400 * 3))
			// nothing from the 80x20 build leaks through
			Expect(small.Kind(50, 5)).To(Equal(CellEmpty))
		})

		It("derives identical structures for identical geometry", func() {
			again := New(grid.FromCells(80, 20), DefaultParams())
			Expect(again.Sources).To(Equal(m.Sources))
			Expect(again.kinds).To(Equal(m.kinds))
			Expect(again.dists).To(Equal(m.dists))
		})
	})

	Describe("amplitude", func() {
		It("matches the hand-computed value next to the center source at t=0", func() {
			p := m.Params()
			var want float64
			for i := 0; i < 3; i++ {
				d := m.Distance(11, 10, i)
				want += math.Sin(p.Wavenumber*d) / math.Max(1, d*p.Attenuation)
			}
			got := m.Amplitude(11, 10, 0)
			Expect(got).NotTo(BeZero())
			Expect(got).To(BeNumerically("~", want, 1e-9))
		})

		It("superposes linearly: coincident sources triple one contribution", func() {
			// a 2-cell transverse extent collapses the slit separation,
			// stacking all three sources on one cell
			tiny := New(grid.FromCells(40, 2), DefaultParams())
			Expect(tiny.Sources[0]).To(Equal(tiny.Sources[1]))
			Expect(tiny.Sources[1]).To(Equal(tiny.Sources[2]))

			p := tiny.Params()
			d := tiny.Distance(9, 1, 0)
			single := math.Sin(p.Wavenumber*d) / math.Max(1, d*p.Attenuation)
			Expect(tiny.Amplitude(9, 1, 0)).To(BeNumerically("~", 3*single, 1e-12))
		})

		It("is deterministic for fixed geometry and clock", func() {
			for row := 0; row < 20; row++ {
				for col := 0; col < 80; col++ {
					Expect(m.Sample(col, row, 1.23)).To(Equal(m.Sample(col, row, 1.23)))
				}
			}
		})
	})

	Describe("intensity and glyphs", func() {
		It("keeps clamped intensity in [0, 1] for any amplitude", func() {
			for _, a := range []float64{-100, -1, -0.01, 0, 0.01, 1, 100} {
				i := m.Intensity(a)
				Expect(i).To(BeNumerically(">=", 0))
				Expect(i).To(BeNumerically("<=", 1))
			}
		})

		It("maps intensity onto the ramp monotonically and in range", func() {
			prev := -1
			for c := 0.0; c <= 1.0; c += 0.001 {
				idx := GlyphIndex(c)
				Expect(idx).To(BeNumerically(">=", 0))
				Expect(idx).To(BeNumerically("<", len(GlyphRamp)))
				Expect(idx).To(BeNumerically(">=", prev))
				prev = idx
			}
			Expect(GlyphIndex(0)).To(Equal(0))
			Expect(GlyphIndex(1)).To(Equal(len(GlyphRamp) - 1))
			Expect(GlyphIndex(-5)).To(Equal(0))
			Expect(GlyphIndex(5)).To(Equal(len(GlyphRamp) - 1))
		})
	})

	Describe("color", func() {
		It("flips hue on the amplitude sign", func() {
			Expect(m.Color(0.5, 0.4)).NotTo(Equal(m.Color(-0.5, 0.4)))
		})

		It("brightens monotonically with intensity", func() {
			dimmed, _ := colorful.Hex(m.Color(0.5, 0.2))
			bright, _ := colorful.Hex(m.Color(0.5, 0.8))
			_, _, l1 := dimmed.Hsl()
			_, _, l2 := bright.Hsl()
			Expect(l2).To(BeNumerically(">", l1))
		})
	})

	Describe("degenerate geometry", func() {
		It("samples nothing from an empty grid", func() {
			empty := New(grid.FromCells(0, 5), DefaultParams())
			Expect(empty.Geo.Empty()).To(BeTrue())
			Expect(empty.Sample(0, 0, 0).Glyph).To(Equal(' '))
			Expect(empty.Kind(0, 0)).To(Equal(CellEmpty))
		})
	})
})
