package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/sakshamxt/fringe/internal/field"
	"github.com/sakshamxt/fringe/internal/grid"
	"github.com/sakshamxt/fringe/internal/rain"
)

// Recorder rasterizes frames into paletted images for GIF export. Each
// grid cell becomes a block at the same font metrics the grid sizer uses,
// filled in proportion to its brightness. Colors are added to the palette
// as they appear; past 256 the nearest existing entry is reused.
type Recorder struct {
	delay   int // per frame, 1/100ths of a second
	frames  []*image.Paletted
	palette color.Palette
	index   map[string]uint8
}

func NewRecorder(fps int) *Recorder {
	delay := 100 / fps
	if delay < 2 {
		delay = 2
	}
	return &Recorder{
		delay:   delay,
		palette: color.Palette{color.Black},
		index:   map[string]uint8{"": 0},
	}
}

func (r *Recorder) colorIndex(hex string) uint8 {
	if idx, ok := r.index[hex]; ok {
		return idx
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	if len(r.palette) < 256 {
		r.palette = append(r.palette, c)
		idx := uint8(len(r.palette) - 1)
		r.index[hex] = idx
		return idx
	}
	idx := uint8(r.palette.Index(c))
	r.index[hex] = idx
	return idx
}

// addFrame rasterizes one grid; at reports a cell's color and fill level,
// with an empty color for blank cells.
func (r *Recorder) addFrame(cols, rows int, at func(col, row int) (string, float64)) {
	cellW, cellH := int(grid.CharWidthPx), int(grid.CharHeightPx)
	img := image.NewPaletted(image.Rect(0, 0, cols*cellW, rows*cellH), nil)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			hex, fill := at(col, row)
			if hex == "" || fill <= 0 {
				continue
			}
			idx := r.colorIndex(hex)
			if fill > 1 {
				fill = 1
			}
			fw, fh := int(float64(cellW)*fill), int(float64(cellH)*fill)
			if fw < 1 {
				fw = 1
			}
			if fh < 1 {
				fh = 1
			}
			x0 := col*cellW + (cellW-fw)/2
			y0 := row*cellH + (cellH-fh)/2
			for y := y0; y < y0+fh; y++ {
				for x := x0; x < x0+fw; x++ {
					img.SetColorIndex(x, y, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// AddWave records the field at clock value t.
func (r *Recorder) AddWave(m *field.Model, t float64) {
	r.addFrame(m.Geo.Columns, m.Geo.Rows, func(col, row int) (string, float64) {
		c := m.Sample(col, row, t)
		switch c.Kind {
		case field.CellBarrier:
			return c.Hex, 1
		case field.CellField:
			if c.Hex == "" {
				return "", 0
			}
			return c.Hex, m.Intensity(m.Amplitude(col, row, t))
		}
		return "", 0
	})
}

// AddRain records the rain grid's current state.
func (r *Recorder) AddRain(g *rain.Grid) {
	r.addFrame(g.Columns, g.Rows, func(col, row int) (string, float64) {
		c := g.At(col, row)
		if !c.Visible() {
			return "", 0
		}
		return g.Color(c.Opacity), c.Opacity
	})
}

// Save writes the recording; on any error the recording is simply dropped,
// matching the rest of the render path.
func (r *Recorder) Save(path string) {
	if len(r.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		frame.Palette = r.palette
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
