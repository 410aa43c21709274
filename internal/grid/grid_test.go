package grid

import "testing"

func TestSizeFloors(t *testing.T) {
	tests := []struct {
		pxW, pxH   float64
		cols, rows int
	}{
		{640, 320, 80, 20},
		{647, 335, 80, 20}, // partial cells are dropped
		{7, 15, 0, 0},
		{0, 320, 0, 20},
		{640, 0, 80, 0},
		{-10, -10, 0, 0},
	}
	for _, tt := range tests {
		g := Size(tt.pxW, tt.pxH)
		if g.Columns != tt.cols || g.Rows != tt.rows {
			t.Errorf("Size(%v, %v) = %dx%d, want %dx%d",
				tt.pxW, tt.pxH, g.Columns, g.Rows, tt.cols, tt.rows)
		}
	}
}

func TestEmpty(t *testing.T) {
	if !Size(0, 320).Empty() {
		t.Error("zero-width grid should be empty")
	}
	if !Size(640, 0).Empty() {
		t.Error("zero-height grid should be empty")
	}
	if Size(640, 320).Empty() {
		t.Error("80x20 grid should not be empty")
	}
	if got := Size(0, 0).Cells(); got != 0 {
		t.Errorf("empty grid has %d cells, want 0", got)
	}
}

func TestFromCells(t *testing.T) {
	g := FromCells(80, 20)
	if g.Columns != 80 || g.Rows != 20 {
		t.Fatalf("FromCells(80, 20) = %dx%d", g.Columns, g.Rows)
	}
	// round-trips through the pitch constants
	back := Size(g.PixelWidth, g.PixelHeight)
	if back.Columns != 80 || back.Rows != 20 {
		t.Errorf("pixel round-trip = %dx%d, want 80x20", back.Columns, back.Rows)
	}
	if got := FromCells(-3, 5); got.Columns != 0 {
		t.Errorf("negative columns should clamp to 0, got %d", got.Columns)
	}
}

func TestOrient(t *testing.T) {
	if got := Size(640, 320).Orient(); got != Horizontal {
		t.Errorf("wide surface oriented %v, want horizontal", got)
	}
	if got := Size(320, 640).Orient(); got != Vertical {
		t.Errorf("tall surface oriented %v, want vertical", got)
	}
	// square surfaces flow horizontally
	if got := Size(320, 320).Orient(); got != Horizontal {
		t.Errorf("square surface oriented %v, want horizontal", got)
	}
}
