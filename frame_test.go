package fireworks

import (
	"bytes"
	"image/color"
	"testing"
)

var testRGBA = [4]uint8{0x11, 0x22, 0x33, 0x44}

// changedBytes returns the indices where a and b differ.
func changedBytes(a, b []byte) []int {
	var idx []int
	for i := range a {
		if a[i] != b[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestNewFrameIsOpaqueBlack(t *testing.T) {
	f := NewFrame(4, 3)
	if len(f.Pix) != 4*3*4 {
		t.Fatalf("len(Pix) = %d, want 48", len(f.Pix))
	}
	for i := 0; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 0 || f.Pix[i+1] != 0 || f.Pix[i+2] != 0 || f.Pix[i+3] != 0xff {
			t.Fatalf("pixel %d = %v, want opaque black", i/4, f.Pix[i:i+4])
		}
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(2, 2)
	for i := range f.Pix {
		f.Pix[i] = 0x7f
	}
	f.Clear(Orange)
	for i := 0; i < len(f.Pix); i += 4 {
		got := [4]byte(f.Pix[i : i+4])
		if got != [4]byte{0xff, 0xaa, 0x00, 0xff} {
			t.Fatalf("pixel %d = %v after Clear(Orange)", i/4, got)
		}
	}
}

func TestPrintPointRadiusZero(t *testing.T) {
	f := NewFrame(10, 10)
	before := bytes.Clone(f.Pix)
	f.PrintPoint(3, 4, 0, testRGBA)

	changed := changedBytes(before, f.Pix)
	i := (4*10 + 3) * 4
	if len(changed) != 3 || changed[0] != i || changed[1] != i+1 || changed[2] != i+2 {
		t.Fatalf("changed bytes = %v, want [%d %d %d]", changed, i, i+1, i+2)
	}
	if f.Pix[i+3] != 0xff {
		t.Errorf("alpha = %#x, want untouched 0xff", f.Pix[i+3])
	}
	if f.Pix[i] != 0x11 || f.Pix[i+1] != 0x22 || f.Pix[i+2] != 0x33 {
		t.Errorf("rgb = %v", f.Pix[i:i+3])
	}
}

func TestPrintPointRadiusFillsSquare(t *testing.T) {
	f := NewFrame(10, 10)
	before := bytes.Clone(f.Pix)
	f.PrintPoint(5, 5, 1, testRGBA)

	if n := len(changedBytes(before, f.Pix)); n != 9*3 {
		t.Fatalf("changed %d bytes, want 27 (3x3 square, RGB only)", n)
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			i := ((5+dy)*10 + 5 + dx) * 4
			if f.Pix[i] != 0x11 || f.Pix[i+3] != 0xff {
				t.Errorf("pixel (%d,%d) = %v", 5+dx, 5+dy, f.Pix[i:i+4])
			}
		}
	}
}

func TestPrintPointOutsideBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		radius int
	}{
		{"left", -5, 5, 0},
		{"above", 5, -5, 0},
		{"far right", 100, 5, 0},
		{"far below", 5, 100, 0},
		{"below with radius", 5, 14, 3},
		{"negative both", -10, -10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(10, 10)
			before := bytes.Clone(f.Pix)
			f.PrintPoint(tt.x, tt.y, tt.radius, testRGBA)
			if n := len(changedBytes(before, f.Pix)); n != 0 {
				t.Errorf("changed %d bytes, want 0", n)
			}
		})
	}
}

func TestPrintPointClipsPartially(t *testing.T) {
	f := NewFrame(10, 10)
	before := bytes.Clone(f.Pix)
	// Square spans x in [-2, 2]; only x = 0..2 of row 5 are on the frame.
	f.PrintPoint(0, 5, 2, testRGBA)
	if n := len(changedBytes(before, f.Pix)); n != 5*3*3 {
		t.Errorf("changed %d bytes, want 45 (3 columns x 5 rows)", n)
	}
}

func TestPrintPointNeverWritesIndexZero(t *testing.T) {
	f := NewFrame(10, 10)
	before := bytes.Clone(f.Pix)
	f.PrintPoint(0, 0, 0, testRGBA)
	if n := len(changedBytes(before, f.Pix)); n != 0 {
		t.Errorf("changed %d bytes writing pixel (0,0), want 0", n)
	}
}

func TestPrintPointInclusiveRightEdgeWraps(t *testing.T) {
	// x == width passes the inclusive bound and lands on the first pixel of
	// the next row.
	f := NewFrame(10, 10)
	f.PrintPoint(10, 2, 0, testRGBA)
	i := (3 * 10) * 4
	if f.Pix[i] != 0x11 {
		t.Errorf("pixel (0,3) = %v, want written through the x == width wrap", f.Pix[i:i+4])
	}
}

func TestPrintPointBottomEdgeDropped(t *testing.T) {
	// y == height passes the bound check but indexes past the buffer.
	f := NewFrame(10, 10)
	before := bytes.Clone(f.Pix)
	f.PrintPoint(5, 10, 0, testRGBA)
	if n := len(changedBytes(before, f.Pix)); n != 0 {
		t.Errorf("changed %d bytes, want 0", n)
	}
}

func TestPrintPointShortBuffer(t *testing.T) {
	buf := make([]byte, 6)
	PrintPoint(1, 0, 0, buf, 10, 10, testRGBA)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %#x, want untouched", i, b)
		}
	}
}

func TestFrameDisplayer(t *testing.T) {
	f := NewFrame(8, 4)
	w, h := f.Size()
	if w != 8 || h != 4 {
		t.Errorf("Size = (%d, %d), want (8, 4)", w, h)
	}

	f.SetPixel(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	if got := [4]byte(f.Pix[0:4]); got != [4]byte{1, 2, 3, 0xff} {
		t.Errorf("SetPixel(0,0) = %v", got)
	}

	before := bytes.Clone(f.Pix)
	f.SetPixel(8, 0, color.RGBA{R: 9, A: 0xff})
	f.SetPixel(-1, 2, color.RGBA{R: 9, A: 0xff})
	f.SetPixel(2, 2, color.RGBA{R: 9, A: 0})
	if n := len(changedBytes(before, f.Pix)); n != 0 {
		t.Errorf("out-of-range or transparent SetPixel changed %d bytes", n)
	}

	if err := f.Display(); err != nil {
		t.Errorf("Display = %v", err)
	}
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(3, 2)
	f.PrintPoint(1, 1, 0, Green.RGBA())
	img := f.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if c := img.NRGBAAt(1, 1); c != (color.NRGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("pixel (1,1) = %v, want green", c)
	}
	f.Pix[0] = 0x55
	if img.Pix[0] == 0x55 {
		t.Error("Image should copy the frame")
	}
}
