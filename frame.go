package fireworks

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Frame)(nil)

// Frame is a row-major RGBA pixel buffer of Width*Height*4 bytes, the shape
// ebiten's WritePixels expects.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a cleared, opaque black frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
	f.Clear(Black)
	return f
}

// Clear fills every pixel with c and resets alpha to opaque. The renderers
// never write alpha, so this is the only place it is set.
func (f *Frame) Clear(c Color) {
	rgb := c.RGB()
	px := [4]byte{rgb[0], rgb[1], rgb[2], 0xff}
	for i := 0; i+4 <= len(f.Pix); i += 4 {
		copy(f.Pix[i:i+4], px[:])
	}
}

// PrintPoint draws a filled square of the given radius centered on (cx, cy).
func (f *Frame) PrintPoint(cx, cy, radius int, rgba [4]uint8) {
	PrintPoint(cx, cy, radius, f.Pix, f.Width, f.Height, rgba)
}

// PrintPoint writes a (2*radius+1)-wide square centered on (cx, cy) into buf,
// a width*height RGBA buffer. Only the RGB bytes of each pixel are written.
//
// The bounds test is inclusive of width and height, so x == width lands on
// the first pixel of the next row. Pixel index 0 is never written. Anything
// else that falls outside buf is dropped.
func PrintPoint(cx, cy, radius int, buf []byte, width, height int, rgba [4]uint8) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			printPixel(cx+dx, cy+dy, buf, width, height, rgba)
		}
	}
}

func printPixel(x, y int, buf []byte, width, height int, rgba [4]uint8) {
	if x < 0 || x > width || y < 0 || y > height {
		return
	}
	i := (y*width + x) * 4
	if i <= 0 || i+2 >= len(buf) {
		return
	}
	buf[i] = rgba[0]
	buf[i+1] = rgba[1]
	buf[i+2] = rgba[2]
}

// Size implements drivers.Displayer.
func (f *Frame) Size() (x, y int16) {
	return int16(f.Width), int16(f.Height)
}

// SetPixel implements drivers.Displayer so tinyfont can draw into the frame.
// Pixels with zero alpha are skipped; the frame's own alpha is left alone.
func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0 {
		return
	}
	px, py := int(x), int(y)
	if px < 0 || px >= f.Width || py < 0 || py >= f.Height {
		return
	}
	i := (py*f.Width + px) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// Display implements drivers.Displayer. The frame has no device behind it, so
// there is nothing to flush.
func (f *Frame) Display() error {
	return nil
}
