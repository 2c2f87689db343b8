// Package termview draws a fireworks Frame into a terminal.
//
// Every terminal cell shows two vertically stacked pixels using the upper half
// block: the foreground is the top pixel and the background the bottom one.
// The frame is pooled down to the screen: each half cell covers a block of
// frame pixels and shows the brightest of them, so single-pixel rockets
// survive the downscale.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fireworks"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

// View renders frames onto a tcell screen.
type View struct {
	screen tcell.Screen
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Screen returns the underlying screen.
func (v *View) Screen() tcell.Screen {
	return v.screen
}

// Draw pools f onto the whole screen and shows it.
func (v *View) Draw(f *fireworks.Frame) {
	cols, rows := v.screen.Size()
	for row := range rows {
		for col := range cols {
			top, bottom := Cell(f, col, row, cols, rows)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	v.screen.Show()
}

// Cell returns the top and bottom colors for the cell at (col, row) on a
// cols x rows screen.
func Cell(f *fireworks.Frame, col, row, cols, rows int) (top, bottom tcell.Color) {
	x0, x1 := span(col, cols, f.Width)
	ty0, ty1 := span(2*row, 2*rows, f.Height)
	by0, by1 := span(2*row+1, 2*rows, f.Height)
	return brightest(f, x0, x1, ty0, ty1), brightest(f, x0, x1, by0, by1)
}

// span maps slot i of n onto the pixel range [lo, hi) of size pixels. Every
// slot covers at least one pixel.
func span(i, n, size int) (lo, hi int) {
	if n <= 0 || size <= 0 {
		return 0, 0
	}
	lo = min(i*size/n, size-1)
	hi = max((i+1)*size/n, lo+1)
	return lo, min(hi, size)
}

// brightest returns the color of the pixel with the largest RGB sum in the
// block, black for an empty block.
func brightest(f *fireworks.Frame, x0, x1, y0, y1 int) tcell.Color {
	best, bestSum := -1, -1
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*f.Width + x) * 4
			if i+2 >= len(f.Pix) {
				continue
			}
			sum := int(f.Pix[i]) + int(f.Pix[i+1]) + int(f.Pix[i+2])
			if sum > bestSum {
				best, bestSum = i, sum
			}
		}
	}
	if best < 0 {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(f.Pix[best]), int32(f.Pix[best+1]), int32(f.Pix[best+2]))
}
