package fireworks

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows the current FPS and TPS in the window corner. It draws
// on top of the scaled frame, so it never touches Frame.Pix or screenshots.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	ready bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

// update redraws the text every fpsRefresh seconds.
func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.ready && o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.ready = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
