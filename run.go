package fireworks

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the window size; the frame keeps its own resolution.
	// Values <= 0 mean 1.
	Scale float64
	// ShowFPS overlays the actual FPS and TPS.
	ShowFPS bool
	// Resizable lets the user resize the window. The frame is stretched.
	Resizable bool
	// OnUpdate, when set, runs after every Step. A non-nil error stops Run.
	OnUpdate func(s *Show) error
}

// game adapts a Show to ebiten.Game. Each tick steps the show by 1/TPS and
// each draw uploads the frame.
type game struct {
	show *Show
	cfg  RunConfig
	img  *ebiten.Image
	fps  *fpsOverlay
}

// Run opens a window and plays the show until the window closes or Escape is
// pressed. Space launches a firework, S queues a screenshot.
func Run(show *Show, cfg RunConfig) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	if cfg.Title == "" {
		cfg.Title = "Fireworks!"
	}
	f := show.Frame()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(f.Width)*scale), int(float64(f.Height)*scale))
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(&game{show: show, cfg: cfg}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		pal := g.show.cfg.Palette
		if len(pal) > 0 {
			g.show.InjectLaunch(pal[g.show.rng.IntN(len(pal))])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.show.Screenshot("window")
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.show.Step(dt)
	if g.cfg.ShowFPS {
		if g.fps == nil {
			g.fps = newFPSOverlay()
		}
		g.fps.update(dt)
	}

	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.show)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.show.Frame()
	if g.img == nil {
		g.img = ebiten.NewImage(f.Width, f.Height)
	}
	g.img.WritePixels(f.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(sw)/float64(f.Width), float64(sh)/float64(f.Height))
	screen.DrawImage(g.img, &op)

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
