package fireworks

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFont  tinyfont.Fonter = &proggy.TinySZ8pt7b
	hudColor                 = color.RGBA{R: 0xe0, G: 0xe8, B: 0xff, A: 0xff}
	hudDim                   = color.RGBA{R: 0x90, G: 0xa0, B: 0xb8, A: 0xff}
)

// hudLineHeight is the baseline step between HUD lines in pixels.
const hudLineHeight = 10

// drawHUD writes population counters into the top-left corner of the frame.
func (s *Show) drawHUD() {
	fw, stars, trails := s.population()
	s.hudText(4, 0, fmt.Sprintf("fireworks %d/%d", fw, s.cfg.MaxFireworks), hudColor)
	s.hudText(4, 1, fmt.Sprintf("stars %d", stars), hudDim)
	if s.cfg.Trails {
		s.hudText(4, 2, fmt.Sprintf("trails %d", trails), hudDim)
	}
}

// hudText writes str on the given HUD line. tinyfont positions text by its
// baseline, so the line index is offset by one line height.
func (s *Show) hudText(x, line int, str string, c color.RGBA) {
	y := int16((line + 1) * hudLineHeight)
	tinyfont.WriteLine(s.frame, hudFont, int16(x), y, str, c)
}

// HUDWidth returns the pixel width str would take in the HUD font.
func HUDWidth(str string) int {
	_, outbox := tinyfont.LineWidth(hudFont, str)
	return int(outbox)
}
