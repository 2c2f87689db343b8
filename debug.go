package fireworks

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame timing and population metrics.
// Only populated when debug mode is on.
type debugStats struct {
	simulateTime time.Duration
	spawnTime    time.Duration
	overlayTime  time.Duration
	fireworks    int
	stars        int
	trails       int
}

// debugOut is where debug lines go. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints timing and population stats.
func (s *Show) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.simulateTime + stats.spawnTime + stats.overlayTime
	_, _ = fmt.Fprintf(debugOut,
		"[fireworks] frame %d | simulate: %v | spawn: %v | overlay: %v | total: %v\n",
		s.frames, stats.simulateTime, stats.spawnTime, stats.overlayTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[fireworks] fireworks: %d | stars: %d | trails: %d\n",
		stats.fireworks, stats.stars, stats.trails)
}

// warnf prints a best-effort failure that does not stop the show.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[fireworks] "+format+"\n", args...)
}
