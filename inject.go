package fireworks

// launchRequest is a queued launch, consumed at the next Step.
type launchRequest struct {
	color Color
}

// InjectLaunch queues a launch of the given color. Queued launches are
// applied on the next Step, after spent fireworks are dropped and before
// automatic launches, and ignore MaxFireworks.
func (s *Show) InjectLaunch(color Color) {
	s.injectQueue = append(s.injectQueue, launchRequest{color: color})
}

// InjectVolley queues n launches cycling through colors.
func (s *Show) InjectVolley(n int, colors ...Color) {
	if len(colors) == 0 {
		colors = s.cfg.Palette
	}
	if len(colors) == 0 {
		return
	}
	for i := range n {
		s.InjectLaunch(colors[i%len(colors)])
	}
}

// processInjected launches every queued request and empties the queue.
func (s *Show) processInjected() {
	for _, req := range s.injectQueue {
		s.Launch(req.color)
	}
	s.injectQueue = s.injectQueue[:0]
}
