// Package fireworks simulates a fireworks show and rasterizes it into a raw
// RGBA pixel buffer for [Ebitengine].
//
// Rockets launch from a square pad, climb under randomized thrust and burst
// into stars when their fuse runs out or they reach the ceiling. Stars fall
// under damped gravity and quadratic drag until they burn out. Every world
// position is projected through a fixed oblique camera that slowly orbits the
// launch pad, and drawn as a filled square whose size shrinks with age.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	show := fireworks.NewShow(fireworks.DefaultConfig(), nil)
//	fireworks.Run(show, fireworks.RunConfig{Title: "Fireworks!"})
//
// For full control, drive the show yourself and upload [Show.Frame] however
// you like:
//
//	show := fireworks.NewShow(cfg, fireworks.NewRand(seed))
//	for {
//		show.Step(1.0 / 60)
//		img.WritePixels(show.Frame().Pix)
//	}
//
// A Show uses only the random source it is given, so the same seed and the
// same sequence of time steps always produce the same frames.
//
// # Configuration
//
// [Config] holds the frame size, population cap, spawn chance and palette.
// [LoadConfig] reads YAML on top of [DefaultConfig]:
//
//	width: 640
//	height: 480
//	palette: [red, orange, "#66ccff"]
//	trails: true
//
// # Events
//
// Attach an [EventSink] with [Show.SetEventSink] to observe launches, bursts
// and spent fireworks. [Audio] is a sink that plays a crackle for every
// burst; the ecs module mirrors the show into a [Donburi] world.
//
// # Automation
//
// [Show.InjectLaunch] queues launches from outside the frame loop,
// [Show.Screenshot] writes the next frame to a PNG and [LoadScript] drives
// both from a JSON script for choreographed or headless runs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package fireworks
