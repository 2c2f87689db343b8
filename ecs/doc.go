// Package ecs bridges a fireworks Show into a [Donburi] world.
//
// [NewDonburiSink] returns an EventSink that publishes every lifecycle event
// as a typed Donburi event and mirrors each live firework as an entity
// carrying a [FireworkData] component. Subscribe to [EventType] in your ECS
// systems to react to launches, bursts and spent fireworks.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	show.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
