// Package ecs bridges tactile interaction events into an ECS world.
//
// [NewDonburiStore] publishes every event a gesture manager dispatches to
// [InteractionEventType] in a [Donburi] world. Systems subscribe to it and
// drain the queue with ProcessEvents once per tick.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	manager.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
