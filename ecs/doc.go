// Package ecs provides ECS adapters for signin's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges signin gesture and
// clock events into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
