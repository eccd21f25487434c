package ecs

import (
	"github.com/phanxgames/signin"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for signin interaction
// events. Subscribe to this in your ECS systems to receive gesture phases and
// clock start/stop notifications.
var InteractionEventType = events.NewEventType[signin.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) signin.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event signin.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
