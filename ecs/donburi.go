package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for tactile interaction events.
var InteractionEventType = events.NewEventType[tactile.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType; consume them with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tactile.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tactile.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
