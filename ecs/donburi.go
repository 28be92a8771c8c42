package ecs

import (
	"github.com/phanxgames/wordcloud"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ClickEventType is the Donburi event type for clicked words.
var ClickEventType = events.NewEventType[wordcloud.ClickEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes clicks to
// ClickEventType in world.
func NewDonburiSink(world donburi.World) wordcloud.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event wordcloud.ClickEvent) {
	ClickEventType.Publish(s.world, event)
}
