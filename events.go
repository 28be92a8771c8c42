package wordcloud

// EventSink is the interface for optional event forwarding, e.g. into an ECS
// world. It is called from the cloud's update loop.
type EventSink interface {
	EmitEvent(event ClickEvent)
}

// ClickEvent reports a clicked word.
type ClickEvent struct {
	CloudID string
	Word    LayoutWord
}
