package ecs

import (
	"testing"

	"github.com/phanxgames/wordcloud"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []wordcloud.ClickEvent
	ClickEventType.Subscribe(world, func(w donburi.World, e wordcloud.ClickEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(wordcloud.ClickEvent{
		CloudID: "tags",
		Word: wordcloud.LayoutWord{
			Word: wordcloud.Word{Text: "go", Value: 10},
			Size: 48,
			X:    12,
			Y:    -8,
		},
	})
	sink.EmitEvent(wordcloud.ClickEvent{
		CloudID: "tags",
		Word:    wordcloud.LayoutWord{Word: wordcloud.Word{Text: "ecs", Value: 2}, Rotate: 90},
	})

	if len(received) != 0 {
		t.Fatal("events should be queued until processed")
	}
	ClickEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("received %d events, want 2", len(received))
	}
	if received[0].Word.Text != "go" || received[0].Word.Size != 48 || received[0].CloudID != "tags" {
		t.Errorf("first event = %+v", received[0])
	}
	if received[1].Word.Text != "ecs" || received[1].Word.Rotate != 90 {
		t.Errorf("second event = %+v", received[1])
	}
}
