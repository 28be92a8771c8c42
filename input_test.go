package wordcloud

import (
	"testing"
)

type recordingSink struct {
	events []ClickEvent
}

func (s *recordingSink) EmitEvent(e ClickEvent) {
	s.events = append(s.events, e)
}

// center returns the surface coordinates of e's center.
func center(s *Surface, e *Element) (float64, float64) {
	return e.X + float64(s.Size.Width)/2, e.Y + float64(s.Size.Height)/2
}

func TestInjectClickFiresWordHandler(t *testing.T) {
	var clicked []LayoutWord
	sink := &recordingSink{}
	c := newTestCloud(testWords("apple", "banana", "cherry"), func(cfg *Config) {
		cfg.OnWordClick = func(w LayoutWord) { clicked = append(clicked, w) }
		cfg.Events = sink
	})
	c.Resize(500, 400)
	settle(t, c)

	s := c.Surface()
	target := s.Elements()[1]
	x, y := center(s, target)
	c.InjectClick(x, y)
	c.step(0)
	if len(clicked) != 0 {
		t.Fatal("click should fire on release, not press")
	}
	c.step(0)

	if len(clicked) != 1 {
		t.Fatalf("handler called %d times, want 1", len(clicked))
	}
	if clicked[0] != target.Word {
		t.Errorf("clicked %q, want %q", clicked[0].Text, target.Word.Text)
	}
	if len(sink.events) != 1 || sink.events[0].CloudID != "test" || sink.events[0].Word.Text != target.Word.Text {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestClickRequiresSameElement(t *testing.T) {
	calls := 0
	c := newTestCloud(testWords("apple", "banana"), func(cfg *Config) {
		cfg.OnWordClick = func(LayoutWord) { calls++ }
	})
	c.Resize(500, 400)
	settle(t, c)

	s := c.Surface()
	x0, y0 := center(s, s.Elements()[0])
	x1, y1 := center(s, s.Elements()[1])
	c.InjectPress(x0, y0)
	c.InjectRelease(x1, y1)
	c.step(0)
	c.step(0)

	if calls != 0 {
		t.Errorf("handler called %d times, want 0", calls)
	}
}

func TestClickWithoutHandlerIsIgnored(t *testing.T) {
	c := newTestCloud(testWords("apple"), nil)
	c.Resize(400, 400)
	settle(t, c)

	s := c.Surface()
	e := s.Elements()[0]
	if e.Interactable {
		t.Fatal("words should not be interactive without a handler")
	}
	x, y := center(s, e)
	if s.HitTest(x, y) != nil {
		t.Error("HitTest should skip non-interactive elements")
	}
}

func TestHitTestRotatedElement(t *testing.T) {
	reg := NewSurfaceRegistry()
	s, _ := reg.FindOrCreate("hit", Dimensions{Width: 300, Height: 300})
	e := s.addElement()
	e.bind(LayoutWord{Word: Word{Text: "vertical"}, Size: 20}, 0, EstimateMeasurer{})
	e.FontSize = 20
	e.Rotation = 90
	e.Interactable = true

	// 96x20 box stood on end around the center.
	if s.HitTest(150, 150+40) != e {
		t.Error("point along the rotated word should hit")
	}
	if s.HitTest(150+40, 150) != nil {
		t.Error("point along the unrotated axis should miss")
	}
}

func TestInjectQueueConsumesOneEventPerStep(t *testing.T) {
	c := newTestCloud(nil, nil)
	c.InjectClick(1, 1)
	c.InjectClick(2, 2)
	for i := 4; i > 0; i-- {
		if len(c.injectQueue) != i {
			t.Fatalf("queue length = %d, want %d", len(c.injectQueue), i)
		}
		c.step(0)
	}
	if len(c.injectQueue) != 0 {
		t.Error("queue should be drained")
	}
}
