package wordcloud

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Words  []Word  `json:"words,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"click": true, "resize": true, "words": true,
	"wait": true, "settle": true, "screenshot": true,
}

// Script plays a sequence of clicks, resizes, word changes and screenshots
// against a cloud, one action per frame, for demos and automated visual
// checks. Attach with Cloud.SetScript.
//
// "settle" waits until no pass is in flight and no transition is running.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadScript parses a JSON script of the form {"steps": [...]}.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("wordcloud: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("wordcloud: parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("wordcloud: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script; it advances from Update. Nil detaches.
func (c *Cloud) SetScript(s *Script) {
	c.script = s
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(c *Cloud) {
	if s.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.settling {
		if c.Busy() || c.Animating() {
			return
		}
		s.settling = false
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "click":
		c.InjectClick(st.X, st.Y)
	case "resize":
		c.Resize(st.Width, st.Height)
	case "words":
		c.SetWords(st.Words)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	case "settle":
		s.settling = true
	case "screenshot":
		c.Screenshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && !s.settling && len(c.injectQueue) == 0 {
		s.done = true
	}
}
