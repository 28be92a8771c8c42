package wordcloud

// ClickContext carries click event data.
type ClickContext struct {
	Element *Element
	Word    LayoutWord
	// Surface coordinates (origin top-left) of the release.
	GlobalX float64
	GlobalY float64
	// Coordinates relative to the surface center.
	LocalX float64
	LocalY float64
}

// Element is the visual for one placed word. X, Y (relative to the surface
// center), Rotation (degrees), FontSize and Color are the animated attributes;
// Word is the data currently bound to the element.
type Element struct {
	ID   uint32
	Word LayoutWord
	Rank int

	X, Y     float64
	Rotation float64
	FontSize float64
	Color    Color

	Visible      bool
	Interactable bool

	// OnClick fires when the element is pressed and released. Nil when the
	// cloud has no click handler.
	OnClick func(ClickContext)

	// unrotated text box at Word.Size
	textW, textH float64
	disposed     bool
}

func newElement(id uint32) *Element {
	return &Element{ID: id, Color: ColorWhite, Visible: true}
}

// bind attaches w to the element and records its measured box.
func (e *Element) bind(w LayoutWord, rank int, m Measurer) {
	e.Word = w
	e.Rank = rank
	if m != nil {
		e.textW, e.textH = m.Measure(w)
	}
}

// Box returns the element's current footprint in surface-local coordinates.
// While the font size animates the box scales with it.
func (e *Element) Box() Box {
	scale := 1.0
	if e.Word.Size > 0 {
		scale = e.FontSize / e.Word.Size
	}
	return NewBox(e.X, e.Y, e.textW*scale, e.textH*scale, e.Rotation)
}

// Dispose marks the element as gone. A disposed element is never drawn or
// hit, and tweens targeting it stop.
func (e *Element) Dispose() {
	e.disposed = true
	e.Visible = false
	e.Interactable = false
	e.OnClick = nil
}

// IsDisposed reports whether Dispose has been called.
func (e *Element) IsDisposed() bool {
	return e.disposed
}
