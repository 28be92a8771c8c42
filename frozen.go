package wordcloud

// FrozenLayout remembers the first placed layout since it was last empty, so
// a cloud with randomization disabled keeps showing that layout even as later
// passes compute new positions. A FrozenLayout belongs to one Cloud; it is
// never shared.
type FrozenLayout struct {
	words []LayoutWord
}

// Capture stores words if nothing is frozen yet. Later captures are ignored
// until Reset.
func (f *FrozenLayout) Capture(words []LayoutWord) {
	if len(f.words) != 0 || len(words) == 0 {
		return
	}
	f.words = append([]LayoutWord(nil), words...)
}

// Resolve picks the word set to render. With randomization on, or while
// nothing is frozen, it returns fresh.
func (f *FrozenLayout) Resolve(enableRandomization bool, fresh []LayoutWord) []LayoutWord {
	if enableRandomization || len(f.words) == 0 {
		return fresh
	}
	return append([]LayoutWord(nil), f.words...)
}

// Reset empties the cache; the next completed pass is captured again.
func (f *FrozenLayout) Reset() {
	f.words = nil
}

// Words returns the frozen layout, or nil when empty. The returned slice MUST
// NOT be mutated.
func (f *FrozenLayout) Words() []LayoutWord {
	return f.words
}
