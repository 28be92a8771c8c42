package wordcloud

import "testing"

func placedWord(text string, x, y float64) LayoutWord {
	return LayoutWord{Word: Word{Text: text, Value: 1}, Size: 20, X: x, Y: y}
}

func TestFrozenLayoutCapturesOnce(t *testing.T) {
	var f FrozenLayout
	first := []LayoutWord{placedWord("a", 1, 2)}
	second := []LayoutWord{placedWord("b", 3, 4)}

	f.Capture(first)
	f.Capture(second)

	if got := f.Words(); len(got) != 1 || got[0].Text != "a" {
		t.Fatalf("frozen = %v, want first layout", got)
	}
}

func TestFrozenLayoutResolve(t *testing.T) {
	var f FrozenLayout
	fresh := []LayoutWord{placedWord("fresh", 0, 0)}

	if got := f.Resolve(false, fresh); got[0].Text != "fresh" {
		t.Errorf("empty cache should return fresh, got %v", got)
	}

	f.Capture([]LayoutWord{placedWord("frozen", 5, 5)})
	if got := f.Resolve(true, fresh); got[0].Text != "fresh" {
		t.Errorf("randomization on should return fresh, got %v", got)
	}
	if got := f.Resolve(false, fresh); got[0].Text != "frozen" {
		t.Errorf("randomization off should return frozen, got %v", got)
	}
}

func TestFrozenLayoutReset(t *testing.T) {
	var f FrozenLayout
	f.Capture([]LayoutWord{placedWord("a", 0, 0)})
	f.Reset()
	if f.Words() != nil {
		t.Fatal("Reset should empty the cache")
	}
	f.Capture([]LayoutWord{placedWord("b", 0, 0)})
	if got := f.Words(); got[0].Text != "b" {
		t.Errorf("after Reset the next capture wins, got %v", got)
	}
}

func TestFrozenLayoutCopiesInput(t *testing.T) {
	var f FrozenLayout
	words := []LayoutWord{placedWord("a", 1, 1)}
	f.Capture(words)
	words[0].X = 99
	if f.Words()[0].X != 1 {
		t.Error("capture must not alias the caller's slice")
	}
}
