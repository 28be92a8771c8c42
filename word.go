package wordcloud

import (
	"cmp"
	"slices"
)

// Word is a caller-supplied entry: the text to show and its weight. The
// pipeline never mutates a Word.
type Word struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// LayoutWord is a Word with the visual fields computed for one pipeline pass.
// X and Y are relative to the surface center and, like Rotate (degrees), are
// only meaningful once the layout engine has placed the word.
type LayoutWord struct {
	Word

	Size    float64    `json:"size"`
	Font    string     `json:"font"`
	Style   FontStyle  `json:"style"`
	Weight  FontWeight `json:"weight"`
	Padding float64    `json:"padding"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate"`
}

// sizedWords builds the layout words for one pass: sizes come from the weight
// normalizer, font attributes from opts, and the result is ordered ascending
// by size. The sort is stable so equal sizes keep input order.
func sizedWords(words []Word, opts Options) []LayoutWord {
	sizes := WeightedFontSizes(words, opts.FontSizeRange.Min, opts.FontSizeRange.Max)
	out := make([]LayoutWord, len(words))
	for i, w := range words {
		out[i] = LayoutWord{
			Word:    w,
			Size:    sizes[i],
			Font:    opts.FontFamily,
			Style:   opts.FontStyle,
			Weight:  opts.FontWeight,
			Padding: opts.Padding,
		}
	}
	slices.SortStableFunc(out, func(a, b LayoutWord) int {
		return cmp.Compare(a.Size, b.Size)
	})
	return out
}
