package wordcloud

import "math"

// WeightedFontSizes maps each word's Value linearly onto [minSize, maxSize]
// and floors the result. The i-th size belongs to the i-th word.
//
// When every value is equal (including a single word) the weight range is
// empty and every word gets minSize.
func WeightedFontSizes(words []Word, minSize, maxSize float64) []float64 {
	sizes := make([]float64, len(words))
	if len(words) == 0 {
		return sizes
	}

	minW, maxW := words[0].Value, words[0].Value
	for _, w := range words[1:] {
		minW = math.Min(minW, w.Value)
		maxW = math.Max(maxW, w.Value)
	}
	span := maxW - minW

	for i, w := range words {
		var normalized float64
		if span != 0 {
			normalized = (w.Value - minW) / span
		}
		sizes[i] = math.Floor(minSize + (maxSize-minSize)*normalized)
	}
	return sizes
}
