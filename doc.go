// Package wordcloud renders a weighted list of words as a packed, rotated,
// colored word cloud with [Ebitengine], animating between successive layouts
// and reporting clicks.
//
// # Quick start
//
// The simplest way to show a cloud is [Run], which opens a window:
//
//	words := []wordcloud.Word{{Text: "go", Value: 10}, {Text: "cloud", Value: 4}}
//	c := wordcloud.New(words, wordcloud.Config{
//		OnWordClick: func(w wordcloud.LayoutWord) { fmt.Println(w.Text) },
//	})
//	wordcloud.Run(c, wordcloud.RunConfig{Title: "Words", Width: 640, Height: 480})
//
// A [Cloud] is an [ebiten.Game], so it can also be driven by your own loop.
//
// # Pipeline
//
// Every time the size, the words or the options change, the cloud runs a
// pass:
//
//   - [WeightedFontSizes] maps word values onto Options.FontSizeRange.
//   - Words are ordered ascending by size.
//   - [RotationAngles] quantizes Options.RotationAngleRange; the engine draws
//     one of those angles per word.
//   - The [LayoutEngine] places what fits. The default is a [SpiralEngine].
//   - The [FrozenLayout] pins the first layout when randomization is off.
//   - [ColorAssigner] bands words by rank onto Options.Colors.
//   - The [Reconciler] creates or updates the elements and animates them.
//
// Passes run on their own goroutine and are applied from Update. A newer pass
// cancels the older one, and a completion from a stale pass is ignored.
//
// Words that cannot be placed, a zero weight range, an empty palette or a
// tiny window never produce errors: the cloud renders what it can.
//
// # Headless use
//
// [Compute] runs one pass synchronously. The export package draws its result
// to SVG, PNG or PDF.
//
// [Ebitengine]: https://ebitengine.org
package wordcloud
