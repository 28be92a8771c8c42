package wordcloud

import "time"

// DefaultResizeInterval is how long a container size must stay unchanged
// before the change is published.
const DefaultResizeInterval = 150 * time.Millisecond

// DimensionObserver turns raw container sizes into surface Dimensions. Sizes
// are clamped to MinDimension. The first size is published at once; later
// changes are debounced so a continuous resize triggers one recompute after
// the size settles.
type DimensionObserver struct {
	Interval time.Duration

	current    Dimensions
	hasCurrent bool
	ready      bool

	pending    Dimensions
	hasPending bool
	changedAt  time.Time
}

// NewDimensionObserver creates an observer with the given quiet interval.
func NewDimensionObserver(interval time.Duration) *DimensionObserver {
	return &DimensionObserver{Interval: interval}
}

// Observe records the container size at time now. It reports whether the
// clamped size differs from the last one seen.
func (o *DimensionObserver) Observe(w, h int, now time.Time) bool {
	d := ClampDimensions(w, h)
	if !o.hasCurrent {
		o.current = d
		o.hasCurrent = true
		o.ready = true
		return true
	}
	last := o.current
	if o.hasPending {
		last = o.pending
	}
	if d == last {
		return false
	}
	o.pending = d
	o.hasPending = true
	o.changedAt = now
	return true
}

// Poll returns the Dimensions to publish at time now, if any.
func (o *DimensionObserver) Poll(now time.Time) (Dimensions, bool) {
	if o.ready {
		o.ready = false
		return o.current, true
	}
	if !o.hasPending || now.Sub(o.changedAt) < o.Interval {
		return Dimensions{}, false
	}
	o.hasPending = false
	if o.pending == o.current {
		return Dimensions{}, false
	}
	o.current = o.pending
	return o.current, true
}

// Current returns the last published size.
func (o *DimensionObserver) Current() (Dimensions, bool) {
	return o.current, o.hasCurrent
}
