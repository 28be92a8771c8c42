package wordcloud

import (
	"testing"
	"time"
)

func TestClampDimensions(t *testing.T) {
	tests := []struct {
		w, h int
		want Dimensions
	}{
		{100, 100, Dimensions{300, 300}},
		{0, 0, Dimensions{300, 300}},
		{800, 200, Dimensions{800, 300}},
		{640, 480, Dimensions{640, 480}},
	}
	for _, tt := range tests {
		if got := ClampDimensions(tt.w, tt.h); got != tt.want {
			t.Errorf("ClampDimensions(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestObserverPublishesFirstSizeImmediately(t *testing.T) {
	o := NewDimensionObserver(time.Second)
	now := time.Unix(0, 0)
	if !o.Observe(100, 100, now) {
		t.Fatal("first observation should report a change")
	}
	d, ok := o.Poll(now)
	if !ok || d != (Dimensions{300, 300}) {
		t.Fatalf("Poll = %v, %v; want 300x300", d, ok)
	}
	if _, ok := o.Poll(now); ok {
		t.Error("second poll should publish nothing")
	}
}

func TestObserverDebouncesChanges(t *testing.T) {
	o := NewDimensionObserver(100 * time.Millisecond)
	t0 := time.Unix(0, 0)
	o.Observe(800, 600, t0)
	o.Poll(t0)

	o.Observe(810, 600, t0.Add(10*time.Millisecond))
	o.Observe(820, 600, t0.Add(20*time.Millisecond))
	o.Observe(900, 600, t0.Add(50*time.Millisecond))

	if _, ok := o.Poll(t0.Add(100 * time.Millisecond)); ok {
		t.Fatal("published before the size settled")
	}
	d, ok := o.Poll(t0.Add(150 * time.Millisecond))
	if !ok || d != (Dimensions{900, 600}) {
		t.Fatalf("Poll = %v, %v; want 900x600", d, ok)
	}
	if cur, _ := o.Current(); cur != d {
		t.Errorf("Current = %v, want %v", cur, d)
	}
}

func TestObserverIgnoresSameClampedSize(t *testing.T) {
	o := NewDimensionObserver(0)
	now := time.Unix(0, 0)
	o.Observe(200, 200, now)
	o.Poll(now)
	if o.Observe(250, 100, now) {
		t.Error("250x100 clamps to the same 300x300 and is not a change")
	}
}

func TestObserverResizeBackIsNoChange(t *testing.T) {
	o := NewDimensionObserver(50 * time.Millisecond)
	t0 := time.Unix(0, 0)
	o.Observe(640, 480, t0)
	o.Poll(t0)
	o.Observe(700, 480, t0.Add(time.Millisecond))
	o.Observe(640, 480, t0.Add(2*time.Millisecond))
	if _, ok := o.Poll(t0.Add(time.Second)); ok {
		t.Error("size returned to the published one; nothing to publish")
	}
}

func TestObserverZeroIntervalPublishesNextPoll(t *testing.T) {
	o := NewDimensionObserver(0)
	now := time.Unix(0, 0)
	o.Observe(640, 480, now)
	o.Poll(now)
	o.Observe(1024, 768, now)
	if d, ok := o.Poll(now); !ok || d != (Dimensions{1024, 768}) {
		t.Errorf("Poll = %v, %v", d, ok)
	}
}
