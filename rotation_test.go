package wordcloud

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestRotationAnglesDegenerateSteps(t *testing.T) {
	for _, steps := range []int{1, 0, -3} {
		got := RotationAngles(-45, 60, steps)
		if !slices.Equal(got, []float64{0}) {
			t.Errorf("RotationAngles(-45, 60, %d) = %v, want [0]", steps, got)
		}
	}
}

func TestRotationAnglesEvenlySpaced(t *testing.T) {
	tests := []struct {
		min, max float64
		steps    int
		want     []float64
	}{
		{-90, 90, 3, []float64{-90, 0, 90}},
		{0, 90, 2, []float64{0, 90}},
		{-60, 60, 5, []float64{-60, -30, 0, 30, 60}},
	}
	for _, tt := range tests {
		got := RotationAngles(tt.min, tt.max, tt.steps)
		if !slices.Equal(got, tt.want) {
			t.Errorf("RotationAngles(%v, %v, %d) = %v, want %v", tt.min, tt.max, tt.steps, got, tt.want)
		}
	}
}

func TestRotationAnglesExactEndpoints(t *testing.T) {
	for steps := 2; steps <= 13; steps++ {
		got := RotationAngles(-17.3, 71.9, steps)
		if len(got) != steps {
			t.Fatalf("steps=%d: len = %d", steps, len(got))
		}
		if got[0] != -17.3 || got[steps-1] != 71.9 {
			t.Errorf("steps=%d: endpoints = %v, %v", steps, got[0], got[steps-1])
		}
	}
}

func TestRotationPickerDrawsFromSet(t *testing.T) {
	angles := []float64{-90, 0, 90}
	pick := RotationPicker(angles, rand.New(rand.NewPCG(7, 7)))
	seen := map[float64]int{}
	for i := 0; i < 300; i++ {
		a := pick()
		if !slices.Contains(angles, a) {
			t.Fatalf("picked %v, not in %v", a, angles)
		}
		seen[a]++
	}
	if len(seen) != len(angles) {
		t.Errorf("picked %d distinct angles in 300 draws, want %d", len(seen), len(angles))
	}
}

func TestRotationPickerEmptySet(t *testing.T) {
	if got := RotationPicker(nil, nil)(); got != 0 {
		t.Errorf("pick = %v, want 0", got)
	}
}
