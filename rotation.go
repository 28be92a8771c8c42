package wordcloud

import "math/rand/v2"

// RotationAngles divides [min, max] into steps evenly spaced angles, both ends
// included. A step count of one or less disables rotation and yields [0]
// regardless of the range.
func RotationAngles(min, max float64, steps int) []float64 {
	if steps <= 1 {
		return []float64{0}
	}
	angles := make([]float64, steps)
	step := (max - min) / float64(steps-1)
	for i := range angles {
		angles[i] = min + float64(i)*step
	}
	// Pin the last angle so float error never moves the endpoint.
	angles[steps-1] = max
	return angles
}

// RotationPicker returns a function drawing one angle uniformly at random
// (with replacement) from angles on every call. An empty set always yields 0.
func RotationPicker(angles []float64, rng *rand.Rand) func() float64 {
	if len(angles) == 0 {
		return func() float64 { return 0 }
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return func() float64 {
		return angles[rng.IntN(len(angles))]
	}
}
