// Package lightmap builds raw light-intensity value slices sized for a board,
// ready to be validated into a field set.
package lightmap

import (
	"math"
	"math/rand/v2"

	"evo-plants/internal/board"
)

// Gradient returns a vertical light falloff in [0, 1]: full light at the top
// row fading smoothly towards the bottom. Deterministic for a given size.
func Gradient(size board.Size) []float32 {
	w, h := size.Dimensions()
	vals := make([]float32, size.Len())
	if h <= 1 {
		for i := range vals {
			vals[i] = 1
		}
		return vals
	}
	for y := 0; y < h; y++ {
		light := float32(0.5 + 0.5*math.Cos(float64(y)/float64(h-1)*math.Pi))
		row := y * w
		for x := 0; x < w; x++ {
			vals[row+x] = light
		}
	}
	return vals
}

// Noise returns per-cell light values in [0, 1) drawn from a PCG stream
// seeded with the provided seed. The same seed always yields the same map.
func Noise(size board.Size, seed int64) []float32 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	vals := make([]float32, size.Len())
	for i := range vals {
		vals[i] = rng.Float32()
	}
	return vals
}
