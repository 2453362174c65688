package lightmap

import (
	"slices"
	"testing"

	"evo-plants/internal/board"
)

func TestGradientCoversBoard(t *testing.T) {
	size := board.NewSize(32, 24)
	vals := Gradient(size)

	if len(vals) != size.Len() {
		t.Fatalf("Gradient produced %d values, want %d", len(vals), size.Len())
	}
	for i, v := range vals {
		if v < 0 || v > 1 {
			t.Fatalf("value %f at index %d outside [0, 1]", v, i)
		}
	}
	if _, err := board.NewFields(size, vals); err != nil {
		t.Fatalf("gradient map must validate against its size: %v", err)
	}
}

func TestGradientFadesDownward(t *testing.T) {
	size := board.NewSize(4, 16)
	vals := Gradient(size)
	w, h := size.Dimensions()

	if top := vals[0]; top != 1 {
		t.Fatalf("top row light = %f, want 1", top)
	}
	for y := 1; y < h; y++ {
		if vals[y*w] > vals[(y-1)*w] {
			t.Fatalf("light increases from row %d to %d", y-1, y)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	size := board.NewSize(48, 32)

	first := Noise(size, 99)
	if len(first) != size.Len() {
		t.Fatalf("Noise produced %d values, want %d", len(first), size.Len())
	}
	for i, v := range first {
		if v < 0 || v >= 1 {
			t.Fatalf("value %f at index %d outside [0, 1)", v, i)
		}
	}

	if !slices.Equal(first, Noise(size, 99)) {
		t.Fatal("Noise with the same seed must be deterministic")
	}
	if slices.Equal(first, Noise(size, 100)) {
		t.Fatal("different seeds should produce different maps")
	}
}

func TestEmptyBoard(t *testing.T) {
	size := board.NewSize(0, 0)
	if got := Gradient(size); len(got) != 0 {
		t.Fatalf("Gradient on empty board produced %d values", len(got))
	}
	if got := Noise(size, 1); len(got) != 0 {
		t.Fatalf("Noise on empty board produced %d values", len(got))
	}
}
