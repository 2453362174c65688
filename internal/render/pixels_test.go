package render

import (
	"image/color"
	"testing"
)

func TestFillLightRGBAEndpoints(t *testing.T) {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	light := []float32{0, 1}
	buf := make([]byte, 4*len(light))
	fillLightRGBA(buf, light, on, off)

	if got := [4]byte(buf[0:4]); got != [4]byte{0, 0, 0, 255} {
		t.Fatalf("intensity 0 = %v, want off color", got)
	}
	if got := [4]byte(buf[4:8]); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("intensity 1 = %v, want on color", got)
	}
}

func TestFillLightRGBAClamps(t *testing.T) {
	on := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	off := color.RGBA{R: 10, G: 10, B: 10, A: 255}

	light := []float32{-3.5, 7.25}
	buf := make([]byte, 4*len(light))
	fillLightRGBA(buf, light, on, off)

	if buf[0] != 10 {
		t.Fatalf("negative intensity = %d, want clamped to off (10)", buf[0])
	}
	if buf[4] != 200 {
		t.Fatalf("intensity above 1 = %d, want clamped to on (200)", buf[4])
	}
}

func TestFillLightRGBAMidpoint(t *testing.T) {
	on := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	light := []float32{0.5}
	buf := make([]byte, 4)
	fillLightRGBA(buf, light, on, off)

	if buf[0] != 100 || buf[1] != 50 || buf[2] != 25 {
		t.Fatalf("midpoint blend = (%d, %d, %d), want (100, 50, 25)", buf[0], buf[1], buf[2])
	}
	if buf[3] != 255 {
		t.Fatalf("alpha = %d, want 255", buf[3])
	}
}
