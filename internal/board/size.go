package board

import "fmt"

// Size describes the dimensions of a board. It is a plain value; copy it
// freely. The zero value is an empty board.
type Size struct {
	w int
	h int
}

// NewSize returns a Size with the given dimensions. Negative inputs are
// clamped to zero; a zero width or height yields an empty board.
func NewSize(w, h int) Size {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Size{w: w, h: h}
}

// Dimensions returns the width and height.
func (s Size) Dimensions() (int, int) { return s.w, s.h }

// Len returns the total number of cells (width * height). On 64-bit platforms
// any board that fits in memory is representable long before this overflows.
func (s Size) Len() int { return s.w * s.h }

// String renders the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.w, s.h) }

// stride is the number of cells per row. Field data is stored row-major:
// vals[y*stride+x]. The layout is an internal addressing choice; callers go
// through accessors instead of computing offsets themselves.
func (s Size) stride() int { return s.w }

// index returns the linear slice index for coordinates (x, y).
func (s Size) index(x, y int) int { return y*s.stride() + x }
