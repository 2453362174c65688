package board

// Field names as they appear in diagnostics.
const fieldLight = "Light"

// Fields stores the per-cell scalar layers of a board. Each layer is
// validated against the board size exactly once, at construction; the slices
// are never resized afterwards.
type Fields struct {
	size  Size
	light []float32
}

// NewFields builds a validated field set. The light values are interpreted in
// row-major order and must contain exactly size.Len() entries; otherwise a
// *FieldSizeError naming the field is returned. The input slice is copied, so
// later mutation of the caller's slice does not observe through.
func NewFields(size Size, light []float32) (Fields, error) {
	if err := checkFieldLen(fieldLight, len(light), size); err != nil {
		return Fields{}, err
	}
	return Fields{
		size:  size,
		light: append([]float32(nil), light...),
	}, nil
}

// Size reports the board size the fields were validated against.
func (f Fields) Size() Size { return f.size }

// Light exposes the light intensity layer.
func (f Fields) Light() []float32 { return f.light }

// LightAt returns the light intensity at cell (x, y).
func (f Fields) LightAt(x, y int) float32 {
	return f.light[f.size.index(x, y)]
}
