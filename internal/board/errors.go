package board

import "fmt"

// FieldSizeError reports a field whose value slice does not cover every cell
// of the board exactly once. It carries the offending field's name, the
// actual slice length, and the Size it was checked against.
type FieldSizeError struct {
	Name string
	Len  int
	Size Size
}

func (e *FieldSizeError) Error() string {
	return fmt.Sprintf("%s field has wrong size (%d) should be (%d) on board with size %s",
		e.Name, e.Len, e.Size.Len(), e.Size)
}

// checkFieldLen validates one named field against the board size. Every field
// a Fields value carries goes through this single check so the error always
// names the field that failed.
func checkFieldLen(name string, n int, size Size) error {
	if n != size.Len() {
		return &FieldSizeError{Name: name, Len: n, Size: size}
	}
	return nil
}
