// Package board models the state of the map plants evolve on: a sized set of
// per-cell scalar fields plus the multipliers weighing each field's influence
// on growth.
package board

// Multipliers holds the integer weight of each field. The values are stored
// raw; how they feed into growth is up to the evolution engine.
type Multipliers struct {
	// Light is the multiplier for the light field.
	Light uint32
}

// NewMultipliers returns a Multipliers with the given light weight.
func NewMultipliers(light uint32) Multipliers {
	return Multipliers{Light: light}
}

// Board is the composed simulation state: multipliers plus validated field
// data for one board size. It is the snapshot handed to collaborators such as
// a renderer, which read it and never mutate it.
type Board struct {
	Multipliers Multipliers
	Fields      Fields
}

// New composes an already-valid Multipliers and Fields into a Board. No
// further validation happens here; Fields carries its own.
func New(multipliers Multipliers, fields Fields) Board {
	return Board{Multipliers: multipliers, Fields: fields}
}
