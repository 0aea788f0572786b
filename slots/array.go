// Copyright (c) 2025 Visvasity LLC

package slots

// Array is the homogeneous container. Every slot round-trips exactly.
type Array [NumSlots]float64

var _ ThreeValues = (*Array)(nil)

func (v *Array) Get(s Slot) float64 {
	return v[s.Ordinal()]
}

func (v *Array) Set(s Slot, x float64) {
	v[s.Ordinal()] = x
}

func (v *Array) Reset() {
	*v = Array{}
}

func (v *Array) Sum() float64 {
	return Sum(v)
}

func (v *Array) IsDefault() bool {
	return IsDefault(v)
}
