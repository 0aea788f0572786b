// Copyright (c) 2025 Visvasity LLC

package slots

import "github.com/visvasity/slotgen/slotutil"

// Tuple is the record container with differently typed slots. First keeps
// only the truncated, non-negative integer part of the value and Second keeps
// float32 precision; only Third round-trips any float64.
type Tuple struct {
	First  uint32
	Second float32
	Third  float64
}

var _ ThreeValues = (*Tuple)(nil)

func (v *Tuple) Get(s Slot) float64 {
	switch s.Ordinal() {
	case 0:
		return float64(v.First)
	case 1:
		return float64(v.Second)
	default:
		return v.Third
	}
}

func (v *Tuple) Set(s Slot, x float64) {
	switch s.Ordinal() {
	case 0:
		v.First = slotutil.Narrow[uint32](x)
	case 1:
		v.Second = slotutil.Narrow[float32](x)
	default:
		v.Third = x
	}
}

func (v *Tuple) Reset() {
	*v = Tuple{}
}

func (v *Tuple) Sum() float64 {
	return Sum(v)
}

func (v *Tuple) IsDefault() bool {
	return IsDefault(v)
}
