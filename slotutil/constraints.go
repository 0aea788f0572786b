// Copyright (c) 2025 Visvasity LLC

package slotutil

import "golang.org/x/exp/constraints"

// Number is the set of types that can back a slot. Complex numbers are
// excluded because they have no float64 widening.
type Number interface {
	constraints.Integer | constraints.Float
}
