// Copyright (c) 2025 Visvasity LLC

package slots

type Getter interface {
	Get(Slot) float64
}

type Setter interface {
	Set(Slot, float64)
}

// ThreeValues is implemented by containers with three independently
// addressable numeric slots. Values are exchanged as float64; containers
// with narrower storage convert on Set and callers must not expect such
// slots to round-trip.
type ThreeValues interface {
	Getter
	Setter

	// Reset puts every slot back to the container's default value.
	Reset()

	Sum() float64
	IsDefault() bool
}

// Shape is satisfied by pointers to ThreeValues containers. It lets the
// generic helpers allocate a fresh default instance of the container type.
type Shape[T any] interface {
	*T
	ThreeValues
}
