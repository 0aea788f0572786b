// Copyright (c) 2025 Visvasity LLC

package slots

import (
	"fmt"
	"iter"
	"strings"
)

// Slot selects one of the three values held by a ThreeValues container.
type Slot uint8

const (
	First Slot = iota
	Second
	Third
)

// NumSlots is the number of addressable slots in every container.
const NumSlots = 3

var slotNames = [NumSlots]string{"first", "second", "third"}

// Valid returns true if s is one of First, Second or Third.
func (s Slot) Valid() bool {
	return s <= Third
}

// Ordinal returns 0, 1 and 2 for First, Second and Third respectively. It
// panics if s was produced by converting an out of range integer.
func (s Slot) Ordinal() int {
	if !s.Valid() {
		panic(fmt.Sprintf("slots: invalid slot %d", uint8(s)))
	}
	return int(s)
}

func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// ParseSlot returns the slot with the given name. Names are case-insensitive.
func ParseSlot(name string) (Slot, error) {
	for i, v := range slotNames {
		if strings.EqualFold(name, v) {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("slots: unknown slot name %q", name)
}

// All yields every slot in the fixed order First, Second, Third.
func All() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for s := First; s <= Third; s++ {
			if !yield(s) {
				return
			}
		}
	}
}
