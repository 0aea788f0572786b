// Copyright (c) 2025 Visvasity LLC

package slots

import (
	"iter"
	"reflect"
	"sync"
)

// Default returns a new container of type T with every slot at its default
// value.
func Default[T any, P Shape[T]]() P {
	v := P(new(T))
	v.Reset()
	return v
}

// defaultsMap holds one default instance per container type. The instances
// are never handed out.
var defaultsMap sync.Map // reflect.Type -> P

func defaultFor[T any, P Shape[T]]() P {
	t := reflect.TypeFor[T]()
	if x, ok := defaultsMap.Load(t); ok {
		return x.(P)
	}
	x, _ := defaultsMap.LoadOrStore(t, Default[T, P]())
	return x.(P)
}

// IsDefault returns true if every slot of v equals the same slot of a default
// instance of the same type.
func IsDefault[T any, P Shape[T]](v P) bool {
	d := defaultFor[T, P]()
	for s := First; s <= Third; s++ {
		if v.Get(s) != d.Get(s) {
			return false
		}
	}
	return true
}

// Sum adds the three slots in the fixed order First, Second, Third so that
// the result is reproducible bit for bit.
func Sum(v Getter) float64 {
	return v.Get(First) + v.Get(Second) + v.Get(Third)
}

// Values yields every slot with its current value.
func Values(v Getter) iter.Seq2[Slot, float64] {
	return func(yield func(Slot, float64) bool) {
		for s := range All() {
			if !yield(s, v.Get(s)) {
				return
			}
		}
	}
}

// Copy sets every slot of dst from the same slot of src. Narrowing rules of
// dst apply.
func Copy(dst Setter, src Getter) {
	for s, x := range Values(src) {
		dst.Set(s, x)
	}
}
