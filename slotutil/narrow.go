// Copyright (c) 2025 Visvasity LLC

package slotutil

import (
	"math"
	"reflect"
)

var sizeOfInt = int(reflect.TypeFor[int]().Size())

// Narrow converts a float64 into T, losing information when T is narrower.
//
// Floating point targets round to the nearest representable value and
// overflow to an infinity. Integer targets discard the fractional part,
// saturate at the bounds of T and map NaN to zero, so the result never
// depends on the platform.
func Narrow[T Number](x float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = x
	case *float32:
		*p = float32(x)
	case *int:
		*p = int(truncSigned(x, sizeOfInt*8))
	case *int8:
		*p = int8(truncSigned(x, 8))
	case *int16:
		*p = int16(truncSigned(x, 16))
	case *int32:
		*p = int32(truncSigned(x, 32))
	case *int64:
		*p = truncSigned(x, 64)
	case *uint:
		*p = uint(truncUnsigned(x, sizeOfInt*8))
	case *uint8:
		*p = uint8(truncUnsigned(x, 8))
	case *uint16:
		*p = uint16(truncUnsigned(x, 16))
	case *uint32:
		*p = uint32(truncUnsigned(x, 32))
	case *uint64:
		*p = truncUnsigned(x, 64)
	default:
		// Named types, eg: time.Duration.
		rv := reflect.ValueOf(&v).Elem()
		switch {
		case rv.CanFloat():
			rv.SetFloat(x)
		case rv.CanInt():
			rv.SetInt(truncSigned(x, rv.Type().Bits()))
		case rv.CanUint():
			rv.SetUint(truncUnsigned(x, rv.Type().Bits()))
		}
	}
	return v
}

// truncSigned truncates x toward zero into the range of a signed integer
// with the given number of bits.
func truncSigned(x float64, bits int) int64 {
	if math.IsNaN(x) {
		return 0
	}
	limit := math.Ldexp(1, bits-1)
	switch {
	case x >= limit:
		return math.MaxInt64 >> (64 - bits)
	case x <= -limit:
		return math.MinInt64 >> (64 - bits)
	}
	return int64(x)
}

// truncUnsigned truncates x toward zero into the range of an unsigned
// integer with the given number of bits. Negative values and NaN become zero.
func truncUnsigned(x float64, bits int) uint64 {
	if !(x >= 1) {
		return 0
	}
	if x >= math.Ldexp(1, bits) {
		return math.MaxUint64 >> (64 - bits)
	}
	return uint64(x)
}
