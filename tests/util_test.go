// Copyright (c) 2025 Visvasity LLC

package tests

import (
	"math/rand"
	"reflect"
)

// randomize fills every numeric field or element of the input with a random
// value that fits it's type.
func randomize(input any) {
	v := reflect.ValueOf(input)

	if !v.IsValid() || v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(rand.Int63n(100)) // Random int between 0 and 99

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(rand.Intn(200))) // Random uint between 0 and 199

	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(rand.Intn(1000)) / 8) // Exact in float32 and float64

	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			randomize(v.Index(i).Addr().Interface())
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).CanSet() {
				randomize(v.Field(i).Addr().Interface())
			}
		}
	}
}
