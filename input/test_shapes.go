// Copyright (c) 2025 Visvasity LLC

package input

import "github.com/visvasity/slotgen/slotutil"

// Types in this file are rejected by the shape checker.

type TestTwoFields struct{ A, B float64 }

type TestComplexField struct {
	A, B float64
	C    complex128
}

type TestStringFields struct {
	A, B string
	C    float64
}

type TestPartialTags struct {
	A    float64 `slot:"first"`
	B, C float64
}

type TestDuplicateTags struct {
	A float64 `slot:"first"`
	B float64 `slot:"second"`
	C float64 `slot:"first"`
}

type TestUnknownTag struct {
	A float64 `slot:"first"`
	B float64 `slot:"second"`
	C float64 `slot:"fourth"`
}

type TestEmbedded struct {
	Celsius
	B, C float64
}

type TestArrayOfFour [4]int64

type TestGenericArray[T slotutil.Number] [3]T

type TestString string

type TestArrayAlias = [3]float64

type TestFieldMethodCollision struct {
	Sum, Min, Max float64
}

type TestDeclaredMethod [3]float64

func (v *TestDeclaredMethod) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// TestCaseVec and TESTCASEVEC are valid shapes whose generated file names
// collide.
type TestCaseVec [3]float64

type TESTCASEVEC [3]float64
