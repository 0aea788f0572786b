// Copyright (c) 2025 Visvasity LLC

package input

import "time"

//go:generate go run github.com/visvasity/slotgen Vec3 RGB Sample Timing

// Vec3 is a point in space with float32 precision.
type Vec3 [3]float32

// RGB is a color with eight bits per channel.
type RGB struct {
	R, G, B uint8
}

// Sample holds the same storage as slots.Tuple with fields declared out of
// slot order.
type Sample struct {
	Total float64 `slot:"third"`
	Count uint32  `slot:"first"`
	Ratio float32 `slot:"second"`
}

type Celsius float64

type Timing struct {
	Elapsed time.Duration
	Temp    Celsius
	Retries int8
}
