// Copyright (c) 2025 Visvasity LLC

package tests

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visvasity/slotgen/input"
	"github.com/visvasity/slotgen/slots"
)

// checkContract verifies the behavior every ThreeValues container shares.
func checkContract[T any, P slots.Shape[T]](t *testing.T) {
	d := slots.Default[T, P]()
	require.True(t, d.IsDefault())
	require.Equal(t, 0.0, d.Sum())

	for s := range slots.All() {
		d.Set(s, 1)
	}
	require.Equal(t, 3.0, d.Sum())
	require.False(t, d.IsDefault())

	for range 10 {
		v := P(new(T))
		randomize(v)
		want := v.Get(slots.First) + v.Get(slots.Second) + v.Get(slots.Third)
		assert.Equal(t, want, v.Sum())

		// Values written back from Get must not change the container.
		before := *v
		slots.Copy(v, v)
		assert.Equal(t, before, *v)
	}

	v := P(new(T))
	randomize(v)
	v.Reset()
	assert.True(t, v.IsDefault())
}

func TestContract(t *testing.T) {
	t.Run("Vec3", checkContract[input.Vec3])
	t.Run("RGB", checkContract[input.RGB])
	t.Run("Sample", checkContract[input.Sample])
	t.Run("Timing", checkContract[input.Timing])
	t.Run("Tuple", checkContract[slots.Tuple])
	t.Run("Array", checkContract[slots.Array])
}

func TestSampleMatchesTuple(t *testing.T) {
	xs := []float64{0, 0.1, -2.5, 7.9, 1e10, -1e300, math.Inf(1)}
	for _, x := range xs {
		var sample input.Sample
		var tuple slots.Tuple
		for s := range slots.All() {
			sample.Set(s, x)
			tuple.Set(s, x)
			assert.Equalf(t, tuple.Get(s), sample.Get(s), "slot %v value %v", s, x)
		}
	}

	sample := input.Sample{Count: 1, Ratio: 2, Total: 3}
	assert.Equal(t, 1.0, sample.Get(slots.First))
	assert.Equal(t, 2.0, sample.Get(slots.Second))
	assert.Equal(t, 3.0, sample.Get(slots.Third))
	assert.Equal(t, 6.0, sample.Sum())
}

func TestRGB(t *testing.T) {
	var c input.RGB
	c.Set(slots.First, 300)
	c.Set(slots.Second, 127.9)
	c.Set(slots.Third, -5)
	assert.Equal(t, input.RGB{R: 255, G: 127, B: 0}, c)
	assert.Equal(t, 382.0, c.Sum())
}

func TestVec3(t *testing.T) {
	v := input.Vec3{10, 20, 30}
	assert.Equal(t, 60.0, v.Sum())

	v.Set(slots.Second, 0.1)
	assert.Equal(t, float32(0.1), v[1])
	assert.NotEqual(t, 0.1, v.Get(slots.Second))
}

func TestTiming(t *testing.T) {
	var v input.Timing
	v.Set(slots.First, float64(1500*time.Millisecond)+0.75)
	v.Set(slots.Second, -40.25)
	v.Set(slots.Third, 200)
	assert.Equal(t, input.Timing{Elapsed: 1500 * time.Millisecond, Temp: -40.25, Retries: 127}, v)
	assert.False(t, v.IsDefault())
}

func TestCopyBetweenShapes(t *testing.T) {
	src := &slots.Array{12.75, 300, -1}

	var c input.RGB
	slots.Copy(&c, src)
	assert.Equal(t, input.RGB{R: 12, G: 255, B: 0}, c)

	var v input.Vec3
	slots.Copy(&v, src)
	assert.Equal(t, input.Vec3{12.75, 300, -1}, v)
}
