package appearance

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestResolveTintEmpty(t *testing.T) {
	tint := ResolveTint(nil)
	if !approx(tint.R, 1) || !approx(tint.G, 1) || !approx(tint.B, 1) {
		t.Fatalf("empty accumulator tint = %+v, want white", tint)
	}
}

func TestResolveTintPigmentEndpoints(t *testing.T) {
	// Pigment 0 selects the lightest ramp stop, pigment 1 the darkest.
	light := ResolveTint(map[int]float32{111: 0})
	dark := ResolveTint(map[int]float32{111: 1})
	if !(light.R > dark.R && light.G > dark.G && light.B > dark.B) {
		t.Fatalf("pigment ramp not monotone: light %+v dark %+v", light, dark)
	}
	if !approx(light.R, 252.0/255.0) {
		t.Fatalf("pigment 0 red = %v, want %v", light.R, 252.0/255.0)
	}
}

func TestResolveTintDeterministic(t *testing.T) {
	weights := map[int]float32{108: 0.2, 110: 0.05, 111: 0.5}
	first := ResolveTint(weights)
	for i := 0; i < 16; i++ {
		if got := ResolveTint(weights); got != first {
			t.Fatalf("tint varies across calls: %+v != %+v", got, first)
		}
	}
}

func TestResolveTintIgnoresUnknownParams(t *testing.T) {
	tint := ResolveTint(map[int]float32{999999: 1.0})
	if !approx(tint.R, 1) || !approx(tint.G, 1) || !approx(tint.B, 1) {
		t.Fatalf("unknown param changed tint: %+v", tint)
	}
}
