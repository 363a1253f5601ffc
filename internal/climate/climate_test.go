package climate

import (
	"math"
	"slices"
	"testing"

	"terragen/internal/core"
)

func flatHeights(w, h int, v float64) *core.Grid {
	g := core.NewGrid(w, h)
	g.Fill(v)
	return g
}

func TestGenerateRanges(t *testing.T) {
	heights := core.NewGrid(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			heights.Set(x, y, float64(x)/31)
		}
	}
	f := Generate(32, 32, 2024, heights, DefaultConfig())
	for i, v := range f.Temperature.Cells() {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("temperature cell %d out of range: %f", i, v)
		}
	}
	for i, v := range f.Humidity.Cells() {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("humidity cell %d out of range: %f", i, v)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	heights := flatHeights(24, 24, 0.5)
	a := Generate(24, 24, 555, heights, DefaultConfig())
	b := Generate(24, 24, 555, heights, DefaultConfig())
	if !slices.Equal(a.Temperature.Cells(), b.Temperature.Cells()) {
		t.Fatal("temperature must be deterministic for a fixed seed")
	}
	if !slices.Equal(a.Humidity.Cells(), b.Humidity.Cells()) {
		t.Fatal("humidity must be deterministic for a fixed seed")
	}

	c := Generate(24, 24, 556, heights, DefaultConfig())
	if slices.Equal(a.Temperature.Cells(), c.Temperature.Cells()) {
		t.Fatal("different seeds should produce different temperature fields")
	}
}

func TestLatitudeGradientPeaksAtCentre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoiseWeight = 0
	cfg.AltitudeCooling = 0

	h := 33
	f := Generate(8, h, 1, flatHeights(8, h, 0), cfg)
	centre := f.Temperature.At(4, h/2)
	top := f.Temperature.At(4, 0)
	bottom := f.Temperature.At(4, h-1)
	if centre != 1 {
		t.Fatalf("pure latitude temperature at centre row = %f, want 1", centre)
	}
	if top != 0 || bottom != 0 {
		t.Fatalf("pure latitude temperature at extremes = %f / %f, want 0", top, bottom)
	}
	// Monotonic from pole to equator.
	prev := -1.0
	for y := 0; y <= h/2; y++ {
		v := f.Temperature.At(4, y)
		if v < prev {
			t.Fatalf("latitude gradient not monotonic at row %d: %f < %f", y, v, prev)
		}
		prev = v
	}
}

func TestAltitudeCoolingBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoiseWeight = 0
	// Request more cooling than permitted; the effect must stay capped.
	cfg.AltitudeCooling = 0.9

	w, h := 8, 17
	low := Generate(w, h, 3, flatHeights(w, h, 0), cfg)
	high := Generate(w, h, 3, flatHeights(w, h, 1), cfg)

	y := h / 2
	tLow := low.Temperature.At(4, y)
	tHigh := high.Temperature.At(4, y)
	if tHigh > tLow {
		t.Fatalf("higher terrain must not be warmer: %f > %f", tHigh, tLow)
	}
	if tHigh < tLow*0.8-1e-12 {
		t.Fatalf("altitude cooling exceeded its 20%% cap: %f vs %f", tHigh, tLow)
	}
}

func TestValleyMoistureBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ValleyMoistureBoost = 0.9

	w, h := 16, 16
	valley := Generate(w, h, 9, flatHeights(w, h, 0), cfg)
	ridge := Generate(w, h, 9, flatHeights(w, h, 1), cfg)

	for i, hv := range valley.Humidity.Cells() {
		rv := ridge.Humidity.Cells()[i]
		if hv < rv-1e-12 {
			t.Fatalf("cell %d: valleys must not be drier than ridges (%f < %f)", i, hv, rv)
		}
		// Clamping to 1 can flatten the comparison, so only check the cap
		// where the boosted value stayed inside range.
		if hv < 1 && hv > rv*1.15+1e-12 {
			t.Fatalf("cell %d: moisture boost exceeded its 15%% cap (%f vs %f)", i, hv, rv)
		}
	}
}

func TestTemperatureIndependentOfHeightShape(t *testing.T) {
	// Temperature must carry structure beyond an inverted heightfield: with
	// default settings, flat terrain still gets a non-constant field.
	f := Generate(32, 32, 77, flatHeights(32, 32, 0.5), DefaultConfig())
	lo, hi := f.Temperature.MinMax()
	if hi-lo < 0.05 {
		t.Fatalf("temperature over flat terrain is nearly constant (%f..%f); it must not be a pure height function", lo, hi)
	}
}

func TestGenerateDegenerateSize(t *testing.T) {
	f := Generate(0, 0, 1, nil, DefaultConfig())
	if f.Temperature == nil || f.Humidity == nil {
		t.Fatal("degenerate sizes must still return allocated fields")
	}
}
