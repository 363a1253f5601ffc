package biome

import (
	"math"
	"testing"
)

func mustSet(t *testing.T, biomes ...Biome) *Set {
	t.Helper()
	s, err := NewSet(biomes...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWeightsNormalized(t *testing.T) {
	set := mustSet(t,
		testBiome("grass", Range{0.2, 0.6}, Range{0.3, 0.8}, Range{0.2, 0.7}, 2),
		testBiome("forest", Range{0.2, 0.65}, Range{0.3, 0.75}, Range{0.5, 1}, 2),
		testBiome("desert", Range{0.2, 0.55}, Range{0.6, 1}, Range{0, 0.3}, 3),
	)
	bl := NewBlender()
	w := bl.Weights(0.4, 0.55, 0.55, set)
	if len(w) < 2 {
		t.Fatalf("overlapping biomes should both match, got %v", w)
	}
	sum := 0.0
	for name, v := range w {
		if v <= 0 || v > 1 {
			t.Fatalf("weight %s = %f out of range", name, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights must sum to 1, got %f", sum)
	}
}

func TestWeightsExcludeSharpOutOfRange(t *testing.T) {
	// At height 0.75 the water band ends 0.45 away: the raw axis score
	// exp(-0.45*5) is ~0.105, and blend strength 4 pushes the match score
	// below the epsilon cutoff.
	water := testBiome("water", Range{0, 0.3}, Range{0, 1}, Range{0, 1}, 4)
	land := testBiome("land", Range{0.3, 1}, Range{0, 1}, Range{0, 1}, 1)
	set := mustSet(t, water, land)

	bl := NewBlender()
	w := bl.Weights(0.75, 0.5, 0.5, set)
	if _, ok := w["water"]; ok {
		t.Fatalf("water should be excluded far above its height band, got %v", w)
	}
	if v := w["land"]; math.Abs(v-1) > 1e-12 {
		t.Fatalf("land should take the full weight, got %v", w)
	}
}

func TestWeightsFallbackByHeightBand(t *testing.T) {
	low := testBiome("low", Range{0, 0.1}, Range{0, 0.05}, Range{0, 0.05}, 10)
	high := testBiome("high", Range{0.9, 1}, Range{0, 0.05}, Range{0, 0.05}, 10)
	set := mustSet(t, low, high)

	bl := NewBlender()
	w := bl.Weights(0.3, 0.9, 0.9, set)
	if len(w) != 1 || w["low"] != 1 {
		t.Fatalf("no-match samples must fall back to the nearest height band, got %v", w)
	}
}

func TestWeightsGlobalFactorFlattens(t *testing.T) {
	a := testBiome("a", Range{0, 0.3}, Range{0, 1}, Range{0, 1}, 1)
	b := testBiome("b", Range{0.5, 1}, Range{0, 1}, Range{0, 1}, 1)
	set := mustSet(t, a, b)

	perBiome := NewBlender()
	global := NewBlender()
	global.UseGlobalFactor = true
	global.GlobalBlendFactor = 8

	// Height 0.42 sits between the two bands, closer to b.
	wp := perBiome.Weights(0.42, 0.5, 0.5, set)
	wg := global.Weights(0.42, 0.5, 0.5, set)

	ratioPer := wp["b"] / wp["a"]
	ratioGlobal := wg["b"] / wg["a"]
	if ratioGlobal >= ratioPer {
		t.Fatalf("a large global factor must soften the dominance ratio: %f vs %f", ratioGlobal, ratioPer)
	}
	if wg["b"] <= wg["a"] {
		t.Fatal("the nearer biome must still dominate under the global factor")
	}
}

func TestWeightsEmptySet(t *testing.T) {
	bl := NewBlender()
	if w := bl.Weights(0.5, 0.5, 0.5, nil); len(w) != 0 {
		t.Fatalf("nil set must produce no weights, got %v", w)
	}
}

func TestDominant(t *testing.T) {
	if got := Dominant(map[string]float64{"a": 0.2, "b": 0.7, "c": 0.1}); got != "b" {
		t.Fatalf("Dominant = %q, want b", got)
	}
	// Equal weights break ties toward the lexicographically smallest name.
	if got := Dominant(map[string]float64{"beta": 0.5, "alpha": 0.5}); got != "alpha" {
		t.Fatalf("Dominant tie-break = %q, want alpha", got)
	}
	if got := Dominant(nil); got != "" {
		t.Fatalf("Dominant of empty weights = %q, want empty", got)
	}
}
