package biome

import (
	"image/color"
	"math"
	"strings"
	"testing"
)

func testBiome(name string, height, temp, hum Range, strength float64) Biome {
	return Biome{
		Name:          name,
		Height:        height,
		Temperature:   temp,
		Humidity:      hum,
		BlendStrength: strength,
		Color:         color.RGBA{A: 255},
	}
}

func TestScoreInsideAllRanges(t *testing.T) {
	m := NewMatcher()
	b := testBiome("grass", Range{0.2, 0.6}, Range{0.3, 0.8}, Range{0.25, 0.65}, 1)
	if got := m.Score(0.4, 0.5, 0.5, b); got != 1 {
		t.Fatalf("sample inside every range must score 1, got %f", got)
	}
	// Range bounds are inclusive.
	if got := m.Score(0.2, 0.8, 0.25, b); got != 1 {
		t.Fatalf("sample on range bounds must score 1, got %f", got)
	}
}

func TestScoreFalloffMonotonic(t *testing.T) {
	m := NewMatcher()
	b := testBiome("grass", Range{0.2, 0.6}, Range{0, 1}, Range{0, 1}, 1)
	prev := 1.0
	for _, height := range []float64{0.6, 0.65, 0.7, 0.8, 0.95} {
		s := m.Score(height, 0.5, 0.5, b)
		if s > prev {
			t.Fatalf("score must decay with distance, got %f after %f", s, prev)
		}
		prev = s
	}
	// Single-axis falloff follows exp(-distance*rate) exactly.
	want := math.Exp(-0.1 * m.FalloffRate)
	if got := m.Score(0.7, 0.5, 0.5, b); math.Abs(got-want) > 1e-12 {
		t.Fatalf("score at distance 0.1 = %f, want %f", got, want)
	}
}

func TestScoreAxesCombineMultiplicatively(t *testing.T) {
	m := Matcher{FalloffRate: 5}
	b := testBiome("x", Range{0, 0.5}, Range{0, 0.5}, Range{0, 1}, 1)
	one := m.Score(0.6, 0.4, 0.5, b)
	both := m.Score(0.6, 0.6, 0.5, b)
	if math.Abs(both-one*one) > 1e-12 {
		t.Fatalf("two equally distant axes must square the single-axis score: %f vs %f", both, one*one)
	}
}

func TestScoreBlendStrengthSharpens(t *testing.T) {
	m := NewMatcher()
	soft := testBiome("soft", Range{0, 0.3}, Range{0, 1}, Range{0, 1}, 1)
	sharp := testBiome("sharp", Range{0, 0.3}, Range{0, 1}, Range{0, 1}, 4)
	if m.Score(0.5, 0.5, 0.5, sharp) >= m.Score(0.5, 0.5, 0.5, soft) {
		t.Fatal("higher blend strength must shrink out-of-range scores")
	}
	// Inside the ranges strength has no effect.
	if m.Score(0.1, 0.5, 0.5, sharp) != 1 {
		t.Fatal("blend strength must not penalize in-range samples")
	}
}

func TestSetRejectsDuplicatesAndBadRanges(t *testing.T) {
	a := testBiome("dup", Range{0, 1}, Range{0, 1}, Range{0, 1}, 1)
	if _, err := NewSet(a, a); err == nil {
		t.Fatal("duplicate names must be rejected")
	}
	bad := testBiome("bad", Range{0.6, 0.2}, Range{0, 1}, Range{0, 1}, 1)
	if _, err := NewSet(bad); err == nil {
		t.Fatal("inverted ranges must be rejected")
	}
	out := testBiome("out", Range{0, 1.4}, Range{0, 1}, Range{0, 1}, 1)
	if _, err := NewSet(out); err == nil {
		t.Fatal("ranges outside [0,1] must be rejected")
	}
	if _, err := NewSet(); err == nil {
		t.Fatal("empty sets must be rejected")
	}
}

func TestByNameSuggestion(t *testing.T) {
	set := Default()
	if _, err := set.ByName("grassland"); err != nil {
		t.Fatalf("known biome lookup failed: %v", err)
	}
	_, err := set.ByName("grasland")
	if err == nil {
		t.Fatal("unknown biome must error")
	}
	if !strings.Contains(err.Error(), `"grassland"`) {
		t.Fatalf("error should suggest the closest name, got %v", err)
	}
	if _, err := set.ByName("zzzzzzzzzzzzzzzz"); err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("hopeless lookups must not fabricate suggestions, got %v", err)
	}
}

func TestDefaultSetValid(t *testing.T) {
	set := Default()
	if set.Len() == 0 {
		t.Fatal("default set must not be empty")
	}
	if _, ok := set.Index("ocean"); !ok {
		t.Fatal("default set must contain an ocean biome")
	}
}
