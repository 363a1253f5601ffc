// Package biome maps per-cell (height, temperature, humidity) samples to
// weighted biome mixtures. Matching is range-based with exponential falloff
// outside each range; a blend-strength exponent controls how sharply a
// biome claims territory.
package biome

import (
	"fmt"
	"image/color"
	"math"
)

// DefaultFalloffRate is the exponential falloff rate applied outside a
// range. A tuning default, not a derived constant.
const DefaultFalloffRate = 5.0

// Epsilon is the score threshold below which a biome is considered a
// non-match.
const Epsilon = 0.001

// Range is a closed interval over a normalized axis.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Distance returns the gap between v and the nearest bound, zero inside.
func (r Range) Distance(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min - v
	case v > r.Max:
		return v - r.Max
	default:
		return 0
	}
}

func (r Range) validate(axis string) error {
	if r.Min > r.Max {
		return fmt.Errorf("biome: %s range inverted (%.3f > %.3f)", axis, r.Min, r.Max)
	}
	if r.Min < 0 || r.Max > 1 {
		return fmt.Errorf("biome: %s range outside [0,1] (%.3f..%.3f)", axis, r.Min, r.Max)
	}
	return nil
}

// Biome describes one terrain class. Immutable once loaded into a Set. The
// colour is an opaque rendering payload the classification never inspects.
type Biome struct {
	Name        string
	Height      Range
	Temperature Range
	Humidity    Range
	// BlendStrength sharpens the biome's territorial claim, typically 1-10.
	BlendStrength float64
	Color         color.RGBA
}

func (b Biome) validate() error {
	if b.Name == "" {
		return fmt.Errorf("biome: missing name")
	}
	if err := b.Height.validate("height"); err != nil {
		return err
	}
	if err := b.Temperature.validate("temperature"); err != nil {
		return err
	}
	if err := b.Humidity.validate("humidity"); err != nil {
		return err
	}
	return nil
}

// Matcher scores a single biome against a climate sample.
type Matcher struct {
	// FalloffRate controls how fast sub-scores decay outside a range.
	FalloffRate float64
}

// NewMatcher returns a matcher with the default falloff rate.
func NewMatcher() Matcher {
	return Matcher{FalloffRate: DefaultFalloffRate}
}

// Score returns a match value in [0, 1] for the sample against the biome's
// three ranges. Each axis scores 1 inside its range and exp(-distance*rate)
// outside; the axes combine multiplicatively so all three must be
// reasonably satisfied, and the product is raised to the biome's blend
// strength.
func (m Matcher) Score(height, temperature, humidity float64, b Biome) float64 {
	rate := m.FalloffRate
	if rate <= 0 {
		rate = DefaultFalloffRate
	}
	s := m.axisScore(height, b.Height, rate) *
		m.axisScore(temperature, b.Temperature, rate) *
		m.axisScore(humidity, b.Humidity, rate)

	strength := b.BlendStrength
	if strength <= 0 {
		strength = 1
	}
	return math.Pow(s, strength)
}

func (m Matcher) axisScore(v float64, r Range, rate float64) float64 {
	d := r.Distance(v)
	if d == 0 {
		return 1
	}
	return math.Exp(-d * rate)
}
