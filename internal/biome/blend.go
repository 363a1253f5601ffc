package biome

import "math"

// Blender aggregates per-biome match scores into a normalized weight vector
// for one grid cell.
type Blender struct {
	Matcher Matcher
	// GlobalBlendFactor is shared secondary sharpening applied when
	// UseGlobalFactor is set; otherwise each biome's own BlendStrength is
	// the effective factor.
	GlobalBlendFactor float64
	UseGlobalFactor   bool
}

// NewBlender returns a blender with default matcher settings and per-biome
// blend factors.
func NewBlender() Blender {
	return Blender{Matcher: NewMatcher(), GlobalBlendFactor: 1}
}

// Weights returns the normalized biome mixture for a climate sample. Biomes
// scoring below Epsilon are excluded; surviving scores are reshaped by
// score^(1/effectiveBlend) and normalized to sum to 1. When nothing
// matches, the height-banded fallback supplies a single full-weight biome so
// downstream texturing never sees an all-zero vector.
func (bl Blender) Weights(height, temperature, humidity float64, set *Set) map[string]float64 {
	weights := make(map[string]float64)
	if set == nil || set.Len() == 0 {
		return weights
	}

	total := 0.0
	for _, b := range set.Biomes() {
		score := bl.Matcher.Score(height, temperature, humidity, b)
		if score < Epsilon {
			continue
		}
		eff := bl.effectiveFactor(b)
		w := math.Pow(score, 1/eff)
		if w < Epsilon {
			continue
		}
		weights[b.Name] = w
		total += w
	}

	if total <= Epsilon {
		return bl.fallback(height, set)
	}
	for name := range weights {
		weights[name] /= total
	}
	return weights
}

func (bl Blender) effectiveFactor(b Biome) float64 {
	if bl.UseGlobalFactor && bl.GlobalBlendFactor > 0 {
		return bl.GlobalBlendFactor
	}
	if b.BlendStrength > 0 {
		return b.BlendStrength
	}
	return 1
}

// fallback implements the documented no-match policy: the biome whose height
// band lies nearest the sample height receives full weight.
func (bl Blender) fallback(height float64, set *Set) map[string]float64 {
	best := ""
	bestDist := math.Inf(1)
	for _, b := range set.Biomes() {
		d := b.Height.Distance(height)
		if d < bestDist {
			bestDist = d
			best = b.Name
		}
	}
	if best == "" {
		return map[string]float64{}
	}
	return map[string]float64{best: 1}
}

// Dominant returns the single heaviest biome of a weight vector, breaking
// ties by name for determinism.
func Dominant(weights map[string]float64) string {
	best := ""
	bestW := -1.0
	for name, w := range weights {
		if w > bestW || (w == bestW && name < best) {
			best = name
			bestW = w
		}
	}
	return best
}
