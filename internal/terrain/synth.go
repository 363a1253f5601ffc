// Package terrain composes the noise, erosion, climate, and biome
// subsystems into the single deterministic world generation pipeline and the
// frozen query surface handed to consumers.
package terrain

import (
	"math"

	"terragen/internal/noise"
)

// Synthesizer produces raw elevations for world coordinates. Output is NOT
// normalized: the pipeline normalizes the finished heightfield exactly once,
// after erosion. A second normalization here would collapse the relief the
// erosion pass depends on.
type Synthesizer struct {
	field *noise.Field
	p     SynthParams
}

// NewSynthesizer builds a synthesizer over a seeded noise field.
func NewSynthesizer(field *noise.Field, p SynthParams) *Synthesizer {
	return &Synthesizer{field: field, p: p}
}

// MaxHeight returns the largest raw elevation the parameter set can produce,
// which the power-curve shaping and the range tests use as reference.
func (s *Synthesizer) MaxHeight() float64 {
	p := s.p
	return p.BaseHeight + p.HillWeight*p.HillHeight + p.MountainHeight + p.DetailWeight
}

// HeightAt returns the raw elevation at a world coordinate.
//
// Layers, summed: low-frequency plains (always present), rolling hills at
// reduced weight, ridge-noise mountains gated by the continental mask, and
// a small warped detail term. The mask gate ramps smoothly from zero at the
// threshold to full strength, sharpened so the plains-to-mountain
// transition is nonlinear.
func (s *Synthesizer) HeightAt(x, y float64) float64 {
	p := s.p

	mask := s.field.Fractal(x, y, noise.ChannelContinent, noise.Params{
		Octaves:   2,
		Frequency: p.ContinentFrequency,
	})
	gate := 0.0
	if mask > p.ContinentThreshold && p.ContinentThreshold < 1 {
		gate = (mask - p.ContinentThreshold) / (1 - p.ContinentThreshold)
		gate = math.Pow(gate, p.ContinentSharpness)
	}

	var mountains float64
	if gate > 0 {
		wx, wy := s.field.Warp(x, y,
			noise.ChannelMountainWarpX, noise.ChannelMountainWarpY,
			p.RangeWarpFrequency, p.RangeWarpStrengthX, p.RangeWarpStrengthY)
		mountains = s.field.Ridge(wx, wy, noise.ChannelMountain, noise.Params{
			Octaves:   p.MountainOctaves,
			Frequency: p.MountainFrequency,
		})
	}

	hills := s.field.Fractal(x, y, noise.ChannelHills, noise.Params{
		Octaves:   p.HillOctaves,
		Frequency: p.HillFrequency,
	})
	plains := s.field.Fractal(x, y, noise.ChannelPlains, noise.Params{
		Octaves:   p.PlainsOctaves,
		Frequency: p.PlainsFrequency,
	})

	dwx, dwy := s.field.Warp(x, y,
		noise.ChannelDetailWarpX, noise.ChannelDetailWarpY,
		p.DetailWarpFrequency, p.DetailWarpStrength, p.DetailWarpStrength)
	detail := s.field.Scalar(dwx, dwy, noise.ChannelDetail, p.DetailFrequency)

	raw := plains*p.BaseHeight +
		hills*p.HillWeight*p.HillHeight +
		gate*mountains*p.MountainHeight +
		detail*p.DetailWeight

	if p.EdgeFalloff {
		raw = noise.RadialFalloff(raw, x, y, p.FalloffCenterX, p.FalloffCenterY, p.FalloffRadius)
	}

	// Power-curve shaping operates on the value normalized by the maximum
	// possible total and is rescaled straight back to raw units.
	max := s.MaxHeight()
	if max > 0 && p.ShapingExponent > 0 {
		raw = math.Pow(raw/max, p.ShapingExponent) * max
	}
	return raw
}
