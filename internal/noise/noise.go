// Package noise provides the seeded scalar noise primitives that terrain and
// climate synthesis are composed from. Every sample is a pure function of
// (coordinate, seed, parameters): a Field only caches the per-channel
// generators derived from its seed.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"terragen/pkg/core"
)

// Channel offsets keep the noise layers of one world decorrelated. Each
// channel resolves to its own sub-seed via core.SubSeed.
const (
	ChannelContinent int64 = iota
	ChannelMountain
	ChannelMountainWarpX
	ChannelMountainWarpY
	ChannelHills
	ChannelPlains
	ChannelDetail
	ChannelDetailWarpX
	ChannelDetailWarpY
	ChannelCellular
)

// Params configures a fractal noise call. A plain record, never shared or
// mutated across calls.
type Params struct {
	Octaves    int
	Frequency  float64
	Lacunarity float64
	Gain       float64
}

// Field evaluates coherent noise for one world seed.
type Field struct {
	seed int64
	gens map[int64]opensimplex.Noise
}

// New returns a Field rooted at the provided seed.
func New(seed int64) *Field {
	return &Field{seed: seed, gens: make(map[int64]opensimplex.Noise)}
}

// Seed reports the root seed the field was built from.
func (f *Field) Seed() int64 { return f.seed }

func (f *Field) gen(channel int64) opensimplex.Noise {
	g, ok := f.gens[channel]
	if !ok {
		g = opensimplex.NewNormalized(core.SubSeed(f.seed, channel))
		f.gens[channel] = g
	}
	return g
}

// Scalar samples base coherent noise in [0, 1] at the given frequency.
// Non-positive frequencies are degenerate and yield the midpoint constant.
func (f *Field) Scalar(x, y float64, channel int64, frequency float64) float64 {
	if frequency <= 0 {
		return 0.5
	}
	return clamp01(f.gen(channel).Eval2(x*frequency, y*frequency))
}

// Fractal sums octaves of Scalar at increasing frequency and decreasing
// amplitude, normalized by the amplitude total so output stays in [0, 1]
// regardless of octave count.
func (f *Field) Fractal(x, y float64, channel int64, p Params) float64 {
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	if p.Frequency <= 0 {
		return 0.5
	}
	lac := p.Lacunarity
	if lac <= 0 {
		lac = 2
	}
	gain := p.Gain
	if gain <= 0 {
		gain = 0.5
	}

	g := f.gen(channel)
	freq := p.Frequency
	amp := 1.0
	total := 0.0
	weight := 0.0
	for i := 0; i < octaves; i++ {
		total += clamp01(g.Eval2(x*freq, y*freq)) * amp
		weight += amp
		freq *= lac
		amp *= gain
	}
	return total / weight
}

// Ridge transforms fractal noise into sharp linear ridges via 1-|2n-1|.
func (f *Field) Ridge(x, y float64, channel int64, p Params) float64 {
	n := f.Fractal(x, y, channel, p)
	return 1 - math.Abs(2*n-1)
}

// Billow transforms fractal noise into puffy rounded lobes via |2n-1|.
func (f *Field) Billow(x, y float64, channel int64, p Params) float64 {
	n := f.Fractal(x, y, channel, p)
	return math.Abs(2*n - 1)
}

// Warp perturbs sampling coordinates using two independent noise lookups.
// Asymmetric strengths elongate downstream features along one axis instead
// of producing circular blobs.
func (f *Field) Warp(x, y float64, channelX, channelY int64, frequency, strengthX, strengthY float64) (float64, float64) {
	if frequency <= 0 {
		return x, y
	}
	dx := f.Scalar(x, y, channelX, frequency) - 0.5
	dy := f.Scalar(x, y, channelY, frequency) - 0.5
	return x + dx*2*strengthX, y + dy*2*strengthY
}

// Cellular returns Voronoi-like noise: the normalized distance to the
// nearest of one jittered feature point per lattice cell. Output is in
// [0, 1]; ridge lines appear along cell boundaries.
func (f *Field) Cellular(x, y float64, channel int64, frequency float64) float64 {
	if frequency <= 0 {
		return 0.5
	}
	px := x * frequency
	py := y * frequency
	xi := int64(math.Floor(px))
	yi := int64(math.Floor(py))
	seed := core.SubSeed(f.seed, channel)

	best := math.Inf(1)
	for oy := int64(-1); oy <= 1; oy++ {
		for ox := int64(-1); ox <= 1; ox++ {
			cx, cy := xi+ox, yi+oy
			jx := latticeValue(cx, cy, seed)
			jy := latticeValue(cx, cy, seed+1)
			fx := float64(cx) + jx
			fy := float64(cy) + jy
			d := (px-fx)*(px-fx) + (py-fy)*(py-fy)
			if d < best {
				best = d
			}
		}
	}
	// Max useful distance in a jittered lattice is sqrt(2).
	return clamp01(math.Sqrt(best) / math.Sqrt2)
}

// RadialFalloff linearly attenuates value to zero at radius from the centre,
// used to bound features such as islands.
func RadialFalloff(value, x, y, centerX, centerY, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	d := math.Hypot(x-centerX, y-centerY)
	if d >= radius {
		return 0
	}
	return value * (1 - d/radius)
}

// latticeValue hashes integer coordinates and a seed to a value in [0, 1].
func latticeValue(x, y, seed int64) float64 {
	h := uint64(seed)
	h ^= uint64(x) * 0x517cc1b727220a95
	h ^= uint64(y) * 0x6c62272e07bb0142
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
