// Package climate produces the temperature and humidity grids that biome
// classification reads alongside height. Both fields are functions of
// latitude, seed, and their own noise channels, never of height alone;
// height enters only as a bounded secondary adjustment.
package climate

import (
	"math"

	"github.com/aquilax/go-perlin"

	"terragen/internal/core"
	pkgcore "terragen/pkg/core"
)

// Seed channels for the climate noise, distinct from every height channel.
const (
	channelTemperature int64 = 100
	channelRainfall    int64 = 101
	channelRainDetail  int64 = 102
)

// Perlin shape parameters shared by all climate channels.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Fields holds the generated climate grids, each cell in [0, 1].
type Fields struct {
	Temperature *core.Grid
	Humidity    *core.Grid
}

// Generate builds temperature and humidity grids for a w x h world. heights
// must be the normalized heightfield of the same dimensions; it only feeds
// the bounded altitude-cooling and valley-moisture adjustments.
func Generate(w, h int, seed int64, heights *core.Grid, cfg Config) Fields {
	f := Fields{
		Temperature: core.NewGrid(w, h),
		Humidity:    core.NewGrid(w, h),
	}
	if w <= 0 || h <= 0 {
		return f
	}

	tempNoise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, pkgcore.SubSeed(seed, channelTemperature))
	rainNoise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, pkgcore.SubSeed(seed, channelRainfall))
	detailNoise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, pkgcore.SubSeed(seed, channelRainDetail))

	cooling := math.Min(cfg.AltitudeCooling, 0.2)
	boost := math.Min(cfg.ValleyMoistureBoost, 0.15)
	noiseW := cfg.NoiseWeight

	for y := 0; y < h; y++ {
		lat := latitudeGradient(y, h, cfg.LatitudeExponent)
		for x := 0; x < w; x++ {
			height := heightAt(heights, x, y)

			tn := unit(tempNoise.Noise2D(float64(x)*cfg.NoiseFrequency, float64(y)*cfg.NoiseFrequency))
			t := lat*(1-noiseW) + tn*noiseW
			t *= 1 - cooling*height
			f.Temperature.Set(x, y, clamp01(t))

			rain := unit(rainNoise.Noise2D(float64(x)*cfg.NoiseFrequency, float64(y)*cfg.NoiseFrequency))
			detail := unit(detailNoise.Noise2D(float64(x)*cfg.DetailFrequency, float64(y)*cfg.DetailFrequency))
			hum := rain*0.75 + detail*0.25
			hum *= 1 + boost*(1-height)
			f.Humidity.Set(x, y, clamp01(hum))
		}
	}
	return f
}

// latitudeGradient peaks at the grid centre row and falls toward both Z
// extremes, shaped by the exponent.
func latitudeGradient(y, h int, exponent float64) float64 {
	if h <= 1 {
		return 1
	}
	if exponent <= 0 {
		exponent = 1
	}
	nz := float64(y) / float64(h-1)
	return 1 - math.Pow(math.Abs(2*nz-1), exponent)
}

func heightAt(heights *core.Grid, x, y int) float64 {
	if heights == nil {
		return 0
	}
	return clamp01(heights.At(x, y))
}

// unit maps roughly [-1, 1] perlin output into [0, 1].
func unit(v float64) float64 {
	return clamp01(0.5 + 0.5*v)
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
