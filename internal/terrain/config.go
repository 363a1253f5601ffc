package terrain

import (
	"strconv"

	"terragen/internal/biome"
	"terragen/internal/climate"
	"terragen/internal/erosion"
)

// SynthParams holds the tunable layer weights and frequencies for height
// synthesis. Frequencies are in world units; the defaults assume world
// extents of a few thousand units.
type SynthParams struct {
	BaseHeight     float64
	HillHeight     float64
	MountainHeight float64

	ContinentFrequency float64
	ContinentThreshold float64
	// ContinentSharpness (>= 1) bends the plains-to-mountain ramp so the
	// transition is not linear.
	ContinentSharpness float64

	MountainFrequency float64
	MountainOctaves   int
	// Range warp is asymmetric on purpose: the stronger axis stretches
	// ridges into elongated mountain ranges.
	RangeWarpFrequency float64
	RangeWarpStrengthX float64
	RangeWarpStrengthY float64

	HillFrequency float64
	HillOctaves   int
	HillWeight    float64

	PlainsFrequency float64
	PlainsOctaves   int

	DetailFrequency     float64
	DetailWarpFrequency float64
	DetailWarpStrength  float64
	DetailWeight        float64

	// ShapingExponent (slightly > 1) compresses low terrain without
	// flattening the full range.
	ShapingExponent float64

	// EdgeFalloff bounds the landmass inside FalloffRadius of the centre,
	// for island worlds.
	EdgeFalloff    bool
	FalloffCenterX float64
	FalloffCenterY float64
	FalloffRadius  float64
}

// Config describes one full world generation request.
type Config struct {
	// Width and Height are the heightmap grid resolution.
	Width  int
	Height int
	// WorldWidth and WorldLength are the world extents in world units.
	WorldWidth  float64
	WorldLength float64

	Seed int64

	Synth   SynthParams
	Erosion erosion.Config
	Climate climate.Config

	// Biomes is the classification set. Nil or empty is a hard
	// configuration error.
	Biomes *biome.Set
	// BiomeFile, when set, replaces Biomes with definitions loaded from a
	// YAML file at build time.
	BiomeFile string
	// FalloffRate feeds the biome matcher.
	FalloffRate float64
	// GlobalBlendFactor replaces per-biome blend strengths when
	// UseGlobalBlend is set.
	GlobalBlendFactor float64
	UseGlobalBlend    bool
}

// DefaultConfig returns the standard world configuration.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      256,
		WorldWidth:  4096,
		WorldLength: 4096,
		Seed:        1337,
		Synth: SynthParams{
			BaseHeight:         50,
			HillHeight:         30,
			MountainHeight:     100,
			ContinentFrequency: 0.0003,
			ContinentThreshold: 0.5,
			ContinentSharpness: 2,
			MountainFrequency:  0.0008,
			MountainOctaves:    4,
			RangeWarpFrequency: 0.0005,
			RangeWarpStrengthX: 600,
			RangeWarpStrengthY: 150,
			HillFrequency:      0.0025,
			HillOctaves:        4,
			HillWeight:         0.5,
			PlainsFrequency:    0.0004,
			PlainsOctaves:      3,
			DetailFrequency:    0.02,
			DetailWarpFrequency: 0.01,
			DetailWarpStrength:  25,
			DetailWeight:        4,
			ShapingExponent:     1.15,
		},
		Erosion:           erosion.DefaultConfig(),
		Climate:           climate.DefaultConfig(),
		Biomes:            biome.Default(),
		FalloffRate:       biome.DefaultFalloffRate,
		GlobalBlendFactor: 1,
		UseGlobalBlend:    false,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys are ignored; nested erosion and climate keys are
// delegated to their packages.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Erosion = erosion.FromMap(cfg)
	c.Climate = climate.FromMap(cfg)

	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["world_width"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.WorldWidth = parsed
		}
	}
	if v, ok := cfg["world_length"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.WorldLength = parsed
		}
	}
	floatKeys := map[string]*float64{
		"base_height":         &c.Synth.BaseHeight,
		"hill_height":         &c.Synth.HillHeight,
		"mountain_height":     &c.Synth.MountainHeight,
		"continent_frequency": &c.Synth.ContinentFrequency,
		"continent_threshold": &c.Synth.ContinentThreshold,
		"continent_sharpness": &c.Synth.ContinentSharpness,
		"mountain_frequency":  &c.Synth.MountainFrequency,
		"hill_frequency":      &c.Synth.HillFrequency,
		"hill_weight":         &c.Synth.HillWeight,
		"plains_frequency":    &c.Synth.PlainsFrequency,
		"detail_weight":       &c.Synth.DetailWeight,
		"shaping_exponent":    &c.Synth.ShapingExponent,
		"falloff_rate":        &c.FalloffRate,
		"blend_factor":        &c.GlobalBlendFactor,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if c.Synth.ContinentSharpness < 1 {
		c.Synth.ContinentSharpness = 1
	}
	if v, ok := cfg["biome_file"]; ok {
		c.BiomeFile = v
	}
	if v, ok := cfg["use_global_blend"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseGlobalBlend = parsed
		}
	}
	return c
}
