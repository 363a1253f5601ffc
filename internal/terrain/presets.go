package terrain

import (
	"fmt"

	"terragen/internal/biome"
	"terragen/internal/core"
)

func init() {
	core.Register("default", func(cfg map[string]string) (core.Builder, error) {
		return build("default", FromMap(cfg))
	})
	core.Register("island", func(cfg map[string]string) (core.Builder, error) {
		c := FromMap(cfg)
		c.Synth.EdgeFalloff = true
		c.Synth.FalloffCenterX = c.WorldWidth / 2
		c.Synth.FalloffCenterY = c.WorldLength / 2
		c.Synth.FalloffRadius = min(c.WorldWidth, c.WorldLength) * 0.45
		c.Synth.ContinentThreshold = 0.35
		return build("island", c)
	})
	core.Register("highlands", func(cfg map[string]string) (core.Builder, error) {
		c := FromMap(cfg)
		c.Synth.BaseHeight = 80
		c.Synth.ContinentThreshold = 0.3
		c.Synth.ContinentSharpness = 1.5
		c.Synth.MountainHeight = 130
		c.Synth.HillWeight = 0.8
		c.Erosion.Iterations = c.Erosion.Iterations * 2
		return build("highlands", c)
	})
}

func build(name string, cfg Config) (core.Builder, error) {
	if cfg.BiomeFile != "" {
		set, err := biome.LoadFile(cfg.BiomeFile)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		cfg.Biomes = set
	}
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.name = name
	return w, nil
}
