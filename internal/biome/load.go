package biome

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// definitionFile is the on-disk biome description format.
//
//	biomes:
//	  - name: grassland
//	    height: [0.2, 0.6]
//	    temperature: [0.3, 0.8]
//	    humidity: [0.25, 0.65]
//	    blend_strength: 2
//	    color: "#78a84a"
type definitionFile struct {
	Biomes []definition `yaml:"biomes"`
}

type definition struct {
	Name          string     `yaml:"name"`
	Height        [2]float64 `yaml:"height"`
	Temperature   [2]float64 `yaml:"temperature"`
	Humidity      [2]float64 `yaml:"humidity"`
	BlendStrength float64    `yaml:"blend_strength"`
	Color         string     `yaml:"color"`
}

// Load reads a YAML biome definition document into a validated Set.
func Load(r io.Reader) (*Set, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("biome: read definitions: %w", err)
	}
	var file definitionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("biome: parse definitions: %w", err)
	}
	if len(file.Biomes) == 0 {
		return nil, fmt.Errorf("biome: definition file contains no biomes")
	}

	biomes := make([]Biome, 0, len(file.Biomes))
	for _, def := range file.Biomes {
		c, err := parseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("biome: %q: %w", def.Name, err)
		}
		biomes = append(biomes, Biome{
			Name:          def.Name,
			Height:        Range{def.Height[0], def.Height[1]},
			Temperature:   Range{def.Temperature[0], def.Temperature[1]},
			Humidity:      Range{def.Humidity[0], def.Humidity[1]},
			BlendStrength: def.BlendStrength,
			Color:         c,
		})
	}
	return NewSet(biomes...)
}

// LoadFile reads a YAML biome definition file from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("biome: open definitions: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
