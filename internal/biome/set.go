package biome

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Set is an ordered, unique-by-name collection of biomes, immutable after
// construction.
type Set struct {
	biomes []Biome
	byName map[string]int
}

// NewSet validates the biomes and builds a set. Duplicate names and
// malformed ranges are configuration errors.
func NewSet(biomes ...Biome) (*Set, error) {
	if len(biomes) == 0 {
		return nil, fmt.Errorf("biome: empty biome collection")
	}
	s := &Set{
		biomes: append([]Biome(nil), biomes...),
		byName: make(map[string]int, len(biomes)),
	}
	for i, b := range s.biomes {
		if err := b.validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byName[b.Name]; dup {
			return nil, fmt.Errorf("biome: duplicate name %q", b.Name)
		}
		s.byName[b.Name] = i
	}
	return s, nil
}

// Len reports the number of biomes.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.biomes)
}

// Biomes returns the biomes in their defined order. Callers must not mutate
// the returned slice.
func (s *Set) Biomes() []Biome {
	if s == nil {
		return nil
	}
	return s.biomes
}

// Index returns the position of a biome name in the set's order.
func (s *Set) Index(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.byName[name]
	return i, ok
}

// ByName looks a biome up by exact name. Unknown names produce an error
// carrying the closest known name as a suggestion.
func (s *Set) ByName(name string) (Biome, error) {
	if s == nil {
		return Biome{}, fmt.Errorf("biome: empty biome collection")
	}
	if i, ok := s.byName[name]; ok {
		return s.biomes[i], nil
	}
	if suggestion := s.nearestName(name); suggestion != "" {
		return Biome{}, fmt.Errorf("biome: unknown biome %q (did you mean %q?)", name, suggestion)
	}
	return Biome{}, fmt.Errorf("biome: unknown biome %q", name)
}

// nearestName returns the known name with the smallest edit distance to the
// query, or "" when nothing is plausibly close.
func (s *Set) nearestName(query string) string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	best := ""
	bestDist := len(query)/2 + 2
	for _, cand := range names {
		dist := levenshtein.ComputeDistance(query, cand)
		if dist < bestDist {
			bestDist = dist
			best = cand
		}
	}
	return best
}

// Default returns the built-in biome set used when no definition file is
// supplied. Ranges overlap on purpose; the falloff and blend strengths are
// what keeps transitions soft.
func Default() *Set {
	s, err := NewSet(
		Biome{
			Name:          "ocean",
			Height:        Range{0, 0.18},
			Temperature:   Range{0, 1},
			Humidity:      Range{0, 1},
			BlendStrength: 4,
			Color:         color.RGBA{R: 38, G: 84, B: 158, A: 255},
		},
		Biome{
			Name:          "beach",
			Height:        Range{0.16, 0.24},
			Temperature:   Range{0.25, 1},
			Humidity:      Range{0, 1},
			BlendStrength: 5,
			Color:         color.RGBA{R: 219, G: 203, B: 152, A: 255},
		},
		Biome{
			Name:          "desert",
			Height:        Range{0.2, 0.55},
			Temperature:   Range{0.6, 1},
			Humidity:      Range{0, 0.3},
			BlendStrength: 3,
			Color:         color.RGBA{R: 222, G: 184, B: 110, A: 255},
		},
		Biome{
			Name:          "grassland",
			Height:        Range{0.2, 0.6},
			Temperature:   Range{0.3, 0.8},
			Humidity:      Range{0.25, 0.65},
			BlendStrength: 2,
			Color:         color.RGBA{R: 120, G: 168, B: 74, A: 255},
		},
		Biome{
			Name:          "forest",
			Height:        Range{0.22, 0.65},
			Temperature:   Range{0.3, 0.75},
			Humidity:      Range{0.5, 1},
			BlendStrength: 2,
			Color:         color.RGBA{R: 56, G: 118, B: 58, A: 255},
		},
		Biome{
			Name:          "tundra",
			Height:        Range{0.2, 0.7},
			Temperature:   Range{0, 0.3},
			Humidity:      Range{0, 0.6},
			BlendStrength: 3,
			Color:         color.RGBA{R: 148, G: 151, B: 130, A: 255},
		},
		Biome{
			Name:          "mountain",
			Height:        Range{0.6, 0.85},
			Temperature:   Range{0, 0.6},
			Humidity:      Range{0, 1},
			BlendStrength: 3,
			Color:         color.RGBA{R: 112, G: 104, B: 96, A: 255},
		},
		Biome{
			Name:          "snow",
			Height:        Range{0.8, 1},
			Temperature:   Range{0, 0.35},
			Humidity:      Range{0, 1},
			BlendStrength: 4,
			Color:         color.RGBA{R: 238, G: 240, B: 245, A: 255},
		},
	)
	if err != nil {
		panic(err) // built-in definitions must be valid
	}
	return s
}
