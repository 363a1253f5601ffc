package core

import "image/color"

// Size describes the dimensions of a generation grid.
type Size struct {
	W int
	H int
}

// Builder is the contract a world generator exposes to front-ends that drive
// generation incrementally. Reset rewinds to the first stage; Step advances
// one bounded batch of work; Done reports completion.
type Builder interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Done() bool
	Stage() string
	Cells() []uint8
	Palette() []color.RGBA
}

// Factory constructs a Builder using an optional configuration map.
type Factory func(cfg map[string]string) (Builder, error)

var presets = map[string]Factory{}

// Register adds a world preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available preset factories.
func Presets() map[string]Factory {
	return presets
}

// PresetNames lists the registered preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
