package terrain

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"terragen/internal/biome"
	"terragen/internal/climate"
	"terragen/internal/core"
	"terragen/internal/erosion"
	"terragen/internal/noise"
	pkgcore "terragen/pkg/core"
)

// Generation stages, in pipeline order. Each stage must complete before the
// next begins: erosion rewrites the same heightfield classification later
// reads as fixed input.
const (
	stageSynth = iota
	stageErode
	stageNormalize
	stageClimate
	stageClassify
	stageDone
)

var stageNames = [...]string{"synthesis", "erosion", "normalize", "climate", "classify", "done"}

// Work batch sizes for incremental stepping.
const (
	synthRowsPerStep    = 8
	dropletsPerStep     = 2000
	classifyRowsPerStep = 8
)

// Display encoding: values below shadeLevels are height shades, values from
// shadeLevels upward are biome palette indices.
const shadeLevels = 128

// channelErosion derives the erosion RNG seed from the world seed.
const channelErosion int64 = 200

// ErrGenerating is returned by queries while a generation run is still in
// flight. Generate and query are mutually exclusive phases; the heightfield
// only becomes a shared read-only snapshot once generation completes.
var ErrGenerating = errors.New("terrain: generation in progress")

// World owns one generated world: the eroded, normalized heightfield, the
// climate grids, and the per-cell biome weights. It implements core.Builder
// so front-ends can drive generation incrementally.
type World struct {
	cfg  Config
	name string

	field   *noise.Field
	synth   *Synthesizer
	blender biome.Blender

	heights        *core.Grid
	rawMin, rawMax float64
	temperature    *core.Grid
	humidity       *core.Grid
	weights        []map[string]float64
	display        []uint8

	stage      int
	row        int
	droplets   int
	erosionRNG *pkgcore.RNG
}

// NewWorld validates the configuration and prepares an ungenerated world.
// Callers invoke Reset and Step (or use Generate) to populate it.
func NewWorld(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("terrain: invalid grid %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.WorldWidth <= 0 || cfg.WorldLength <= 0 {
		return nil, fmt.Errorf("terrain: invalid world extents %.1fx%.1f", cfg.WorldWidth, cfg.WorldLength)
	}
	if cfg.Biomes.Len() == 0 {
		return nil, fmt.Errorf("terrain: empty biome collection")
	}
	w := &World{
		cfg:  cfg,
		name: "world",
		blender: biome.Blender{
			Matcher:           biome.Matcher{FalloffRate: cfg.FalloffRate},
			GlobalBlendFactor: cfg.GlobalBlendFactor,
			UseGlobalFactor:   cfg.UseGlobalBlend,
		},
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Generate runs the full pipeline to completion for the provided
// configuration: synthesis, in-place erosion, the single normalization,
// climate fields, and per-cell classification.
func Generate(cfg Config) (*World, error) {
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	for !w.Done() {
		w.Step()
	}
	return w, nil
}

// Name returns the world identifier used by front-ends.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Stage names the pipeline stage currently executing.
func (w *World) Stage() string { return stageNames[w.stage] }

// Done reports whether generation has completed and the world is frozen.
func (w *World) Done() bool { return w.stage == stageDone }

// Cells exposes the display buffer for rendering.
func (w *World) Cells() []uint8 { return w.display }

// Reset rewinds the pipeline to the synthesis stage using deterministic
// randomness derived from the seed. A zero seed falls back to the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.field = noise.New(seed)
	w.synth = NewSynthesizer(w.field, w.cfg.Synth)
	w.heights = core.NewGrid(w.cfg.Width, w.cfg.Height)
	w.temperature = nil
	w.humidity = nil
	w.weights = make([]map[string]float64, w.cfg.Width*w.cfg.Height)
	w.display = make([]uint8, w.cfg.Width*w.cfg.Height)
	w.erosionRNG = pkgcore.NewRNG(pkgcore.SubSeed(seed, channelErosion))
	w.rawMin, w.rawMax = 0, 0
	w.stage = stageSynth
	w.row = 0
	w.droplets = 0
}

// Step advances the pipeline by one bounded batch of work.
func (w *World) Step() {
	switch w.stage {
	case stageSynth:
		w.stepSynth()
	case stageErode:
		w.stepErode()
	case stageNormalize:
		// The single documented normalization site: the synthesizer hands
		// over raw units, and nothing after this rescales again.
		w.rawMin, w.rawMax = w.heights.Normalize()
		w.stage = stageClimate
	case stageClimate:
		f := climate.Generate(w.cfg.Width, w.cfg.Height, w.field.Seed(), w.heights, w.cfg.Climate)
		w.temperature = f.Temperature
		w.humidity = f.Humidity
		w.stage = stageClassify
	case stageClassify:
		w.stepClassify()
	}
}

func (w *World) stepSynth() {
	sx, sy := w.worldScale()
	end := w.row + synthRowsPerStep
	if end > w.cfg.Height {
		end = w.cfg.Height
	}
	for y := w.row; y < end; y++ {
		wy := float64(y) * sy
		for x := 0; x < w.cfg.Width; x++ {
			w.heights.Set(x, y, w.synth.HeightAt(float64(x)*sx, wy))
		}
	}
	w.row = end
	w.shadeDisplay()
	if w.row >= w.cfg.Height {
		w.row = 0
		w.stage = stageErode
		if w.cfg.Width < 2 || w.cfg.Height < 2 {
			log.Printf("terrain: %v", erosion.ErrGridTooSmall)
			w.stage = stageNormalize
		}
	}
}

func (w *World) stepErode() {
	remaining := w.cfg.Erosion.Iterations - w.droplets
	if remaining <= 0 {
		w.stage = stageNormalize
		return
	}
	n := dropletsPerStep
	if n > remaining {
		n = remaining
	}
	w.droplets += erosion.SimulateBatch(w.heights, w.cfg.Erosion, w.erosionRNG, n)
	w.shadeDisplay()
	if w.droplets >= w.cfg.Erosion.Iterations {
		w.stage = stageNormalize
	}
}

func (w *World) stepClassify() {
	end := w.row + classifyRowsPerStep
	if end > w.cfg.Height {
		end = w.cfg.Height
	}
	for y := w.row; y < end; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			i := w.heights.Index(x, y)
			cell := w.blender.Weights(w.heights.At(x, y), w.temperature.At(x, y), w.humidity.At(x, y), w.cfg.Biomes)
			w.weights[i] = cell
			if idx, ok := w.cfg.Biomes.Index(biome.Dominant(cell)); ok {
				w.display[i] = uint8(shadeLevels + idx)
			}
		}
	}
	w.row = end
	if w.row >= w.cfg.Height {
		w.row = 0
		w.stage = stageDone
	}
}

// shadeDisplay maps the in-progress heightfield onto the grayscale band of
// the display encoding.
func (w *World) shadeDisplay() {
	lo, hi := w.heights.MinMax()
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i, v := range w.heights.Cells() {
		w.display[i] = uint8((v - lo) / span * float64(shadeLevels-1))
	}
}

// Palette returns the display palette: a gray height ramp followed by one
// entry per biome, in set order.
func (w *World) Palette() []color.RGBA {
	palette := make([]color.RGBA, shadeLevels, shadeLevels+w.cfg.Biomes.Len())
	for i := 0; i < shadeLevels; i++ {
		v := uint8(i * 255 / (shadeLevels - 1))
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	for _, b := range w.cfg.Biomes.Biomes() {
		palette = append(palette, b.Color)
	}
	return palette
}

func (w *World) worldScale() (float64, float64) {
	sx, sy := 0.0, 0.0
	if w.cfg.Width > 1 {
		sx = w.cfg.WorldWidth / float64(w.cfg.Width-1)
	}
	if w.cfg.Height > 1 {
		sy = w.cfg.WorldLength / float64(w.cfg.Height-1)
	}
	return sx, sy
}

// gridCoord converts world coordinates to clamped continuous grid
// coordinates.
func (w *World) gridCoord(worldX, worldZ float64) (float64, float64) {
	gx := 0.0
	gz := 0.0
	if w.cfg.WorldWidth > 0 {
		gx = worldX / w.cfg.WorldWidth * float64(w.cfg.Width-1)
	}
	if w.cfg.WorldLength > 0 {
		gz = worldZ / w.cfg.WorldLength * float64(w.cfg.Height-1)
	}
	gx = math.Min(math.Max(gx, 0), float64(w.cfg.Width-1))
	gz = math.Min(math.Max(gz, 0), float64(w.cfg.Height-1))
	return gx, gz
}

// HeightAt returns the normalized height in [0, 1] at a world coordinate,
// bilinearly interpolated. Coordinates outside the world clamp to its edge.
func (w *World) HeightAt(worldX, worldZ float64) (float64, error) {
	if !w.Done() {
		return 0, ErrGenerating
	}
	gx, gz := w.gridCoord(worldX, worldZ)
	if v, ok := w.heights.Bilinear(gx, gz); ok {
		return v, nil
	}
	return w.heights.At(int(gx), int(gz)), nil
}

// SlopeAt returns the magnitude of the normalized-height gradient per world
// unit at a world coordinate.
func (w *World) SlopeAt(worldX, worldZ float64) (float64, error) {
	if !w.Done() {
		return 0, ErrGenerating
	}
	gx, gz := w.gridCoord(worldX, worldZ)
	dx, dz := w.heights.Gradient(gx, gz)
	sx, sy := w.worldScale()
	if sx > 0 {
		dx /= sx
	}
	if sy > 0 {
		dz /= sy
	}
	return math.Hypot(dx, dz), nil
}

// WeightsAt returns the normalized biome weights of the grid cell nearest a
// world coordinate. The returned map is part of the frozen snapshot and
// must not be mutated.
func (w *World) WeightsAt(worldX, worldZ float64) (map[string]float64, error) {
	if !w.Done() {
		return nil, ErrGenerating
	}
	gx, gz := w.gridCoord(worldX, worldZ)
	x := int(math.Round(gx))
	z := int(math.Round(gz))
	return w.weights[w.heights.Index(x, z)], nil
}

// Heights exposes the normalized heightfield. Read-only after generation.
func (w *World) Heights() *core.Grid { return w.heights }

// Temperature exposes the temperature grid, nil until the climate stage ran.
func (w *World) Temperature() *core.Grid { return w.temperature }

// Humidity exposes the humidity grid, nil until the climate stage ran.
func (w *World) Humidity() *core.Grid { return w.humidity }

// Biomes returns the classification set in use.
func (w *World) Biomes() *biome.Set { return w.cfg.Biomes }

// RawRange reports the raw elevation span that the normalization step
// collapsed to [0, 1].
func (w *World) RawRange() (min, max float64) { return w.rawMin, w.rawMax }

// CellWeights returns the per-cell weight vectors in row-major order.
// Read-only after generation.
func (w *World) CellWeights() []map[string]float64 { return w.weights }

// HeightField exposes the raw height cells for overlay rendering.
func (w *World) HeightField() []float64 { return w.heights.Cells() }

// TemperatureField exposes the temperature cells, nil before the climate
// stage ran.
func (w *World) TemperatureField() []float64 {
	if w.temperature == nil {
		return nil
	}
	return w.temperature.Cells()
}

// HumidityField exposes the humidity cells, nil before the climate stage ran.
func (w *World) HumidityField() []float64 {
	if w.humidity == nil {
		return nil
	}
	return w.humidity.Cells()
}
