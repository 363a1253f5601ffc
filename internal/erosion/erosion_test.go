package erosion

import (
	"errors"
	"math"
	"slices"
	"testing"

	"terragen/internal/core"
)

// coneGrid builds a single central peak with smooth slopes on all sides.
func coneGrid(w, h int, peak float64) *core.Grid {
	g := core.NewGrid(w, h)
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			g.Set(x, y, peak*(1-d/maxDist))
		}
	}
	return g
}

func TestSimulateRejectsTinyGrid(t *testing.T) {
	g := core.NewGrid(1, 5)
	g.Fill(3)
	before := append([]float64(nil), g.Cells()...)

	err := Simulate(g, DefaultConfig())
	if !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("a rejected run must not touch the grid")
	}
	if err := Simulate(nil, DefaultConfig()); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("nil grid: expected ErrGridTooSmall, got %v", err)
	}
}

func TestSimulateConservesMass(t *testing.T) {
	g := coneGrid(16, 16, 40)
	before := g.Sum()

	cfg := DefaultConfig()
	cfg.Iterations = 2000
	cfg.Seed = 99
	if err := Simulate(g, cfg); err != nil {
		t.Fatal(err)
	}
	// Droplets abandon their remaining load when they die, so material only
	// moves, it never vanishes.
	if diff := math.Abs(g.Sum() - before); diff > 1e-6 {
		t.Fatalf("erosion changed total mass by %g", diff)
	}
}

func TestSimulateLowersPeak(t *testing.T) {
	g := coneGrid(10, 10, 50)
	_, peakBefore := g.MinMax()

	cfg := DefaultConfig()
	cfg.Iterations = 2000
	cfg.Seed = 7
	if err := Simulate(g, cfg); err != nil {
		t.Fatal(err)
	}
	_, peakAfter := g.MinMax()
	if peakAfter >= peakBefore {
		t.Fatalf("peak must be carved down, got %f -> %f", peakBefore, peakAfter)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 500
	cfg.Seed = 4242

	a := coneGrid(12, 12, 30)
	b := coneGrid(12, 12, 30)
	if err := Simulate(a, cfg); err != nil {
		t.Fatal(err)
	}
	if err := Simulate(b, cfg); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed and config must reproduce the identical heightfield")
	}

	cfg.Seed = 4243
	c := coneGrid(12, 12, 30)
	if err := Simulate(c, cfg); err != nil {
		t.Fatal(err)
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should carve different heightfields")
	}
}

func TestZeroIterationsIsNoop(t *testing.T) {
	g := coneGrid(8, 8, 20)
	before := append([]float64(nil), g.Cells()...)
	cfg := DefaultConfig()
	cfg.Iterations = 0
	if err := Simulate(g, cfg); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("zero iterations must leave the grid untouched")
	}
}

func TestProfileReport(t *testing.T) {
	g := coneGrid(16, 16, 40)
	cfg := DefaultConfig()
	cfg.Iterations = 2000
	cfg.Seed = 11

	r, err := Profile(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.Iterations != cfg.Iterations {
		t.Fatalf("report iterations = %d, want %d", r.Iterations, cfg.Iterations)
	}
	if r.Eroded <= 0 || r.Deposited <= 0 {
		t.Fatalf("expected material movement, got eroded %f deposited %f", r.Eroded, r.Deposited)
	}
	if math.Abs(r.NetChange) > 1e-6 {
		t.Fatalf("net change %g, want ~0", r.NetChange)
	}
	if r.PeakAfter > r.PeakBefore {
		t.Fatalf("peak rose from %f to %f", r.PeakBefore, r.PeakAfter)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"erosion_iterations": "123",
		"erosion_strength":   "0.7",
		"sediment_capacity":  "2.5",
		"evaporation":        "0.1",
		"erosion_seed":       "-5",
	})
	if cfg.Iterations != 123 || cfg.Strength != 0.7 || cfg.SedimentCapacity != 2.5 || cfg.Evaporation != 0.1 || cfg.Seed != -5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	// Invalid values fall back to defaults.
	cfg = FromMap(map[string]string{"evaporation": "1.5", "erosion_iterations": "nope"})
	def := DefaultConfig()
	if cfg.Evaporation != def.Evaporation || cfg.Iterations != def.Iterations {
		t.Fatalf("invalid overrides must keep defaults: %+v", cfg)
	}
}
