package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"terragen/internal/core"
	"terragen/internal/erosion"
	"terragen/internal/noise"
	"terragen/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Candidate values swept per parameter, one axis at a time.
var sweep = []struct {
	name   string
	apply  func(*erosion.Config, float64)
	values []float64
}{
	{"erosion_strength", func(c *erosion.Config, v float64) { c.Strength = v }, []float64{0.1, 0.2, 0.3, 0.4, 0.5}},
	{"sediment_capacity", func(c *erosion.Config, v float64) { c.SedimentCapacity = v }, []float64{2, 4, 6, 8}},
	{"evaporation", func(c *erosion.Config, v float64) { c.Evaporation = v }, []float64{0.01, 0.02, 0.05, 0.1}},
}

func main() {
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate provided overrides")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	cfg := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		cfg[parts[0]] = parts[1]
	}
	wc := terrain.FromMap(cfg)

	base := synthesize(wc)
	baseline, err := erosion.Profile(base.Clone(), wc.Erosion)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Baseline: %s\n", describe(wc.Erosion, baseline))

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		return
	}

	best := wc.Erosion
	bestReport := baseline
	bestScore := score(baseline)
	for _, axis := range sweep {
		fmt.Printf("\n%s:\n", axis.name)
		for _, v := range axis.values {
			candidate := best
			axis.apply(&candidate, v)
			report, err := erosion.Profile(base.Clone(), candidate)
			if err != nil {
				log.Fatal(err)
			}
			marker := " "
			if s := score(report); s > bestScore {
				best = candidate
				bestReport = report
				bestScore = s
				marker = "*"
			}
			fmt.Printf("  %s %-8g %s\n", marker, v, describe(candidate, report))
		}
	}

	fmt.Printf("\nBest found: %s\n", describe(best, bestReport))
	fmt.Printf("  -set erosion_strength=%g -set sediment_capacity=%g -set evaporation=%g\n",
		best.Strength, best.SedimentCapacity, best.Evaporation)
}

// synthesize builds the raw pre-erosion heightfield for the tuning runs.
func synthesize(wc terrain.Config) *core.Grid {
	field := noise.New(wc.Seed)
	synth := terrain.NewSynthesizer(field, wc.Synth)
	g := core.NewGrid(wc.Width, wc.Height)
	sx, sy := 0.0, 0.0
	if wc.Width > 1 {
		sx = wc.WorldWidth / float64(wc.Width-1)
	}
	if wc.Height > 1 {
		sy = wc.WorldLength / float64(wc.Height-1)
	}
	for y := 0; y < wc.Height; y++ {
		for x := 0; x < wc.Width; x++ {
			g.Set(x, y, synth.HeightAt(float64(x)*sx, float64(y)*sy))
		}
	}
	return g
}

// score favors carving relief while keeping total mass roughly in place.
func score(r erosion.Report) float64 {
	return r.Eroded - 4*math.Abs(r.NetChange)
}

func describe(cfg erosion.Config, r erosion.Report) string {
	return fmt.Sprintf("eroded %.1f, deposited %.1f, net %+.2f, peak %.1f -> %.1f (%d droplets, strength %g, capacity %g, evap %g)",
		r.Eroded, r.Deposited, r.NetChange, r.PeakBefore, r.PeakAfter, r.Iterations, cfg.Strength, cfg.SedimentCapacity, cfg.Evaporation)
}
