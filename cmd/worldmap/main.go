package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"terragen/internal/core"
	"terragen/internal/render"
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

func main() {
	preset := flag.String("preset", "default", "world preset to generate")
	seed := flag.Int64("seed", 1337, "world seed")
	out := flag.String("out", "world", "output file prefix")
	maps := flag.String("maps", "biome,height", "comma-separated maps to export: biome, height, temperature, humidity")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Presets()[*preset]
	if !ok {
		names := core.PresetNames()
		sort.Strings(names)
		log.Fatalf("unknown preset %q (have: %s)", *preset, strings.Join(names, ", "))
	}

	cfg := map[string]string{"seed": fmt.Sprint(*seed)}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		cfg[parts[0]] = parts[1]
	}

	builder, err := factory(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world, ok := builder.(*terrain.World)
	if !ok {
		log.Fatalf("preset %q does not build a world", *preset)
	}
	for !world.Done() {
		world.Step()
	}
	lo, hi := world.RawRange()
	size := world.Size()
	log.Printf("generated %dx%d world, raw elevation %.1f..%.1f", size.W, size.H, lo, hi)

	for _, kind := range strings.Split(*maps, ",") {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		path := fmt.Sprintf("%s_%s.png", *out, kind)
		if err := export(world, kind, path); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}

func export(world *terrain.World, kind, path string) error {
	size := world.Size()
	switch kind {
	case "biome":
		img, err := render.PaletteImage(size.W, size.H, world.Cells(), world.Palette())
		if err != nil {
			return err
		}
		return render.WritePNG(path, img)
	case "height":
		img, err := render.ScalarImage(size.W, size.H, world.HeightField(), render.GrayRamp)
		if err != nil {
			return err
		}
		return render.WritePNG(path, img)
	case "temperature":
		img, err := render.ScalarImage(size.W, size.H, world.TemperatureField(), render.HeatRamp)
		if err != nil {
			return err
		}
		return render.WritePNG(path, img)
	case "humidity":
		img, err := render.ScalarImage(size.W, size.H, world.HumidityField(), render.MoistureRamp)
		if err != nil {
			return err
		}
		return render.WritePNG(path, img)
	default:
		return fmt.Errorf("unknown map kind %q", kind)
	}
}
