//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strings"

	"terragen/internal/app"
	"terragen/internal/core"
	_ "terragen/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
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
	scale := flag.Int("scale", 3, "pixels per cell")
	sps := flag.Int("sps", 120, "generation batches per second (0 = unpaced)")
	tps := flag.Int("tps", 60, "ticks per second")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Presets()[*preset]
	if !ok {
		names := core.PresetNames()
		sort.Strings(names)
		log.Fatalf("unknown preset %q (have: %s)", *preset, strings.Join(names, ", "))
	}

	cfg := map[string]string{}
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
	builder.Reset(*seed)

	game := app.New(builder, *scale, *seed, *sps)
	size := builder.Size()

	ebiten.SetWindowTitle("terragen — " + builder.Name())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W**scale+230, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
