// Package erosion carves a heightfield with particle-based hydraulic
// erosion: independent water droplets flow downhill, pick up sediment, and
// deposit it where they slow down or die. The simulation is a pure grid
// transform, deterministic for a fixed seed, with no dependency on how the
// heights were synthesized.
package erosion

import (
	"errors"
	"math"

	"terragen/internal/core"
	pkgcore "terragen/pkg/core"
)

// ErrGridTooSmall signals that the heightfield cannot support bilinear
// sampling. Callers treat it as a warning and skip the stage.
var ErrGridTooSmall = errors.New("erosion: grid smaller than 2x2, skipping")

// Droplet integration constants.
const (
	maxLifetime  = 30
	gravity      = 4.0
	depositSpeed = 0.3
	erodeSpeed   = 0.3
	// minCapacitySlope keeps carrying capacity positive on flat ground.
	minCapacitySlope = 0.01
)

// Simulate runs cfg.Iterations droplets over the heightfield, mutating it in
// place. Mass is conserved: every eroded unit is deposited somewhere on the
// grid, including a droplet's remaining load when it dies.
func Simulate(g *core.Grid, cfg Config) error {
	if g == nil || g.W < 2 || g.H < 2 {
		return ErrGridTooSmall
	}
	rng := pkgcore.NewRNG(cfg.Seed)
	for i := 0; i < cfg.Iterations; i++ {
		simulateDroplet(g, cfg, rng)
	}
	return nil
}

// SimulateBatch runs up to n droplets from a shared RNG, for callers that
// interleave erosion with rendering. Returns the droplets actually run.
func SimulateBatch(g *core.Grid, cfg Config, rng *pkgcore.RNG, n int) int {
	if g == nil || g.W < 2 || g.H < 2 || n <= 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		simulateDroplet(g, cfg, rng)
	}
	return n
}

func simulateDroplet(g *core.Grid, cfg Config, rng *pkgcore.RNG) {
	x := rng.Float64() * float64(g.W-1)
	y := rng.Float64() * float64(g.H-1)

	water := 1.0
	sediment := 0.0
	velocity := 1.0

	for life := 0; life < maxLifetime; life++ {
		h0, ok := g.Bilinear(x, y)
		if !ok {
			return
		}
		gx, gy := g.Gradient(x, y)
		mag := math.Hypot(gx, gy)
		if mag < 1e-10 {
			// Flat cell: nowhere to flow, drop the load here.
			g.Splat(x, y, sediment)
			return
		}
		nx := x - gx/mag
		ny := y - gy/mag

		h1, ok := g.Bilinear(nx, ny)
		if !ok {
			// Leaving the interior: the droplet dies at the boundary and
			// abandons its sediment at the last valid position.
			g.Splat(x, y, sediment)
			return
		}
		dh := h1 - h0

		capacity := math.Max(-dh, minCapacitySlope) * velocity * water * cfg.SedimentCapacity

		if sediment > capacity || dh > 0 {
			var amount float64
			if dh > 0 {
				amount = math.Min(dh, sediment)
			} else {
				amount = (sediment - capacity) * depositSpeed
			}
			sediment -= amount
			g.Splat(x, y, amount)
		} else {
			amount := math.Min((capacity-sediment)*erodeSpeed, -dh) * cfg.Strength
			if amount > 0 {
				g.Splat(x, y, -amount)
				sediment += amount
			}
		}

		// Energy-conservation approximation: dropping dh of height feeds
		// the squared speed, climbing consumes it.
		velocity = math.Sqrt(math.Max(0, velocity*velocity-dh*gravity))
		water *= 1 - cfg.Evaporation

		x, y = nx, ny
	}
	// Lifetime exhausted; leave the remaining sediment in place.
	g.Splat(x, y, sediment)
}
