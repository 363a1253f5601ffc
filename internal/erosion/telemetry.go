package erosion

import "terragen/internal/core"

// Report captures telemetry from one deterministic erosion run, used by the
// tuner CLI and the conservation tests.
type Report struct {
	// Eroded is the total volume removed from cells that ended up lower.
	Eroded float64
	// Deposited is the total volume added to cells that ended up higher.
	Deposited float64
	// NetChange is the signed volume difference over the whole grid; it
	// should stay near zero because droplets drop their load when they die.
	NetChange float64
	// PeakBefore and PeakAfter record the grid maximum around the run.
	PeakBefore float64
	PeakAfter  float64
	Iterations int
}

// Profile runs Simulate on the grid and compares the before/after fields.
// The grid is mutated exactly as Simulate would mutate it.
func Profile(g *core.Grid, cfg Config) (Report, error) {
	r := Report{Iterations: cfg.Iterations}
	if g == nil {
		return r, ErrGridTooSmall
	}
	before := g.Clone()
	_, r.PeakBefore = before.MinMax()

	if err := Simulate(g, cfg); err != nil {
		return r, err
	}

	_, r.PeakAfter = g.MinMax()
	after := g.Cells()
	for i, b := range before.Cells() {
		d := after[i] - b
		if d < 0 {
			r.Eroded += -d
		} else {
			r.Deposited += d
		}
		r.NetChange += d
	}
	return r, nil
}
