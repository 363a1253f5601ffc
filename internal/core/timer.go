package core

import "time"

// FixedStep paces generation batches at a steady steps-per-second rate so the
// viewer can render faster than the pipeline advances.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given SPS.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = 60
	}
	fs := &FixedStep{step: time.Second / time.Duration(sps)}
	fs.accumulator = fs.step
	return fs
}

// ShouldStep reports whether the generator should advance by one batch.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
