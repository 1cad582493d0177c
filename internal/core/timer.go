package core

import (
	"context"
	"time"
)

// FixedStep paces simulation updates at a steady interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return FixedStepEvery(time.Second / time.Duration(tps))
}

// FixedStepEvery constructs a FixedStep that ticks once per interval. The first
// call to ShouldStep always reports true.
func FixedStepEvery(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FixedStep{step: interval, accumulator: interval, now: time.Now}
}

// Interval returns the configured tick length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetInterval changes the tick length. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	f.step = d
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
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

// Wait blocks until the next tick is due or ctx is done.
func (f *FixedStep) Wait(ctx context.Context) error {
	for !f.ShouldStep() {
		remaining := f.step - f.accumulator
		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
