// Package loop paces simulation ticks and drives rounds without a terminal.
package loop

import (
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// Pacer keeps ticks at a fixed cadence. Each tick has a time budget. Work
// that finishes early waits out the rest, and work that overruns starts the
// next tick immediately. Missed ticks are never made up.
type Pacer struct {
	budget time.Duration
	clock  core.Clock
	start  time.Time
}

// NewPacer creates a pacer with the given per-tick budget.
func NewPacer(budget time.Duration, clock core.Clock) *Pacer {
	return &Pacer{budget: budget, clock: clock, start: clock.Now()}
}

// Budget returns the time allotted to one tick.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Begin marks the start of a tick.
func (p *Pacer) Begin() {
	p.start = p.clock.Now()
}

// Remaining returns how long to wait before the next tick.
func (p *Pacer) Remaining() time.Duration {
	return Remaining(p.budget, p.clock.Now().Sub(p.start))
}

// Remaining is max(0, budget-elapsed).
func Remaining(budget, elapsed time.Duration) time.Duration {
	if elapsed >= budget {
		return 0
	}
	return budget - elapsed
}
