package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

// WaitFunc blocks for d, or returns early with the context's error.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Sleep waits in real time.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Advance returns a WaitFunc that moves a manual clock instead of sleeping,
// so a whole round runs as fast as the CPU allows.
func Advance(clock *core.ManualClock) WaitFunc {
	return func(ctx context.Context, d time.Duration) error {
		clock.Advance(d)
		return ctx.Err()
	}
}

// Options configure a headless round.
type Options struct {
	Bot         Bot
	RoundLength time.Duration
	Wait        WaitFunc
	Logger      *log.Logger
}

// Run drives e until the round ends, the round length elapses or ctx is
// cancelled. It returns the final report. A cancelled context still ends
// the round cleanly; the error is returned alongside the report.
func Run(ctx context.Context, e *whale.Engine, pacer *Pacer, opts Options) (whale.Report, error) {
	wait := opts.Wait
	if wait == nil {
		wait = Sleep
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ticksPerSecond := max(uint64(time.Second/pacer.Budget()), 1)

	for e.Running() {
		pacer.Begin()

		var events []core.Action
		if opts.Bot != nil {
			events = opts.Bot.Next(e.Snapshot())
		}
		if !e.Tick(events) {
			break
		}

		if e.Ticks()%ticksPerSecond == 0 {
			r := e.Report()
			logger.Debug("progress",
				"tick", e.Ticks(),
				"elapsed", r.Duration.Round(time.Second),
				"krill", r.Collected,
				"hits", r.Hits,
				"ratio", r.RatioString(),
			)
		}

		if opts.RoundLength > 0 && e.Report().Duration >= opts.RoundLength {
			e.End()
			break
		}

		if err := wait(ctx, pacer.Remaining()); err != nil {
			e.End()
			return e.Report(), err
		}
	}

	r := e.Report()
	logger.Info("round over",
		"ticks", r.Ticks,
		"duration", r.Duration.Round(time.Millisecond),
		"krill", r.Collected,
		"hits", r.Hits,
		"ratio", r.RatioString(),
	)
	return r, nil
}
