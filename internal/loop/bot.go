package loop

import (
	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

// Bot supplies input events for a headless round.
type Bot interface {
	// Next returns the events for the coming tick. It may return nil.
	Next(s whale.Snapshot) []core.Action
}

// BotFunc adapts a function to the Bot interface.
type BotFunc func(s whale.Snapshot) []core.Action

// Next calls f.
func (f BotFunc) Next(s whale.Snapshot) []core.Action {
	return f(s)
}

// RandomWalk presses a random direction every Every ticks.
type RandomWalk struct {
	Rng   core.Rand
	Every int
}

var directions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Next implements Bot.
func (b *RandomWalk) Next(s whale.Snapshot) []core.Action {
	every := max(b.Every, 1)
	if s.Tick%uint64(every) != 0 {
		return nil
	}
	return []core.Action{directions[b.Rng.Intn(len(directions))]}
}

// Forager swims toward the nearest krill and dodges harpoons directly
// above it.
type Forager struct {
	Every int
}

// Next implements Bot.
func (b *Forager) Next(s whale.Snapshot) []core.Action {
	every := max(b.Every, 1)
	if s.Tick%uint64(every) != 0 || s.Stunned {
		return nil
	}

	for _, h := range s.Harpoons {
		if h.X == s.Whale.X && h.Y < s.Whale.Y {
			if s.Whale.X+whale.StepX+whale.GlyphWidth <= s.Field.W {
				return []core.Action{core.ActionRight}
			}
			return []core.Action{core.ActionLeft}
		}
	}

	target, ok := nearest(s.Whale, s.Krill)
	if !ok {
		return nil
	}
	switch {
	case target.X < s.Whale.X:
		return []core.Action{core.ActionLeft}
	case target.X > s.Whale.X:
		return []core.Action{core.ActionRight}
	case target.Y < s.Whale.Y:
		return []core.Action{core.ActionUp}
	case target.Y > s.Whale.Y:
		return []core.Action{core.ActionDown}
	}
	return nil
}

func nearest(from core.Point, points []core.Point) (core.Point, bool) {
	best, bestDist := core.Point{}, -1
	for _, p := range points {
		d := abs(p.X-from.X) + abs(p.Y-from.Y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
