package whale

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// RatioUndefined is shown instead of a ratio while the whale has never
// been harpooned.
const RatioUndefined = "∞"

// Report holds the running and final statistics of a round.
type Report struct {
	Collected int           // Krill eaten
	Hits      int           // Times harpooned
	Ticks     uint64        // Ticks executed
	Duration  time.Duration // Time from start to end (or to now while running)
}

// Ratio returns krill per harpoon. ok is false when there are no hits.
func (r Report) Ratio() (ratio float64, ok bool) {
	if r.Hits == 0 {
		return 0, false
	}
	return float64(r.Collected) / float64(r.Hits), true
}

// RatioString formats the ratio with three decimals, or RatioUndefined.
func (r Report) RatioString() string {
	ratio, ok := r.Ratio()
	if !ok {
		return RatioUndefined
	}
	return fmt.Sprintf("%.3f", ratio)
}

// Good reports whether the whale has eaten at least as many krill as it
// has taken harpoons.
func (r Report) Good() bool {
	return r.Hits <= r.Collected
}

// Report returns the statistics so far. After the round ends the duration
// stops growing.
func (e *Engine) Report() Report {
	end := e.endedAt
	if e.state == StateRunning {
		end = e.clock.Now()
	}
	return Report{
		Collected: e.whale.collected,
		Hits:      e.whale.hits,
		Ticks:     e.ticks,
		Duration:  end.Sub(e.started),
	}
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Tick        uint64
	State       State
	Field       core.Field
	ReservedTop int
	BoatLane    int
	WaveLine    int

	Whale    core.Point
	Stunned  bool
	Krill    []core.Point
	Boats    []core.Point
	Harpoons []core.Point

	Stats Report
}

// Snapshot copies the current positions and statistics.
// The result shares no memory with the engine.
func (e *Engine) Snapshot() Snapshot {
	now := e.clock.Now()

	s := Snapshot{
		Tick:        e.ticks,
		State:       e.state,
		Field:       e.params.Field,
		ReservedTop: e.params.ReservedTop,
		BoatLane:    e.params.BoatLane(),
		WaveLine:    e.params.WaveLine(),
		Whale:       e.whale.pos,
		Stunned:     e.whale.Stunned(now),
		Krill:       make([]core.Point, len(e.krill)),
		Boats:       make([]core.Point, len(e.boats)),
		Harpoons:    make([]core.Point, len(e.harpoons)),
		Stats:       e.Report(),
	}
	for i, k := range e.krill {
		s.Krill[i] = k.pos
	}
	for i, b := range e.boats {
		s.Boats[i] = b.Position(e.params)
	}
	for i, h := range e.harpoons {
		s.Harpoons[i] = h.pos
	}
	return s
}
