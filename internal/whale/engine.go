// Package whale implements the whale simulator round: a whale swims around
// eating krill while boats cross the surface dropping harpoons.
//
// The Engine is pure logic. A driver calls Tick at a fixed cadence with the
// input that arrived since the last tick and reads a Snapshot back for
// drawing. Time comes from an injected core.Clock and randomness from an
// injected core.Rand, so a round can be replayed exactly in tests.
package whale

import (
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// State is the round lifecycle.
type State int

const (
	StateRunning State = iota
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// phase is one named step of a tick.
type phase struct {
	name string
	run  func(e *Engine, now time.Time)
}

// tickPhases is the order of work inside a tick. The order matters:
// harpoon hits are checked against the position the whale held when the
// tick began, before this tick's input can move it away, and again after
// every phase that can bring a harpoon and the whale onto the same cell,
// so no tick ends with a harpoon on the whale. Boats and harpoons are
// culled before they advance so nothing is ever left off-field.
var tickPhases = []phase{
	{"harpoon-hits", (*Engine).resolveHarpoonHits},
	{"input", (*Engine).applyPending},
	{"harpoon-hits-after-input", (*Engine).resolveHarpoonHits},
	{"krill", (*Engine).resolveKrill},
	{"boats", (*Engine).moveBoats},
	{"harpoons", (*Engine).moveHarpoons},
	{"spawn-krill", (*Engine).spawnKrill},
	{"spawn-boats", (*Engine).spawnBoats},
	{"launch", (*Engine).launchHarpoons},
	{"harpoon-hits-after-move", (*Engine).resolveHarpoonHits},
}

// PhaseNames returns the tick phases in execution order.
func PhaseNames() []string {
	names := make([]string, len(tickPhases))
	for i, p := range tickPhases {
		names[i] = p.name
	}
	return names
}

// maxSpawnAttempts bounds the search for a free krill cell.
const maxSpawnAttempts = 8

// Engine owns every entity of a round and advances them one tick at a time.
// It is not safe for concurrent use.
type Engine struct {
	params Params
	clock  core.Clock
	rng    core.Rand

	whale    Whale
	krill    []Krill
	boats    []Boat
	harpoons []Harpoon

	nextKrill       Deadline
	nextBoat        Deadline
	nextBoatMove    Deadline
	nextHarpoonMove Deadline

	state   State
	ticks   uint64
	pending []core.Action
	started time.Time
	endedAt time.Time
}

// New builds an engine for one round. It fails without side effects when
// the params are invalid, in particular when the field is smaller than
// MinFieldW x MinFieldH.
func New(p Params, clock core.Clock, rng core.Rand) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := clock.Now()
	e := &Engine{
		params:   p,
		clock:    clock,
		rng:      rng,
		whale:    newWhale(p),
		krill:    make([]Krill, 0, p.KrillCap()),
		boats:    make([]Boat, 0, 4),
		harpoons: make([]Harpoon, 0, 8),
		state:    StateRunning,
		started:  now,
	}
	e.nextKrill = After(now, p.KrillSpawn.Draw(rng))
	e.nextBoat = After(now, p.BoatSpawn.Draw(rng))
	e.nextBoatMove = After(now, p.BoatMove)
	e.nextHarpoonMove = After(now, p.HarpoonMove)

	return e, nil
}

// Params returns the session parameters.
func (e *Engine) Params() Params {
	return e.params
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Running reports whether the round is still in progress.
func (e *Engine) Running() bool {
	return e.state == StateRunning
}

// Ticks returns the number of ticks executed.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Whale returns a copy of the actor. Only the engine changes the whale.
func (e *Engine) Whale() Whale {
	return e.whale
}

// Tick runs one simulation step with the events that arrived since the
// previous tick, in arrival order. It returns whether the round continues.
// Once the round has ended Tick does nothing.
func (e *Engine) Tick(events []core.Action) bool {
	if e.state != StateRunning {
		return false
	}

	now := e.clock.Now()
	e.pending = events
	for _, p := range tickPhases {
		p.run(e, now)
		if e.state != StateRunning {
			break
		}
	}
	e.pending = nil
	e.ticks++

	return e.state == StateRunning
}

// ApplyInput applies a single event immediately. Moves are dropped while
// the whale is stunned; ActionQuit always ends the round.
func (e *Engine) ApplyInput(a core.Action) {
	e.applyInput(a, e.clock.Now())
}

func (e *Engine) applyInput(a core.Action, now time.Time) {
	if e.state != StateRunning {
		return
	}
	switch {
	case a == core.ActionQuit:
		e.end(now)
	case a.IsMove():
		e.whale.Move(a, e.params, now)
	}
}

// End finishes the round. The driver calls it when the round length has
// elapsed. Calling it again has no effect.
func (e *Engine) End() {
	e.end(e.clock.Now())
}

func (e *Engine) end(now time.Time) {
	if e.state == StateEnded {
		return
	}
	e.state = StateEnded
	e.endedAt = now
}

func (e *Engine) resolveHarpoonHits(now time.Time) {
	at := e.whale.Position()
	kept := e.harpoons[:0]
	for _, h := range e.harpoons {
		if h.pos == at {
			e.whale.Stun(now, e.params.StunDuration)
			continue
		}
		kept = append(kept, h)
	}
	e.harpoons = kept
}

func (e *Engine) applyPending(now time.Time) {
	for _, a := range e.pending {
		e.applyInput(a, now)
		if e.state != StateRunning {
			return
		}
	}
}

func (e *Engine) resolveKrill(now time.Time) {
	if e.whale.Stunned(now) {
		return
	}
	at := e.whale.Position()
	kept := e.krill[:0]
	for _, k := range e.krill {
		if k.pos == at {
			e.whale.collected++
			continue
		}
		kept = append(kept, k)
	}
	e.krill = kept
}

func (e *Engine) moveBoats(now time.Time) {
	if !e.nextBoatMove.Fire(now, e.params.BoatMove) {
		return
	}
	kept := e.boats[:0]
	for _, b := range e.boats {
		if !b.canAdvance(e.params) {
			continue
		}
		b.advance()
		kept = append(kept, b)
	}
	e.boats = kept
}

func (e *Engine) moveHarpoons(now time.Time) {
	if !e.nextHarpoonMove.Fire(now, e.params.HarpoonMove) {
		return
	}
	kept := e.harpoons[:0]
	for _, h := range e.harpoons {
		if !h.canAdvance(e.params) {
			continue
		}
		h.advance()
		kept = append(kept, h)
	}
	e.harpoons = kept
}

// spawnKrill resets the krill timer whenever it fires, even if the field
// is already at capacity.
func (e *Engine) spawnKrill(now time.Time) {
	if !e.nextKrill.Due(now) {
		return
	}
	e.nextKrill.Reset(now, e.params.KrillSpawn.Draw(e.rng))

	if len(e.krill) >= e.params.KrillCap() {
		return
	}
	if pos, ok := e.freeKrillCell(); ok {
		e.krill = append(e.krill, Krill{pos: pos})
	}
}

// freeKrillCell picks a random even column below the wave line that holds
// neither krill nor the whale.
func (e *Engine) freeKrillCell() (core.Point, bool) {
	cols := e.params.Field.W / GlyphWidth
	top := e.params.KrillTop()
	rows := e.params.Field.H - top

	for range maxSpawnAttempts {
		p := core.Point{
			X: e.rng.Intn(cols) * GlyphWidth,
			Y: top + e.rng.Intn(rows),
		}
		if p == e.whale.pos || e.krillAt(p) {
			continue
		}
		return p, true
	}
	return core.Point{}, false
}

func (e *Engine) krillAt(p core.Point) bool {
	for _, k := range e.krill {
		if k.pos == p {
			return true
		}
	}
	return false
}

func (e *Engine) spawnBoats(now time.Time) {
	if !e.nextBoat.Due(now) {
		return
	}
	e.nextBoat.Reset(now, e.params.BoatSpawn.Draw(e.rng))
	e.boats = append(e.boats, newBoat(now, e.params, e.rng))
}

func (e *Engine) launchHarpoons(now time.Time) {
	for i := range e.boats {
		if e.boats[i].launchDue(now, e.params, e.rng) {
			e.harpoons = append(e.harpoons, launchHarpoon(e.boats[i], e.params))
		}
	}
}
