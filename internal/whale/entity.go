package whale

import (
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// Whale is the player-controlled actor.
type Whale struct {
	pos          core.Point
	stunnedUntil time.Time
	hits         int // Times harpooned
	collected    int // Krill eaten
}

// newWhale places the whale centered horizontally, a few rows below the
// middle of the field. X is kept even so it lines up with krill columns.
func newWhale(p Params) Whale {
	x := (p.Field.W / 2) &^ 1
	y := core.Clamp(p.Field.H/2+3, p.ReservedTop, p.Field.H-1)
	return Whale{pos: core.Point{X: x, Y: y}}
}

// Position returns the whale's cell.
func (w Whale) Position() core.Point {
	return w.pos
}

// Hits returns how many times the whale has been harpooned.
func (w Whale) Hits() int {
	return w.hits
}

// Collected returns how many krill the whale has eaten.
func (w Whale) Collected() int {
	return w.collected
}

// Stunned reports whether the whale is still recovering from a harpoon.
func (w Whale) Stunned(now time.Time) bool {
	return w.stunnedUntil.After(now)
}

// StunnedUntil returns the end of the current stun, or a past instant.
func (w Whale) StunnedUntil() time.Time {
	return w.stunnedUntil
}

// Stun records a harpoon hit and freezes the whale for d.
// A hit while already stunned restarts the stun from now.
func (w *Whale) Stun(now time.Time, d time.Duration) {
	w.stunnedUntil = now.Add(d)
	w.hits++
}

// Move shifts the whale one step in the direction of a, unless it is
// stunned or the step would leave the playable area. Returns true if the
// position changed.
func (w *Whale) Move(a core.Action, p Params, now time.Time) bool {
	if w.Stunned(now) {
		return false
	}
	next, ok := step(w.pos, a, p)
	if !ok {
		return false
	}
	w.pos = next
	return true
}

// step computes a move inside [0, W) x [ReservedTop, H). Horizontal moves
// must keep the whole glyph on the field.
func step(pos core.Point, a core.Action, p Params) (core.Point, bool) {
	var next core.Point
	switch a {
	case core.ActionUp:
		next = pos.Add(0, -StepY)
	case core.ActionDown:
		next = pos.Add(0, StepY)
	case core.ActionLeft:
		next = pos.Add(-StepX, 0)
	case core.ActionRight:
		next = pos.Add(StepX, 0)
	default:
		return pos, false
	}
	if next.X < 0 || next.X+GlyphWidth > p.Field.W {
		return pos, false
	}
	if next.Y < p.ReservedTop || next.Y >= p.Field.H {
		return pos, false
	}
	return next, true
}

// Krill is a stationary item the whale eats by swimming onto it.
type Krill struct {
	pos core.Point
}

// Position returns the krill's cell.
func (k Krill) Position() core.Point {
	return k.pos
}

// Boat travels right along the boat lane and drops harpoons on its own timer.
type Boat struct {
	x          int
	nextLaunch Deadline
}

func newBoat(now time.Time, p Params, rng core.Rand) Boat {
	return Boat{
		x:          0,
		nextLaunch: After(now, p.HarpoonLaunch.Draw(rng)),
	}
}

// X returns the boat's column.
func (b Boat) X() int {
	return b.x
}

// Position returns the boat's cell on the lane.
func (b Boat) Position(p Params) core.Point {
	return core.Point{X: b.x, Y: p.BoatLane()}
}

// canAdvance reports whether the boat can take one more step and still fit.
func (b Boat) canAdvance(p Params) bool {
	return b.x+StepX+GlyphWidth <= p.Field.W
}

func (b *Boat) advance() {
	b.x += StepX
}

// launchDue redraws the launch timer and returns true when it has fired.
func (b *Boat) launchDue(now time.Time, p Params, rng core.Rand) bool {
	if !b.nextLaunch.Due(now) {
		return false
	}
	b.nextLaunch.Reset(now, p.HarpoonLaunch.Draw(rng))
	return true
}

// Harpoon falls straight down from the boat that launched it.
type Harpoon struct {
	pos core.Point
}

// launchHarpoon creates a harpoon under the boat's current column.
func launchHarpoon(b Boat, p Params) Harpoon {
	return Harpoon{pos: core.Point{X: b.x, Y: p.HarpoonRow()}}
}

// Position returns the harpoon's cell.
func (h Harpoon) Position() core.Point {
	return h.pos
}

func (h Harpoon) canAdvance(p Params) bool {
	return h.pos.Y+StepY < p.Field.H
}

func (h *Harpoon) advance() {
	h.pos.Y += StepY
}
