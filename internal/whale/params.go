package whale

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// Minimum playable field. Anything smaller cannot fit the score bar, the
// boat lane, the wave line and a few rows of water.
const (
	MinFieldW = 20
	MinFieldH = 15
)

// Step sizes. Glyphs are two cells wide, so horizontal movement is
// quantized to two columns.
const (
	GlyphWidth = 2
	StepX      = 2
	StepY      = 1
)

var (
	// ErrFieldTooSmall is returned when the field cannot hold a round.
	ErrFieldTooSmall = errors.New("field too small")

	// ErrInvalidParams is returned for inconsistent timer or layout settings.
	ErrInvalidParams = errors.New("invalid params")
)

// Jitter is a uniformly random interval in [Min, Max), drawn with
// millisecond resolution.
type Jitter struct {
	Min time.Duration
	Max time.Duration
}

// Draw picks an interval from the range.
func (j Jitter) Draw(rng core.Rand) time.Duration {
	span := int((j.Max - j.Min) / time.Millisecond)
	if span <= 0 {
		return j.Min
	}
	return j.Min + time.Duration(rng.Intn(span))*time.Millisecond
}

func (j Jitter) validate(name string) error {
	if j.Min < 0 || j.Max <= 0 || j.Max < j.Min {
		return fmt.Errorf("%w: %s range [%v, %v) is empty or negative", ErrInvalidParams, name, j.Min, j.Max)
	}
	return nil
}

// Params are the session parameters of one round. They are fixed for the
// lifetime of an Engine.
type Params struct {
	Field core.Field

	// ReservedTop is the number of rows kept for the score bar, the boat
	// lane and the wave line. The whale never enters them.
	ReservedTop int

	StunDuration time.Duration

	KrillSpawn   Jitter
	KrillDensity int // one krill allowed per this many cells

	BoatSpawn Jitter
	BoatMove  time.Duration

	HarpoonLaunch Jitter
	HarpoonMove   time.Duration
}

// DefaultParams returns the classic timings for a field of the given size.
func DefaultParams(w, h int) Params {
	return Params{
		Field:         core.Field{W: w, H: h},
		ReservedTop:   5,
		StunDuration:  2 * time.Second,
		KrillSpawn:    Jitter{Min: 500 * time.Millisecond, Max: 5 * time.Second},
		KrillDensity:  100,
		BoatSpawn:     Jitter{Min: 2500 * time.Millisecond, Max: 5 * time.Second},
		BoatMove:      time.Second,
		HarpoonLaunch: Jitter{Min: 5 * time.Second, Max: 10 * time.Second},
		HarpoonMove:   250 * time.Millisecond,
	}
}

// Validate checks the params before an engine is built from them.
func (p Params) Validate() error {
	if p.Field.W < MinFieldW || p.Field.H < MinFieldH {
		return fmt.Errorf("%w: field must be at least %dx%d (currently %dx%d)",
			ErrFieldTooSmall, MinFieldW, MinFieldH, p.Field.W, p.Field.H)
	}
	// Boat lane sits two rows above the water, harpoons start on the first
	// water row and krill need at least one row below that.
	if p.ReservedTop < 2 || p.ReservedTop > p.Field.H-2 {
		return fmt.Errorf("%w: reserved top %d must be in [2, %d]", ErrInvalidParams, p.ReservedTop, p.Field.H-2)
	}
	if p.StunDuration <= 0 || p.BoatMove <= 0 || p.HarpoonMove <= 0 {
		return fmt.Errorf("%w: stun and move intervals must be positive", ErrInvalidParams)
	}
	if p.KrillDensity <= 0 {
		return fmt.Errorf("%w: krill density must be positive", ErrInvalidParams)
	}
	if err := p.KrillSpawn.validate("krill spawn"); err != nil {
		return err
	}
	if err := p.BoatSpawn.validate("boat spawn"); err != nil {
		return err
	}
	return p.HarpoonLaunch.validate("harpoon launch")
}

// KrillCap is the most krill that may be on the field at once.
func (p Params) KrillCap() int {
	return p.Field.Area() / p.KrillDensity
}

// BoatLane is the row boats travel along.
func (p Params) BoatLane() int {
	return p.ReservedTop - 2
}

// WaveLine is the decorative row between the boats and the water.
func (p Params) WaveLine() int {
	return p.ReservedTop - 1
}

// HarpoonRow is the row a freshly launched harpoon starts on.
func (p Params) HarpoonRow() int {
	return p.ReservedTop
}

// KrillTop is the first row krill may spawn on.
func (p Params) KrillTop() int {
	return p.ReservedTop + 1
}
