package whale

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-whale/internal/core"
)

func TestWhaleStartPosition(t *testing.T) {
	tests := []struct {
		w, h     int
		expected core.Point
	}{
		{20, 15, core.Point{X: 10, Y: 10}},
		{21, 15, core.Point{X: 10, Y: 10}},
		{80, 24, core.Point{X: 40, Y: 15}},
		{23, 16, core.Point{X: 10, Y: 11}},
	}

	for _, tc := range tests {
		w := newWhale(DefaultParams(tc.w, tc.h))
		if w.Position() != tc.expected {
			t.Errorf("%dx%d: start = %v, expected %v", tc.w, tc.h, w.Position(), tc.expected)
		}
	}
}

func TestWhaleMove(t *testing.T) {
	p := DefaultParams(40, 20)
	tests := []struct {
		name     string
		from     core.Point
		action   core.Action
		expected core.Point
		moved    bool
	}{
		{"right", core.Point{X: 10, Y: 10}, core.ActionRight, core.Point{X: 12, Y: 10}, true},
		{"left", core.Point{X: 10, Y: 10}, core.ActionLeft, core.Point{X: 8, Y: 10}, true},
		{"up", core.Point{X: 10, Y: 10}, core.ActionUp, core.Point{X: 10, Y: 9}, true},
		{"down", core.Point{X: 10, Y: 10}, core.ActionDown, core.Point{X: 10, Y: 11}, true},
		{"left edge", core.Point{X: 0, Y: 10}, core.ActionLeft, core.Point{X: 0, Y: 10}, false},
		{"right edge", core.Point{X: 38, Y: 10}, core.ActionRight, core.Point{X: 38, Y: 10}, false},
		{"reserved top", core.Point{X: 10, Y: 5}, core.ActionUp, core.Point{X: 10, Y: 5}, false},
		{"bottom", core.Point{X: 10, Y: 19}, core.ActionDown, core.Point{X: 10, Y: 19}, false},
		{"not a move", core.Point{X: 10, Y: 10}, core.ActionQuit, core.Point{X: 10, Y: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := Whale{pos: tc.from}
			moved := w.Move(tc.action, p, epoch)
			if moved != tc.moved {
				t.Errorf("Move() = %v, expected %v", moved, tc.moved)
			}
			if w.Position() != tc.expected {
				t.Errorf("position = %v, expected %v", w.Position(), tc.expected)
			}
		})
	}
}

func TestWhaleStaysInBounds(t *testing.T) {
	moves := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for _, size := range []core.Field{{W: 20, H: 15}, {W: 21, H: 16}, {W: 37, H: 40}} {
		p := DefaultParams(size.W, size.H)
		w := newWhale(p)
		rng := rand.New(rand.NewSource(int64(size.W * size.H)))

		for i := 0; i < 5000; i++ {
			w.Move(moves[rng.Intn(len(moves))], p, epoch)
			pos := w.Position()
			if pos.X < 0 || pos.X+GlyphWidth > size.W || pos.X%2 != 0 {
				t.Fatalf("%dx%d step %d: x out of range at %v", size.W, size.H, i, pos)
			}
			if pos.Y < p.ReservedTop || pos.Y >= size.H {
				t.Fatalf("%dx%d step %d: y out of range at %v", size.W, size.H, i, pos)
			}
		}
	}
}

func TestStunnedWhaleIgnoresMoves(t *testing.T) {
	p := DefaultParams(40, 20)
	w := newWhale(p)
	w.Stun(epoch, p.StunDuration)
	start := w.Position()

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if w.Move(a, p, epoch.Add(time.Second)) {
			t.Errorf("stunned whale accepted %v", a)
		}
	}
	if w.Position() != start {
		t.Errorf("stunned whale moved to %v", w.Position())
	}

	if !w.Move(core.ActionRight, p, epoch.Add(p.StunDuration)) {
		t.Error("whale should move once the stun has expired")
	}
}

func TestStunLock(t *testing.T) {
	w := Whale{}
	stun := 2 * time.Second

	w.Stun(epoch, stun)
	second := epoch.Add(1500 * time.Millisecond)
	w.Stun(second, stun)

	if w.Hits() != 2 {
		t.Errorf("Hits = %d, expected 2", w.Hits())
	}
	if want := second.Add(stun); !w.StunnedUntil().Equal(want) {
		t.Errorf("StunnedUntil = %v, expected %v", w.StunnedUntil(), want)
	}
	if !w.Stunned(epoch.Add(3 * time.Second)) {
		t.Error("a second hit should extend the stun")
	}
	if w.Stunned(second.Add(stun)) {
		t.Error("stun should expire exactly at its deadline")
	}
}

func TestBoatCanAdvance(t *testing.T) {
	p := DefaultParams(20, 15)
	tests := []struct {
		x        int
		expected bool
	}{
		{0, true},
		{14, true},
		{16, true},
		{18, false},
	}

	for _, tc := range tests {
		b := Boat{x: tc.x}
		if got := b.canAdvance(p); got != tc.expected {
			t.Errorf("x=%d: canAdvance() = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestHarpoonCanAdvance(t *testing.T) {
	p := DefaultParams(20, 15)

	if !(Harpoon{pos: core.Point{Y: 13}}).canAdvance(p) {
		t.Error("harpoon on row 13 should advance to the last row")
	}
	if (Harpoon{pos: core.Point{Y: 14}}).canAdvance(p) {
		t.Error("harpoon on the last row should not advance")
	}
}
