package core

import (
	"testing"
	"time"
)

func TestInputQueueKeepsOrder(t *testing.T) {
	var q InputQueue
	q.Push(ActionLeft)
	q.Push(ActionNone)
	q.Push(ActionUp)
	q.Push(ActionLeft)

	got := q.Drain()
	want := []Action{ActionLeft, ActionUp, ActionLeft} // ActionNone is dropped
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}

	if q.Drain() != nil {
		t.Error("queue should be empty after Drain")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%v should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%v should not be a move", a)
		}
	}
}

func TestSequenceRand(t *testing.T) {
	r := NewSequenceRand(3, 7, -4)

	if got := r.Intn(10); got != 3 {
		t.Errorf("first = %d, expected 3", got)
	}
	if got := r.Intn(5); got != 2 {
		t.Errorf("second = %d, expected 7 %% 5 = 2", got)
	}
	if got := r.Intn(10); got != 4 {
		t.Errorf("third = %d, expected |-4| = 4", got)
	}
	if got := r.Intn(10); got != 3 {
		t.Errorf("sequence should wrap around, got %d", got)
	}

	if got := NewSequenceRand().Intn(10); got != 0 {
		t.Errorf("empty sequence should yield 0, got %d", got)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("Advance: elapsed = %v, expected 250ms", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set should move the clock back to start")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 20
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickInterval(); got != time.Second/30 {
		t.Errorf("zero tick rate should fall back to 30/s, got %v", got)
	}
}
