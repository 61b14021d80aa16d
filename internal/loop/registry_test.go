package loop

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-whale/internal/core"
)

func TestBuiltinBots(t *testing.T) {
	bots := Bots()
	if len(bots) < 2 {
		t.Fatalf("expected at least 2 bots, got %d", len(bots))
	}
	for i := 1; i < len(bots); i++ {
		if bots[i-1].Name >= bots[i].Name {
			t.Errorf("Bots() not sorted: %q before %q", bots[i-1].Name, bots[i].Name)
		}
	}

	tests := []struct {
		name     string
		expected string
	}{
		{"random", "*loop.RandomWalk"},
		{"forager", "*loop.Forager"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bot, err := NewBot(tc.name, core.NewRand(1))
			if err != nil {
				t.Fatalf("NewBot(%q) failed: %v", tc.name, err)
			}
			if got := fmt.Sprintf("%T", bot); got != tc.expected {
				t.Errorf("NewBot(%q) = %s, expected %s", tc.name, got, tc.expected)
			}
		})
	}
}

func TestNewBotUnknown(t *testing.T) {
	if _, err := NewBot("orca", core.NewRand(1)); err == nil {
		t.Error("expected an error for an unknown bot")
	}
}

func TestRegisterBotDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate bot should panic")
		}
	}()
	RegisterBot("random", "again", func(core.Rand) Bot { return BotFunc(nil) })
}
