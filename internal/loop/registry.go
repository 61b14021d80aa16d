package loop

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-whale/internal/core"
)

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	Name        string
	Description string
}

// BotFactory creates a bot. rng is the bot's own stream, separate from
// the engine's.
type BotFactory func(rng core.Rand) Bot

var (
	factories    = make(map[string]BotFactory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

func init() {
	RegisterBot("random", "Presses a random direction every few ticks", func(rng core.Rand) Bot {
		return &RandomWalk{Rng: rng, Every: 3}
	})
	RegisterBot("forager", "Chases the nearest krill and sidesteps falling harpoons", func(core.Rand) Bot {
		return &Forager{Every: 2}
	})
}

// RegisterBot adds a bot factory to the registry.
// Panics if a bot with the same name is already registered.
func RegisterBot(name, description string, f BotFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("loop: bot %q already registered", name))
	}
	factories[name] = f
	descriptions[name] = description
}

// Bots returns all registered bots, sorted by name.
func Bots() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BotInfo{Name: name, Description: descriptions[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// NewBot instantiates a registered bot by name.
func NewBot(name string, rng core.Rand) (Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("loop: unknown bot %q", name)
	}
	return f(rng), nil
}
