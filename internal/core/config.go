package core

import "time"

// RuntimeConfig contains the session parameters owned by the driver.
// The engine itself only sees the field size; the driver uses the rest
// for pacing and the round timer.
type RuntimeConfig struct {
	ScreenW     int           // Screen width in characters
	ScreenH     int           // Screen height in characters
	TickRate    int           // Simulation ticks per second (default 30)
	RoundLength time.Duration // How long a round lasts before it ends on its own
	Seed        int64         // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    30,
		RoundLength: 10 * time.Minute,
		Seed:        0,
	}
}

// TickInterval returns the time budget of one tick.
// A non-positive tick rate falls back to the default.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
