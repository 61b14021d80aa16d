// whale is a terminal game: a whale swims the sea eating krill while boats
// drop harpoons on it.
//
// Usage:
//
//	whale play               - Play a round in the terminal
//	whale simulate           - Run a headless round with a bot
//	whale scores             - Show the round history
//	whale config             - Print the effective configuration
//	whale bots               - List the simulation bots
//
// Global flags:
//
//	--tick-rate <rate>  - Set tick rate (default: from config, 30)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.whale/rounds.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whale/internal/config"
)

var (
	// Global flags
	flagTickRate int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared by play, simulate and config
	flagConfig string
	flagPreset string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whale",
	Short: "Whale Simulator - eat krill, dodge harpoons",
	Long: `Whale Simulator is a terminal game. You are a whale. Eat as much
krill as you can while boats on the surface drop harpoons on you.
Every harpoon that hits leaves you stunned for a moment.

Available commands:
  play      - Play a round in the terminal
  simulate  - Run a headless round with a bot
  scores    - View the round history
  config    - Print the effective configuration
  bots      - List the simulation bots

Examples:
  whale play
  whale play --preset frantic --round-length 2m
  whale simulate --bot forager
  whale scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "whale",
			Level:           level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(botsCmd)
}

// loadConfig resolves the config file, applies the preset and global
// overrides, and validates the result.
func loadConfig() (config.WhaleConfig, config.Preset, error) {
	cfg, err := config.LoadWhale(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if flagTickRate > 0 {
		cfg.Round.TickRate = flagTickRate
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// resolveSeed returns the --seed flag, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// addConfigFlags registers the flags shared by commands that build a round.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Timing preset: relaxed, normal, frantic")
}
