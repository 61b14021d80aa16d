package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-whale/internal/config"
	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/platform/tui"
	"github.com/vovakirdan/tui-whale/internal/storage"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

var (
	flagRoundLength time.Duration
	flagNoSave      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in the terminal. The field fills the whole window.

Controls:
  Arrows / WASD / HJKL  - Swim
  Ctrl+S                - Save a screenshot to ~/.whale/screenshots
  Q / Esc / Ctrl+C      - Quit

Presets:
  relaxed  - Slower boats, shorter stuns
  normal   - The classic timings
  frantic  - Fast boats and a rain of harpoons

Examples:
  whale play
  whale play --round-length 90s
  whale play --preset frantic --seed 42
  whale play --config ./my-whale.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().DurationVar(&flagRoundLength, "round-length", 0, "Round length (0 = from config)")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the round in the history")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height - tui.FooterHeight,
		TickRate:    cfg.Round.TickRate,
		RoundLength: cfg.RoundLength(),
		Seed:        resolveSeed(),
	}
	if flagRoundLength > 0 {
		rc.RoundLength = flagRoundLength
	}

	engine, err := whale.New(cfg.Params(rc.ScreenW, rc.ScreenH), core.SystemClock{}, core.NewRand(rc.Seed))
	if errors.Is(err, whale.ErrFieldTooSmall) {
		return fmt.Errorf("terminal too small: %w", err)
	}
	if err != nil {
		return err
	}
	logger.Debug("starting round",
		"field", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
		"preset", preset,
		"seed", rc.Seed,
		"tick_rate", rc.TickRate,
		"length", rc.RoundLength,
	)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		// Continue without storage - the round still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var best *storage.RoundEntry
	if store != nil {
		if best, err = store.BestRound(); err != nil {
			logger.Warn("could not read best round", "error", err)
		}
	}

	report, runErr := tui.Run(engine, tui.Options{
		Clock:         core.SystemClock{},
		TickInterval:  rc.TickInterval(),
		RoundLength:   rc.RoundLength,
		ScreenshotDir: config.UserPath("screenshots"),
		Logger:        logger,
	})
	if runErr != nil {
		return fmt.Errorf("running round: %w", runErr)
	}

	if store != nil && !flagNoSave {
		saveRound(store, report, preset, rc)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report, best))
	return nil
}

// saveRound records a finished round. Failures are logged, never fatal.
func saveRound(store *storage.Store, r whale.Report, preset config.Preset, rc core.RuntimeConfig) {
	id, err := store.SaveRound(storage.RoundEntry{
		Collected: r.Collected,
		Hits:      r.Hits,
		Ticks:     r.Ticks,
		Duration:  r.Duration,
		Preset:    string(preset),
		Seed:      rc.Seed,
		FieldW:    rc.ScreenW,
		FieldH:    rc.ScreenH,
	})
	if err != nil {
		logger.Warn("could not save round", "error", err)
		return
	}
	logger.Info("round saved", "id", id, "krill", r.Collected, "hits", r.Hits)
}
