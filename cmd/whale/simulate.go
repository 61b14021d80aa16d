package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whale/internal/core"
	"github.com/vovakirdan/tui-whale/internal/loop"
	"github.com/vovakirdan/tui-whale/internal/platform/tui"
	"github.com/vovakirdan/tui-whale/internal/storage"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

var (
	flagBot      string
	flagWidth    int
	flagHeight   int
	flagRealtime bool
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless round with a bot",
	Long: `Run a round without a terminal UI. A bot supplies the input.

By default the round runs on a simulated clock and finishes as fast as the
CPU allows. Use --realtime to pace ticks against the wall clock instead.

Run 'whale bots' to see the available bots.

Examples:
  whale simulate
  whale simulate --bot forager --seed 7 --log-level debug
  whale simulate --width 120 --height 40 --round-length 30m
  whale simulate --realtime --round-length 20s`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addConfigFlags(simulateCmd)
	simulateCmd.Flags().StringVar(&flagBot, "bot", "random", "Bot to play the round (see whale bots)")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Field width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Field height")
	simulateCmd.Flags().DurationVar(&flagRoundLength, "round-length", 0, "Round length (0 = from config)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks against the wall clock")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the round in the history")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:     flagWidth,
		ScreenH:     flagHeight,
		TickRate:    cfg.Round.TickRate,
		RoundLength: cfg.RoundLength(),
		Seed:        resolveSeed(),
	}
	if flagRoundLength > 0 {
		rc.RoundLength = flagRoundLength
	}

	var (
		clock core.Clock
		wait  loop.WaitFunc
	)
	if flagRealtime {
		clock, wait = core.SystemClock{}, loop.Sleep
	} else {
		manual := core.NewManualClock(time.Now())
		clock, wait = manual, loop.Advance(manual)
	}

	rng := core.NewRand(rc.Seed)
	engine, err := whale.New(cfg.Params(rc.ScreenW, rc.ScreenH), clock, rng)
	if err != nil {
		return err
	}

	bot, err := loop.NewBot(flagBot, core.NewRand(rc.Seed+1))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating",
		"bot", flagBot,
		"field", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
		"preset", preset,
		"seed", rc.Seed,
		"length", rc.RoundLength,
		"realtime", flagRealtime,
	)

	report, runErr := loop.Run(ctx, engine, loop.NewPacer(rc.TickInterval(), clock), loop.Options{
		Bot:         bot,
		RoundLength: rc.RoundLength,
		Wait:        wait,
		Logger:      logger,
	})
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	if flagSave {
		if store, err := storage.Open(flagDBPath); err != nil {
			logger.Warn("could not open round history", "error", err)
		} else {
			saveRound(store, report, preset, rc)
			store.Close()
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report, nil))
	return nil
}
