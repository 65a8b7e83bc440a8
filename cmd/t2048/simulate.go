package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/sim"
)

var (
	flagSimGames     int
	flagSimWorkers   int
	flagSimPolicy    string
	flagSimMaxMoves  int
	flagSimStopOnWin bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play a batch of games and report results",
	Long: `Play many games without a terminal UI and summarise the outcome.

Policies:
  auto    - Pick the move leaving the most empty cells, then the most points
  random  - Pick a uniformly random direction

Game i is seeded with --seed + i, so a batch is reproducible regardless
of the number of workers.

Examples:
  t2048 simulate
  t2048 simulate --games 1000 --workers 8
  t2048 simulate --policy random --seed 1
  t2048 simulate --stop-on-win --max-moves 5000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	defaults := sim.DefaultConfig()
	simulateCmd.Flags().IntVarP(&flagSimGames, "games", "n", defaults.Games, "Number of games to play")
	simulateCmd.Flags().IntVarP(&flagSimWorkers, "workers", "w", 0, "Concurrent games (0 = one per CPU)")
	simulateCmd.Flags().StringVar(&flagSimPolicy, "policy", string(defaults.Policy), "Move policy: auto or random")
	simulateCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", defaults.MaxMoves, "Move limit per game")
	simulateCmd.Flags().BoolVar(&flagSimStopOnWin, "stop-on-win", false, "End a game when the winning tile appears")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "t2048-sim")
	if err != nil {
		return err
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	policy, err := sim.ParsePolicy(flagSimPolicy)
	if err != nil {
		return err
	}

	cfg := sim.Config{
		Games:     flagSimGames,
		Workers:   flagSimWorkers,
		Seed:      flagSeed,
		Policy:    policy,
		MaxMoves:  flagSimMaxMoves,
		StopOnWin: flagSimStopOnWin,
		Game:      gameCfg,
		Logger:    logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := sim.Run(ctx, cfg)
	if err != nil {
		return err
	}

	printReport(cmd, cfg, report)
	return nil
}

func printReport(cmd *cobra.Command, cfg sim.Config, r sim.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Simulation - %s policy, seed %d\n", cfg.Policy, cfg.Seed)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Games:       %d\n", r.Games)
	fmt.Fprintf(out, "  Wins:        %d (%.1f%%)\n", r.Wins, 100*r.WinRate())
	fmt.Fprintf(out, "  Best score:  %d\n", r.BestScore)
	fmt.Fprintf(out, "  Mean score:  %.1f\n", r.MeanScore)
	fmt.Fprintf(out, "  Elapsed:     %s\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Max tile distribution:")
	for _, tc := range r.Tiles() {
		bar := strings.Repeat("#", max(1, tc.Games*40/r.Games))
		fmt.Fprintf(out, "  %6d  %5d  %s\n", tc.Tile, tc.Games, bar)
	}
}
