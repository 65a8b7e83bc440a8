// Package sim plays batches of unattended 2048 games and summarises how a
// move policy performs.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Policy chooses the next move of a simulated game.
type Policy string

const (
	PolicyAuto   Policy = "auto"
	PolicyRandom Policy = "random"
)

// DefaultMaxMoves bounds a single game when no limit is configured.
const DefaultMaxMoves = 100_000

// ErrInvalidConfig is returned by Run when the batch cannot be played.
var ErrInvalidConfig = errors.New("sim: invalid config")

// ParsePolicy converts a flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAuto, PolicyRandom:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown policy %q (want auto or random)", ErrInvalidConfig, s)
}

// Config describes a batch of games.
type Config struct {
	Games   int
	Workers int // 0 means one per CPU
	Seed    int64
	Policy  Policy

	// MaxMoves stops a game after this many move attempts.
	MaxMoves int
	// StopOnWin ends a game as soon as the winning tile appears.
	StopOnWin bool

	Game   config.GameConfig
	Logger *log.Logger
}

// DefaultConfig returns a 100 game auto-play batch.
func DefaultConfig() Config {
	return Config{
		Games:    100,
		Policy:   PolicyAuto,
		MaxMoves: DefaultMaxMoves,
		Game:     config.DefaultGameConfig(),
	}
}

func (c Config) validate() error {
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.MaxMoves < 0 {
		return fmt.Errorf("%w: max moves must not be negative, got %d", ErrInvalidConfig, c.MaxMoves)
	}
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}

// Result is the outcome of one game.
type Result struct {
	Index   int
	Seed    int64
	Score   int
	MaxTile int
	Moves   int
	Won     bool
}

// TileCount is one bucket of the max-tile histogram.
type TileCount struct {
	Tile  int
	Games int
}

// Report aggregates a batch.
type Report struct {
	Games     int
	Wins      int
	BestScore int
	MeanScore float64
	Elapsed   time.Duration

	// Results is ordered by game index regardless of scheduling.
	Results []Result
}

// WinRate returns the fraction of games that reached the winning tile.
func (r Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Tiles returns how many games ended on each max tile, highest first.
func (r Report) Tiles() []TileCount {
	counts := make(map[int]int)
	for _, res := range r.Results {
		counts[res.MaxTile]++
	}

	out := make([]TileCount, 0, len(counts))
	for tile, n := range counts {
		out = append(out, TileCount{Tile: tile, Games: n})
	}
	slices.SortFunc(out, func(a, b TileCount) int { return b.Tile - a.Tile })
	return out
}

// Run plays cfg.Games games across cfg.Workers goroutines. Game i is seeded
// with cfg.Seed+i and owns its engine, so the report does not depend on the
// worker count. Cancelling ctx stops outstanding games and returns ctx's error.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("simulation started",
		"games", cfg.Games,
		"workers", workers,
		"policy", cfg.Policy,
		"seed", cfg.Seed,
	)
	start := time.Now()

	results := make([]Result, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := Play(gctx, cfg.Seed+int64(i), cfg)
			if err != nil {
				return err
			}
			res.Index = i
			results[i] = res
			logger.Debug("game finished",
				"game", i,
				"score", res.Score,
				"max_tile", res.MaxTile,
				"moves", res.Moves,
				"won", res.Won,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}

	report := summarize(results)
	report.Elapsed = time.Since(start)

	logger.Info("simulation finished",
		"wins", report.Wins,
		"best_score", report.BestScore,
		"mean_score", report.MeanScore,
		"elapsed", report.Elapsed,
	)
	return report, nil
}

// Play runs a single game to completion with the given seed.
func Play(ctx context.Context, seed int64, cfg Config) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	engine := t2048.NewEngine(rng, t2048.EngineOptions(cfg.Game)...)

	maxMoves := cfg.MaxMoves
	if maxMoves == 0 {
		maxMoves = DefaultMaxMoves
	}

	for engine.CanMove() && engine.Moves() < maxMoves {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if cfg.StopOnWin && engine.MaxTile() >= cfg.Game.WinningValue {
			break
		}

		switch cfg.Policy {
		case PolicyRandom:
			engine.RandomMove()
		default:
			engine.AutoMove()
		}
	}

	return Result{
		Seed:    seed,
		Score:   engine.Score(),
		MaxTile: engine.MaxTile(),
		Moves:   engine.Moves(),
		Won:     engine.MaxTile() >= cfg.Game.WinningValue,
	}, nil
}

func summarize(results []Result) Report {
	report := Report{
		Games:   len(results),
		Results: results,
	}

	total := 0
	for _, res := range results {
		total += res.Score
		report.BestScore = max(report.BestScore, res.Score)
		if res.Won {
			report.Wins++
		}
	}
	if report.Games > 0 {
		report.MeanScore = float64(total) / float64(report.Games)
	}
	return report
}
