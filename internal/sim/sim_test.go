package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Games = 12
	cfg.Workers = 4
	cfg.Seed = 7
	cfg.MaxMoves = 200
	return cfg
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	cfg := smallConfig()
	parallel, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 1
	serial, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, serial.Results, parallel.Results)
	require.Equal(t, serial.BestScore, parallel.BestScore)
	require.Equal(t, serial.MeanScore, parallel.MeanScore)
}

func TestRunSeedsGamesByIndex(t *testing.T) {
	cfg := smallConfig()
	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, cfg.Games)

	for i, res := range report.Results {
		require.Equal(t, i, res.Index)
		require.Equal(t, cfg.Seed+int64(i), res.Seed)

		single, err := Play(context.Background(), res.Seed, cfg)
		require.NoError(t, err)
		require.Equal(t, res.Score, single.Score)
		require.Equal(t, res.MaxTile, single.MaxTile)
	}
}

func TestRunMoveLimit(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxMoves = 5

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	for _, res := range report.Results {
		// Five moves cannot fill a fresh board.
		require.Equal(t, 5, res.Moves)
	}
}

func TestRunStopOnWin(t *testing.T) {
	for _, policy := range []Policy{PolicyAuto, PolicyRandom} {
		t.Run(string(policy), func(t *testing.T) {
			cfg := smallConfig()
			cfg.Policy = policy
			cfg.MaxMoves = 0
			cfg.StopOnWin = true
			cfg.Game.WinningValue = 8

			report, err := Run(context.Background(), cfg)
			require.NoError(t, err)

			wins := 0
			for _, res := range report.Results {
				if res.Won {
					wins++
					// The game stops on the move that first produced the 8.
					require.Equal(t, 8, res.MaxTile)
				}
			}
			require.Equal(t, wins, report.Wins)
			require.Positive(t, report.Wins)
		})
	}
}

func TestRunSummary(t *testing.T) {
	cfg := smallConfig()
	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, cfg.Games, report.Games)

	total, best, tiles := 0, 0, 0
	for _, res := range report.Results {
		total += res.Score
		best = max(best, res.Score)
	}
	require.Equal(t, best, report.BestScore)
	require.InDelta(t, float64(total)/float64(cfg.Games), report.MeanScore, 1e-9)

	buckets := report.Tiles()
	for i, b := range buckets {
		tiles += b.Games
		if i > 0 {
			require.Less(t, b.Tile, buckets[i-1].Tile)
		}
	}
	require.Equal(t, cfg.Games, tiles)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no games", func(c *Config) { c.Games = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative move limit", func(c *Config) { c.MaxMoves = -1 }},
		{"unknown policy", func(c *Config) { c.Policy = "greedy" }},
		{"bad winning value", func(c *Config) { c.Game.WinningValue = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig()
			tt.modify(&cfg)

			_, err := Run(context.Background(), cfg)
			require.Error(t, err)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("random")
	require.NoError(t, err)
	require.Equal(t, PolicyRandom, p)

	_, err = ParsePolicy("expectimax")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
