package experiments

import (
	"fmt"
	"time"

	"gridgames/engine"
	"gridgames/experiments/metrics"
	"gridgames/gamelog"
	"gridgames/meta"
	"gridgames/searcher"
	"gridgames/searcher/agent"
	"gridgames/stats"
	"gridgames/tictactoe"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 30 // Per difficulty

type Config struct {
	Games         int
	Difficulties  []tictactoe.Difficulty
	LogPath       string
	OutputDir     string // CSV results are skipped when empty
	Seed          uint64
	SearchMetrics bool // Node counts and timings in the debug log
}

type Option func(c *Config)

func WithGames(games int) Option {
	return func(c *Config) {
		c.Games = games
	}
}

func WithDifficulties(difficulties ...tictactoe.Difficulty) Option {
	return func(c *Config) {
		c.Difficulties = difficulties
	}
}

func WithLogPath(path string) Option {
	return func(c *Config) {
		c.LogPath = path
	}
}

func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

func WithSearchMetrics() Option {
	return func(c *Config) {
		c.SearchMetrics = true
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// RunDifficultyExperiment pits every difficulty against a human who plays
// random moves. Games are appended to the game log, and the summary of this
// run's games is returned.
func RunDifficultyExperiment(options ...Option) (*stats.Table, []metrics.RunRecord, error) {
	cfg := Config{
		Games:        NumGames,
		Difficulties: []tictactoe.Difficulty{tictactoe.Easy, tictactoe.Medium, tictactoe.Hard, tictactoe.VeryHard},
		LogPath:      meta.LOG_FILE,
		Seed:         uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.Games <= 0 {
		return nil, nil, fmt.Errorf("experiment needs at least one game, got %d", cfg.Games)
	}

	log.Info().Msgf("starting difficulty experiment with %d games per difficulty...", cfg.Games)

	rng := rand.New(rand.NewSource(cfg.Seed))
	minimax := searcher.NewMinimax()
	if cfg.SearchMetrics {
		minimax = searcher.NewMinimax(searcher.WithMetrics())
	}
	writer := gamelog.NewWriter(cfg.LogPath)
	records := []metrics.RunRecord{}
	for i, d := range cfg.Difficulties {
		if !d.HasAI() {
			log.Warn().Msgf("skipping %s, it has no computer player", d)
			continue
		}
		log.Info().Msgf("starting difficulty %d of %d: %s...", i+1, len(cfg.Difficulties), d)

		record := runDifficulty(d, cfg.Games, rng, minimax, writer)
		records = append(records, record)

		log.Info().Msgf("completed %s: AI won %d, human won %d, %d ties in %s",
			d, record.AIWins, record.HumanWins, record.Ties, record.Duration)
	}

	log.Info().Msg("completed difficulty experiment")

	table := stats.Aggregate(writer.Entries())
	if cfg.OutputDir == "" {
		return table, records, nil
	}

	out, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = out.WriteRunRecords(records)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store run records: %w", err)
	}
	err = out.WriteStats(table)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store stats: %w", err)
	}
	log.Info().Msgf("stored experiment results in %s", out.Dir())

	return table, records, nil
}

// runDifficulty plays games at difficulty d on a fresh session
func runDifficulty(d tictactoe.Difficulty, games int, rng *rand.Rand, minimax *searcher.Minimax, writer *gamelog.Writer) metrics.RunRecord {
	session := engine.NewSession(d, engine.WithRand(rng), engine.WithMinimax(minimax), engine.WithLogger(writer))
	human := agent.NewRandomAgent(rng)

	start := time.Now()
	entries := session.Autoplay(human, games)
	record := metrics.RunRecord{
		Difficulty: d.String(),
		Games:      len(entries),
		Duration:   time.Since(start),
	}
	for _, e := range entries {
		switch e.Winner {
		case tictactoe.O.String():
			record.AIWins++
		case tictactoe.X.String():
			record.HumanWins++
		default:
			record.Ties++
		}
	}
	return record
}
