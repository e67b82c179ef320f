package experiments

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gridgames/gamelog"
	"gridgames/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestRunDifficultyExperiment(t *testing.T) {
	t.Run("plays and logs every game", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "game_logs.txt")

		table, records, err := RunDifficultyExperiment(
			WithGames(6),
			WithDifficulties(tictactoe.Easy, tictactoe.VeryHard),
			WithLogPath(logPath),
			WithSeed(3),
		)
		require.NoError(t, err)

		require.Len(t, records, 2)
		for _, r := range records {
			require.Equal(t, 6, r.Games)
			require.Equal(t, 6, r.AIWins+r.HumanWins+r.Ties)
		}
		require.Equal(t, 0, records[1].HumanWins, "Very Hard never loses")

		require.Equal(t, []string{"Easy", "Very Hard"}, table.Difficulties)
		require.Equal(t, 6, table.Total("Easy"))
		require.Equal(t, 6, table.Total("Very Hard"))

		logged, err := gamelog.ReadFile(logPath)
		require.NoError(t, err)
		require.Len(t, logged, 12)
	})

	t.Run("skips two player mode", func(t *testing.T) {
		_, records, err := RunDifficultyExperiment(
			WithGames(1),
			WithDifficulties(tictactoe.TwoPlayers, tictactoe.Easy),
			WithLogPath(filepath.Join(t.TempDir(), "log.txt")),
			WithSeed(1),
		)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Easy", records[0].Difficulty)
	})

	t.Run("writes csv results", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "results")

		_, _, err := RunDifficultyExperiment(
			WithGames(2),
			WithDifficulties(tictactoe.Hard),
			WithLogPath(filepath.Join(dir, "log.txt")),
			WithOutputDir(out),
			WithSeed(7),
		)
		require.NoError(t, err)

		runs, err := filepath.Glob(filepath.Join(out, "*", "runs.csv"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		data, err := os.ReadFile(filepath.Join(filepath.Dir(runs[0]), "stats.csv"))
		require.NoError(t, err)
		require.Contains(t, string(data), "difficulty,winner,games,total,percentage")
	})

	t.Run("search metrics are logged when asked for", func(t *testing.T) {
		var buf bytes.Buffer
		logger, level := log.Logger, zerolog.GlobalLevel()
		log.Logger = zerolog.New(&buf)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		defer func() {
			log.Logger = logger
			zerolog.SetGlobalLevel(level)
		}()

		_, _, err := RunDifficultyExperiment(
			WithGames(1),
			WithDifficulties(tictactoe.VeryHard),
			WithLogPath(filepath.Join(t.TempDir(), "log.txt")),
			WithSearchMetrics(),
			WithSeed(2),
		)
		require.NoError(t, err)

		searches := 0
		scanner := bufio.NewScanner(&buf)
		for scanner.Scan() {
			var event struct {
				Message string `json:"message"`
				Nodes   int64  `json:"nodes"`
			}
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
			if event.Message == "minimax picked move" {
				searches++
				require.Positive(t, event.Nodes)
			}
		}
		require.Positive(t, searches)
	})

	t.Run("rejects zero games", func(t *testing.T) {
		_, _, err := RunDifficultyExperiment(WithGames(0))
		require.Error(t, err)
	})
}
