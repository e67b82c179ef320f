package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gridgames/stats"
)

// RunRecord summarises the games played at one difficulty.
type RunRecord struct {
	Difficulty string
	Games      int
	Duration   time.Duration
	AIWins     int
	HumanWins  int
	Ties       int
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"difficulty", "games", "duration", "ai_wins", "human_wins", "ties"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Difficulty,
			strconv.Itoa(record.Games),
			record.Duration.String(),
			strconv.Itoa(record.AIWins),
			strconv.Itoa(record.HumanWins),
			strconv.Itoa(record.Ties),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush run records: %w", err)
	}
	return closeFile(f)
}

func (w *Writer) WriteStats(table *stats.Table) error {
	path := filepath.Join(w.baseDir, "stats.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create stats file: %w", err)
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return closeFile(f)
}

func closeFile(f *os.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.Name(), err)
	}
	return nil
}
