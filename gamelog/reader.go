package gamelog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// ReadFile loads every well-formed entry of the log at path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open game log %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses log lines from r, skipping lines that do not match the format.
func Read(r io.Reader) ([]Entry, error) {
	entries := []Entry{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, err := Parse(scanner.Text())
		if err != nil {
			log.Debug().Int("line", lineNo).Msg("skipping malformed game log line")
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game log: %w", err)
	}
	return entries, nil
}
