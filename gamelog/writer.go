package gamelog

import (
	"fmt"
	"os"
	"sort"
)

// Writer appends entries to the game log file and remembers the ones written
// during this run.
type Writer struct {
	path    string
	entries []Entry
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

// Append adds a line to the end of the log. The file is created if needed
// and never rewritten.
func (w *Writer) Append(entry Entry) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open game log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, entry.String()); err != nil {
		return fmt.Errorf("failed to write game log entry: %w", err)
	}

	w.entries = append(w.entries, entry)
	return nil
}

// Entries returns the games logged by this writer, newest first.
func (w *Writer) Entries() []Entry {
	entries := make([]Entry, len(w.entries))
	copy(entries, w.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
