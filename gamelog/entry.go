package gamelog

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the date and time format at the start of each line.
const TimestampLayout = "2006-01-02 15:04:05"

const Tie = "Tie"

var ErrMalformedLine = errors.New("malformed game log line")

var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2}) - Difficulty: ([\w\s]+) - Winner: (\w+) - First Player: (\w+)`)

// Entry is one finished tic-tac-toe game.
type Entry struct {
	Timestamp   time.Time
	Difficulty  string
	Winner      string // "X", "O" or "Tie"
	FirstPlayer string // "X" or "O"
}

// String formats the entry as a log line without the trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("%s - Difficulty: %s - Winner: %s - First Player: %s",
		e.Timestamp.Format(TimestampLayout), e.Difficulty, e.Winner, e.FirstPlayer)
}

func (e Entry) Date() string  { return e.Timestamp.Format("2006-01-02") }
func (e Entry) Clock() string { return e.Timestamp.Format("15:04:05") }

// Parse reads a log line. Anything after the first player field is ignored.
func Parse(line string) (Entry, error) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	ts, err := time.ParseInLocation(TimestampLayout, match[1]+" "+match[2], time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad timestamp: %w", ErrMalformedLine, err)
	}

	return Entry{
		Timestamp:   ts,
		Difficulty:  match[3],
		Winner:      match[4],
		FirstPlayer: match[5],
	}, nil
}
