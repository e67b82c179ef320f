package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"gridgames/gamelog"
)

// Table is a pivot of game counts with one row per winner and one column per
// difficulty. Percentages are relative to the games played at that difficulty.
type Table struct {
	Difficulties []string
	Winners      []string
	counts       map[string]map[string]int // difficulty -> winner -> games
	totals       map[string]int
}

func Aggregate(entries []gamelog.Entry) *Table {
	t := &Table{
		counts: map[string]map[string]int{},
		totals: map[string]int{},
	}
	winners := map[string]bool{}
	for _, e := range entries {
		if t.counts[e.Difficulty] == nil {
			t.counts[e.Difficulty] = map[string]int{}
			t.Difficulties = append(t.Difficulties, e.Difficulty)
		}
		t.counts[e.Difficulty][e.Winner]++
		t.totals[e.Difficulty]++
		if !winners[e.Winner] {
			winners[e.Winner] = true
			t.Winners = append(t.Winners, e.Winner)
		}
	}
	sort.Strings(t.Difficulties)
	sort.Strings(t.Winners)
	return t
}

func (t *Table) Count(difficulty, winner string) int { return t.counts[difficulty][winner] }
func (t *Table) Total(difficulty string) int         { return t.totals[difficulty] }
func (t *Table) Empty() bool                         { return len(t.Difficulties) == 0 }

// Percentage of the games at difficulty won by winner, 0 when none were played.
func (t *Table) Percentage(difficulty, winner string) float64 {
	total := t.totals[difficulty]
	if total == 0 {
		return 0
	}
	return float64(t.Count(difficulty, winner)) / float64(total) * 100
}

// Cell formats a count with its percentage, e.g. "2 (66.67%)" or "1 (50.0%)".
func (t *Table) Cell(difficulty, winner string) string {
	return fmt.Sprintf("%d (%s%%)", t.Count(difficulty, winner), formatPercent(t.Percentage(difficulty, winner)))
}

// formatPercent rounds to two decimals and always keeps a fractional part
func formatPercent(p float64) string {
	s := strconv.FormatFloat(math.Round(p*100)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (t *Table) String() string {
	if t.Empty() {
		return "no games recorded\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Winner\t%s\n", strings.Join(t.Difficulties, "\t"))
	for _, winner := range t.Winners {
		cells := make([]string, len(t.Difficulties))
		for i, d := range t.Difficulties {
			cells[i] = t.Cell(d, winner)
		}
		fmt.Fprintf(w, "%s\t%s\n", winner, strings.Join(cells, "\t"))
	}
	totals := make([]string, len(t.Difficulties))
	for i, d := range t.Difficulties {
		totals[i] = strconv.Itoa(t.Total(d))
	}
	fmt.Fprintf(w, "Total\t%s\n", strings.Join(totals, "\t"))
	w.Flush()
	return sb.String()
}

// WriteCSV writes one row per difficulty and winner pair.
func (t *Table) WriteCSV(out io.Writer) error {
	writer := csv.NewWriter(out)

	header := []string{"difficulty", "winner", "games", "total", "percentage"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write stats header: %w", err)
	}

	for _, d := range t.Difficulties {
		for _, winner := range t.Winners {
			row := []string{
				d,
				winner,
				strconv.Itoa(t.Count(d, winner)),
				strconv.Itoa(t.Total(d)),
				strconv.FormatFloat(t.Percentage(d, winner), 'f', 2, 64),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write stats row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush stats: %w", err)
	}
	return nil
}

// FromFile aggregates the game log at path.
func FromFile(path string) (*Table, error) {
	entries, err := gamelog.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Aggregate(entries), nil
}
