package console

import (
	"fmt"
	"strings"

	"gridgames/engine"
	"gridgames/gamelog"
	"gridgames/stats"
	"gridgames/tictactoe"
)

type ticTacToeShell struct {
	session *engine.Session
	log     *gamelog.Writer
}

// NewTicTacToeShell plays on session. writer must be the session's logger;
// the logs command lists its entries and stats reads its file.
func NewTicTacToeShell(session *engine.Session, writer *gamelog.Writer) *Shell {
	t := &ticTacToeShell{session: session, log: writer}

	s := NewShell("tictactoe")
	s.prompt = func() string {
		state := session.State()
		return Prompt(fmt.Sprintf("tictactoe [%s] %s to move", state.Difficulty, MarkText(state.Current)))
	}
	s.Register(&Command{
		Name:        "play",
		ShortName:   "p",
		Description: "Place your mark",
		Usage:       "play <row> <col>",
		Handler:     t.playHandler,
	})
	s.Register(&Command{
		Name:        "reset",
		ShortName:   "n",
		Description: "Start a new game, the other side opens",
		Usage:       "reset",
		Handler:     t.resetHandler,
	})
	s.Register(&Command{
		Name:        "difficulty",
		ShortName:   "d",
		Description: "Show or change the difficulty",
		Usage:       "difficulty [name]",
		Handler:     t.difficultyHandler,
	})
	s.Register(&Command{
		Name:        "logs",
		ShortName:   "l",
		Description: "Show games logged in this run, newest first",
		Usage:       "logs",
		Handler:     t.logsHandler,
	})
	s.Register(&Command{
		Name:        "stats",
		ShortName:   "s",
		Description: "Show win rates by difficulty from the log file",
		Usage:       "stats",
		Handler:     t.statsHandler,
	})
	s.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the board",
		Usage:       "board",
		Handler:     t.boardHandler,
	})
	// A bare "row col" plays
	s.fallback = t.playHandler
	return s
}

func (t *ticTacToeShell) playHandler(args []string) (string, error) {
	row, col, err := parseCell(args, "play <row> <col>")
	if err != nil {
		return "", err
	}

	report := t.session.Click(row, col)
	if !report.Accepted {
		return fmt.Sprintf("(%d, %d) is not a legal move\n", row, col), nil
	}
	return t.describe(report), nil
}

func (t *ticTacToeShell) resetHandler(_ []string) (string, error) {
	return t.describe(t.session.Reset()), nil
}

func (t *ticTacToeShell) difficultyHandler(args []string) (string, error) {
	if len(args) == 0 {
		names := []string{}
		for _, d := range tictactoe.Difficulties() {
			names = append(names, d.String())
		}
		return fmt.Sprintf("Difficulty: %s (choose from %s)\n", t.session.Difficulty(), strings.Join(names, ", ")), nil
	}

	d, err := tictactoe.ParseDifficulty(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	report := t.session.SetDifficulty(d)
	out := fmt.Sprintf("Difficulty set to %s\n", d)
	if len(report.Moves) > 0 {
		out += t.describe(report)
	}
	return out, nil
}

func (t *ticTacToeShell) logsHandler(_ []string) (string, error) {
	entries := t.log.Entries()
	if len(entries) == 0 {
		return "No games logged yet\n", nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String() + "\n")
	}
	return sb.String(), nil
}

func (t *ticTacToeShell) statsHandler(_ []string) (string, error) {
	table, err := stats.FromFile(t.log.Path())
	if err != nil {
		return "", err
	}
	return table.String(), nil
}

func (t *ticTacToeShell) boardHandler(_ []string) (string, error) {
	return RenderTicTacToe(t.session.Board()), nil
}

// describe lists the computer's moves and any finished game, then the board
func (t *ticTacToeShell) describe(report engine.Report) string {
	var sb strings.Builder
	for _, move := range report.Moves {
		if move.Player == tictactoe.O && t.session.Difficulty().HasAI() {
			fmt.Fprintf(&sb, "Computer plays %d %d\n", move.Cell.Row, move.Cell.Col)
		}
		if report.Finished != nil && move.Result.Outcome.IsTerminal() {
			sb.WriteString(RenderTicTacToe(report.Finished.Board))
			if report.Finished.Entry.Winner == gamelog.Tie {
				sb.WriteString(colorize(Yellow, "It's a tie!") + "\n")
			} else {
				sb.WriteString(colorize(Green, fmt.Sprintf("Player %s wins!", report.Finished.Entry.Winner)) + "\n")
			}
			sb.WriteString("New game\n")
		}
	}
	sb.WriteString(RenderTicTacToe(t.session.Board()))
	return sb.String()
}
