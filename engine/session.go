package engine

import (
	"time"

	"gridgames/game"
	"gridgames/gamelog"
	"gridgames/meta"
	"gridgames/searcher"
	"gridgames/searcher/agent"
	"gridgames/tictactoe"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Logger records finished games. *gamelog.Writer implements it.
type Logger interface {
	Append(entry gamelog.Entry) error
}

type Option func(s *Session)

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithMinimax(m *searcher.Minimax) Option {
	return func(s *Session) {
		s.minimax = m
	}
}

// WithLogger sends finished games to logger instead of the default log file.
func WithLogger(logger Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Move is one mark placed during a call into the session.
type Move struct {
	Player tictactoe.Mark
	Cell   game.Cell
	Result tictactoe.Result
}

// Finish describes a game that ended during a call. Board is the final
// position before the table was reset.
type Finish struct {
	Entry gamelog.Entry
	Board tictactoe.Board
}

// Report lists what happened in response to a click or a reset, in order.
type Report struct {
	Accepted bool
	Moves    []Move
	Finished *Finish
}

// Snapshot is the state a front-end needs to draw the table.
type Snapshot struct {
	ID          string
	Board       tictactoe.Board
	Current     tictactoe.Mark
	FirstPlayer tictactoe.Mark
	Difficulty  tictactoe.Difficulty
	Status      tictactoe.Status
}

// Session is a tic-tac-toe table shared by a human playing X and either the
// computer or a second human playing O. Finished games are logged and the
// board is reset straight away, alternating who opens.
type Session struct {
	id         string
	game       *tictactoe.Engine
	difficulty tictactoe.Difficulty
	agent      agent.Agent
	rng        *rand.Rand
	minimax    *searcher.Minimax
	logger     Logger
	now        func() time.Time
}

func NewSession(difficulty tictactoe.Difficulty, options ...Option) *Session {
	s := &Session{
		id:   uuid.New().String(),
		game: tictactoe.NewEngine(),
		now:  time.Now,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if s.minimax == nil {
		s.minimax = searcher.NewMinimax()
	}
	if s.logger == nil {
		s.logger = gamelog.NewWriter(meta.LOG_FILE)
	}
	s.difficulty = difficulty
	s.agent = agent.NewDifficultyAgent(difficulty, s.rng, s.minimax)

	log.Debug().Str("session", s.id).Str("difficulty", difficulty.String()).Msg("session created")
	return s
}

// SetDifficulty changes the opponent for the game in progress. When the
// computer takes over O while O is to move, it plays straight away.
func (s *Session) SetDifficulty(d tictactoe.Difficulty) Report {
	s.difficulty = d
	s.agent = agent.NewDifficultyAgent(d, s.rng, s.minimax)

	report := Report{Accepted: true}
	s.settle(&report)
	return report
}

// Click plays the current player's mark on (row, col), then lets the
// computer answer. It is ignored while the computer is to move, or when the
// engine rejects the move.
func (s *Session) Click(row, col int) Report {
	if s.aiTurn() {
		return Report{}
	}

	player := s.game.CurrentPlayer()
	result, ok := s.game.ApplyMove(row, col, player)
	if !ok {
		return Report{}
	}

	report := Report{Accepted: true}
	report.Moves = append(report.Moves, Move{Player: player, Cell: game.Cell{Row: row, Col: col}, Result: result})
	s.settle(&report)
	return report
}

// Reset abandons the current game without logging it. The side that opens
// alternates, and the computer moves at once when it opens.
func (s *Session) Reset() Report {
	s.game.Reset()
	report := Report{Accepted: true}
	s.settle(&report)
	return report
}

// settle runs until the human is to move on a game in progress
func (s *Session) settle(report *Report) {
	for {
		if s.game.IsOver() {
			report.Finished = s.finish()
			s.game.Reset()
			continue
		}
		if !s.aiTurn() {
			return
		}
		report.Moves = append(report.Moves, s.playAI())
	}
}

func (s *Session) aiTurn() bool {
	return s.difficulty.HasAI() && !s.game.IsOver() && s.game.CurrentPlayer() == tictactoe.O
}

func (s *Session) playAI() Move {
	board := s.game.Board()
	cell, ok := s.agent.FindMove(board, tictactoe.O)
	if !ok {
		panic("no move for the computer on a game still in progress")
	}
	result, ok := s.game.ApplyMove(cell.Row, cell.Col, tictactoe.O)
	if !ok {
		panic("computer chose an illegal move")
	}
	return Move{Player: tictactoe.O, Cell: cell, Result: result}
}

func (s *Session) finish() *Finish {
	winner := gamelog.Tie
	if s.game.Status() == tictactoe.Won {
		winner = s.game.Winner().String()
	}
	entry := gamelog.Entry{
		Timestamp:   s.now().Truncate(time.Second),
		Difficulty:  s.difficulty.String(),
		Winner:      winner,
		FirstPlayer: s.game.FirstPlayer().String(),
	}

	if err := s.logger.Append(entry); err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("failed to record game")
	}
	log.Debug().
		Str("session", s.id).
		Str("difficulty", entry.Difficulty).
		Str("winner", entry.Winner).
		Msg("game finished")

	return &Finish{Entry: entry, Board: s.game.Board()}
}

// Autoplay lets human choose X's moves, and O's too when there is no
// computer opponent, until games have finished.
func (s *Session) Autoplay(human agent.Agent, games int) []gamelog.Entry {
	entries := []gamelog.Entry{}
	maxTurns := games * meta.MAX_TURNS
	for turn := 1; len(entries) < games; turn++ {
		if turn > maxTurns {
			log.Warn().Str("session", s.id).Msgf("stopped after %d turns with %d of %d games played", maxTurns, len(entries), games)
			break
		}

		cell, ok := human.FindMove(s.game.Board(), s.game.CurrentPlayer())
		if !ok {
			panic("no move for the human on a game still in progress")
		}
		report := s.Click(cell.Row, cell.Col)
		if !report.Accepted {
			panic("human agent chose an illegal move")
		}
		if report.Finished != nil {
			entries = append(entries, report.Finished.Entry)
		}
	}
	return entries
}

func (s *Session) ID() string                       { return s.id }
func (s *Session) Difficulty() tictactoe.Difficulty { return s.difficulty }
func (s *Session) Board() tictactoe.Board           { return s.game.Board() }

func (s *Session) State() Snapshot {
	return Snapshot{
		ID:          s.id,
		Board:       s.game.Board(),
		Current:     s.game.CurrentPlayer(),
		FirstPlayer: s.game.FirstPlayer(),
		Difficulty:  s.difficulty,
		Status:      s.game.Status(),
	}
}
