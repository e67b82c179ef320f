package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"gridgames/utils"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects how often the AI replaces its best move with a random one.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
	TwoPlayers
)

// Names as they appear in the game log
var difficultyNames = []string{"Easy", "Medium", "Hard", "Very Hard", "Two Players"}

func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, VeryHard, TwoPlayers}
}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty accepts the log names and loose spellings such as "veryhard" or "two-players".
func ParseDifficulty(s string) (Difficulty, error) {
	i := utils.FindIndex(utils.Map(difficultyNames, normalize), normalize(s))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return Difficulty(i), nil
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// RandomChance is the probability that the AI plays a random move instead of
// the minimax one. Very Hard and anything unrecognised always play optimally.
func (d Difficulty) RandomChance() float64 {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 0.5
	case Hard:
		return 0.2
	}
	return 0
}

// HasAI reports whether O is played by the computer.
func (d Difficulty) HasAI() bool {
	return d != TwoPlayers
}
