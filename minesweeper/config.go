package minesweeper

import (
	"errors"
	"fmt"
	"strings"

	"gridgames/meta"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidConfig = errors.New("invalid minesweeper config")
	ErrTooManyMines  = errors.New("too many mines for board")
	ErrInvalidLayout = errors.New("invalid mine layout")
)

var validate = validator.New()

// Config sizes a minesweeper game.
type Config struct {
	Rows  int `validate:"min=1,max=100"`
	Cols  int `validate:"min=1,max=100"`
	Mines int `validate:"min=0"`
}

func DefaultConfig() Config {
	return Config{Rows: meta.ROWS, Cols: meta.COLS, Mines: meta.MINES}
}

// Validate rejects boards that cannot be played. Mine placement needs at least
// one free cell, otherwise it would never finish.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		var details strings.Builder
		for _, fe := range errs {
			if details.Len() > 0 {
				details.WriteString("; ")
			}
			switch fe.Tag() {
			case "min":
				fmt.Fprintf(&details, "%s must be at least %s", fe.Field(), fe.Param())
			case "max":
				fmt.Fprintf(&details, "%s must be at most %s", fe.Field(), fe.Param())
			default:
				fmt.Fprintf(&details, "%s failed %s validation", fe.Field(), fe.Tag())
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, details.String())
	}
	if c.Mines >= c.Rows*c.Cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrTooManyMines, c.Mines, c.Rows, c.Cols)
	}
	return nil
}

// SafeCells is the number of cells that must be revealed to win.
func (c Config) SafeCells() int {
	return c.Rows*c.Cols - c.Mines
}
