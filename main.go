package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gridgames/console"
	"gridgames/engine"
	"gridgames/experiments"
	"gridgames/gamelog"
	"gridgames/meta"
	"gridgames/minesweeper"
	"gridgames/searcher"
	"gridgames/stats"
	"gridgames/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: gridgames <command> [flags]

commands:
  minesweeper   play minesweeper in the terminal
  tictactoe     play tic-tac-toe against the computer or a friend
  stats         show win rates by difficulty from the game log
  experiment    play the computer against a random human at each difficulty
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "minesweeper":
		err = runMinesweeper(os.Args[2:])
	case "tictactoe":
		err = runTicTacToe(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "experiment":
		err = runExperiment(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msgf("%s failed", os.Args[1])
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

func runMinesweeper(args []string) error {
	fs := flag.NewFlagSet("minesweeper", flag.ExitOnError)
	rows := fs.Int("rows", meta.ROWS, "Board height")
	cols := fs.Int("cols", meta.COLS, "Board width")
	mines := fs.Int("mines", meta.MINES, "Number of mines")
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	shell, err := console.NewMinesweeperShell(minesweeper.Config{Rows: *rows, Cols: *cols, Mines: *mines})
	if err != nil {
		return err
	}
	return console.Run(shell, ".minesweeper_history")
}

func runTicTacToe(args []string) error {
	fs := flag.NewFlagSet("tictactoe", flag.ExitOnError)
	difficulty := fs.String("difficulty", meta.DIFFICULTY, "Easy, Medium, Hard, Very Hard or Two Players")
	logFile := fs.String("log", meta.LOG_FILE, "Game log file")
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	d, err := tictactoe.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}

	writer := gamelog.NewWriter(*logFile)
	options := []engine.Option{engine.WithLogger(writer)}
	if *verbose {
		options = append(options, engine.WithMinimax(searcher.NewMinimax(searcher.WithMetrics())))
	}
	session := engine.NewSession(d, options...)
	log.Debug().Str("session", session.ID()).Str("log", *logFile).Msg("starting tic-tac-toe")
	return console.Run(console.NewTicTacToeShell(session, writer), ".tictactoe_history")
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	logFile := fs.String("log", meta.LOG_FILE, "Game log file")
	asCSV := fs.Bool("csv", false, "Write CSV instead of a table")
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	table, err := stats.FromFile(*logFile)
	if err != nil {
		return err
	}
	if *asCSV {
		return table.WriteCSV(os.Stdout)
	}
	fmt.Print(table.String())
	return nil
}

func runExperiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	games := fs.Int("games", experiments.NumGames, "Games per difficulty")
	logFile := fs.String("log", meta.LOG_FILE, "Game log file")
	out := fs.String("out", "", "Directory for CSV results")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)
	setupLogging(*verbose)

	options := []experiments.Option{
		experiments.WithGames(*games),
		experiments.WithLogPath(*logFile),
		experiments.WithOutputDir(*out),
		experiments.WithSeed(*seed),
	}
	if *verbose {
		options = append(options, experiments.WithSearchMetrics())
	}
	table, _, err := experiments.RunDifficultyExperiment(options...)
	if err != nil {
		return err
	}
	fmt.Print(table.String())
	return nil
}
