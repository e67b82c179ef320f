// meta/meta.go
package meta

// ROWS defines the default minesweeper board height.
const ROWS = 10

// COLS defines the default minesweeper board width.
const COLS = 10

// MINES defines the default number of mines.
const MINES = 10

// LOG_FILE defines the default path of the tic-tac-toe game log.
const LOG_FILE = "game_logs.txt"

// DIFFICULTY defines the difficulty selected when none is given.
const DIFFICULTY = "Medium"

// MAX_TURNS caps the clicks per game in automated play. Two players fill
// the 3x3 board in at most 9 clicks.
const MAX_TURNS = 9
