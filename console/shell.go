package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var ErrUsage = errors.New("usage")

type Handler func(args []string) (string, error)

// Command defines a shell command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     Handler
}

// Shell dispatches input lines to registered commands. Lines whose first
// word is not a command go to the fallback handler when one is set.
type Shell struct {
	name     string
	commands map[string]*Command
	fallback Handler
	prompt   func() string
}

func NewShell(name string) *Shell {
	s := &Shell{
		name:     name,
		commands: make(map[string]*Command),
	}
	s.prompt = func() string { return Prompt(s.name) }

	s.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help",
		Handler:     s.helpHandler,
	})
	return s
}

func (s *Shell) Register(cmd *Command) {
	s.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		s.commands[cmd.ShortName] = cmd
	}
}

func (s *Shell) Name() string   { return s.name }
func (s *Shell) Prompt() string { return s.prompt() }

// Execute runs one line of input. quit is true for exit, quit, q or x.
func (s *Shell) Execute(line string) (output string, quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", false
	}

	switch strings.ToLower(parts[0]) {
	case "exit", "quit", "q", "x":
		return "", true
	}

	handler := s.fallback
	args := parts
	if cmd, ok := s.commands[strings.ToLower(parts[0])]; ok {
		handler = cmd.Handler
		args = parts[1:]
	} else if handler == nil {
		return colorize(Red, fmt.Sprintf("unknown command: %s (type 'help' for commands)", parts[0])) + "\n", false
	}

	out, err := handler(args)
	if errors.Is(err, ErrUsage) {
		return colorize(Red, err.Error()) + "\n", false
	}
	if err != nil {
		return colorize(Red, "error: "+err.Error()) + "\n", false
	}
	return out, false
}

func (s *Shell) helpHandler(_ []string) (string, error) {
	seen := map[*Command]bool{}
	cmds := []*Command{}
	for _, cmd := range s.commands {
		if !seen[cmd] {
			seen[cmd] = true
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	var sb strings.Builder
	sb.WriteString(colorize(Cyan, "Commands:") + "\n")
	for _, cmd := range cmds {
		name := cmd.Name
		if cmd.ShortName != "" {
			name += ", " + cmd.ShortName
		}
		fmt.Fprintf(&sb, "  %-14s %-24s %s\n", name, cmd.Usage, cmd.Description)
	}
	sb.WriteString("  quit, q        quit                     Leave the game\n")
	return sb.String(), nil
}

// parseCell reads "row col" from the first two arguments
func parseCell(args []string, usage string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s (row must be a number)", ErrUsage, usage)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s (column must be a number)", ErrUsage, usage)
	}
	return row, col, nil
}
