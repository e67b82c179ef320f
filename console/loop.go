package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Run reads commands for shell until quit or end of input.
func Run(shell *Shell, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shell.Prompt(),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s%s%s\n", Cyan, strings.ToUpper(shell.Name()[:1])+shell.Name()[1:], Reset)
	fmt.Fprintf(rl.Stdout(), "Type 'help' for commands\n\n")
	if out, _ := shell.Execute("board"); out != "" {
		fmt.Fprint(rl.Stdout(), out)
	}

	for {
		rl.SetPrompt(shell.Prompt())

		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err == readline.ErrInterrupt {
			if line == "" {
				return nil
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		out, quit := shell.Execute(strings.TrimSpace(line))
		if quit {
			return nil
		}
		fmt.Fprint(rl.Stdout(), out)
	}
}
