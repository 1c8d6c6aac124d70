// Command play is an interactive console for exploring the rules engine:
// set up positions, list legal moves, play moves and inspect the outcome.
//
// On a terminal it offers line editing and history; with piped input it reads
// one command per line, which makes it usable from scripts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	history := flag.String("history", ".chess_rules_history", "History file for interactive sessions (empty disables)")
	fen := flag.String("fen", "", "Start from this FEN instead of the initial position")
	flag.Parse()

	s := newSession(os.Stdout)
	if *fen != "" {
		s.setPosition(append([]string{"fen"}, strings.Fields(*fen)...))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runScript(s, os.Stdin)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rules> ",
		HistoryFile:     *history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("Type 'help' for commands\n\n")
	for {
		rl.SetPrompt(fmt.Sprintf("rules [%s]> ", s.game.TeamTurn()))
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if s.execute(line) {
			break
		}
	}
}

// runScript executes commands from r until EOF or quit.
func runScript(s *session, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.execute(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
