package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"chess-rules/rules"
)

const helpText = `commands:
  board                      show the board
  fen                        show the FEN of the current record
  moves [square]             list legal moves, for one square or the side to move
  move <e2e4|json>           play a move in coordinate form or as a JSON move
  json <e2e4>                show the JSON encoding of a move
  position startpos|fen <FEN> [moves m1 m2 ...]
                             set up a position, optionally playing moves
  turn [w|b]                 show or set the side to move
  status                     show check, checkmate or stalemate
  perft <depth>              count leaf nodes, divided by root move
  new                        start a new game
  quit                       leave`

// session is the state of one interactive run.
type session struct {
	game *rules.Game
	out  io.Writer
}

func newSession(out io.Writer) *session {
	return &session{game: rules.NewGame(), out: out}
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// execute runs one command line and reports whether the session should end.
func (s *session) execute(line string) (quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return false
	}
	args := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "quit", "exit", "x":
		return true
	case "help", "?":
		s.printf("%s\n", helpText)
	case "new", "ucinewgame":
		s.game = rules.NewGame()
		s.printf("new game\n")
	case "board", "d":
		s.printf("%s", s.game.Board())
		s.printf("%s to move\n", s.game.TeamTurn())
	case "fen":
		s.printf("%s\n", s.game.Record().FEN())
	case "moves", "legal":
		s.listMoves(args)
	case "move", "m":
		s.playMove(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), tokens[0])))
	case "json":
		s.showJSON(args)
	case "position":
		s.setPosition(args)
	case "turn":
		s.setTurn(args)
	case "status":
		s.showStatus()
	case "perft":
		s.perft(args)
	default:
		// A bare coordinate move is played directly.
		if m, err := rules.ParseMove(tokens[0]); err == nil && len(tokens) == 1 {
			s.makeMove(m)
			return false
		}
		s.printf("unknown command %q, type 'help'\n", tokens[0])
	}
	return false
}

func (s *session) listMoves(args []string) {
	var moves []rules.Move
	var err error
	if len(args) > 0 {
		sq, perr := rules.ParseSquare(args[0])
		if perr != nil {
			s.printf("error: %v\n", perr)
			return
		}
		moves, err = s.game.LegalMoves(sq)
	} else {
		moves, err = s.game.AllLegalMoves()
	}
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	sort.Strings(names)
	s.printf("%d: %s\n", len(names), strings.Join(names, " "))
}

func (s *session) playMove(arg string) {
	if arg == "" {
		s.printf("usage: move <e2e4|json>\n")
		return
	}
	var m rules.Move
	var err error
	if strings.HasPrefix(arg, "{") {
		err = json.Unmarshal([]byte(arg), &m)
	} else {
		m, err = rules.ParseMove(arg)
	}
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.makeMove(m)
}

func (s *session) makeMove(m rules.Move) {
	if err := s.game.MakeMove(m); err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.printf("played %s\n", m)
	s.showStatus()
}

func (s *session) showJSON(args []string) {
	if len(args) != 1 {
		s.printf("usage: json <e2e4>\n")
		return
	}
	m, err := rules.ParseMove(args[0])
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.printf("%s\n", data)
}

// setPosition accepts the UCI position syntax:
// position startpos [moves ...] or position fen <6 fields> [moves ...].
func (s *session) setPosition(args []string) {
	if len(args) == 0 {
		s.printf("usage: position startpos|fen <FEN> [moves ...]\n")
		return
	}
	var game *rules.Game
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		game = rules.NewGame()
		rest = args[1:]
	case "fen":
		end := len(args)
		for i, tok := range args {
			if tok == "moves" {
				end = i
				break
			}
		}
		game = rules.NewGame(rules.WithFEN(strings.Join(args[1:end], " ")))
		if err := game.Err(); err != nil {
			s.printf("error: %v\n", err)
			return
		}
		rest = args[end:]
	default:
		s.printf("usage: position startpos|fen <FEN> [moves ...]\n")
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, text := range rest[1:] {
			m, err := rules.ParseMove(text)
			if err == nil {
				err = game.MakeMove(m)
			}
			if err != nil {
				s.printf("error at %s: %v\n", text, err)
				return
			}
		}
	}
	s.game = game
	s.printf("%s\n", s.game.Record().FEN())
}

func (s *session) setTurn(args []string) {
	if len(args) == 0 {
		s.printf("%s to move\n", s.game.TeamTurn())
		return
	}
	switch strings.ToLower(args[0]) {
	case "w", "white":
		s.game.SetTeamTurn(rules.White)
	case "b", "black":
		s.game.SetTeamTurn(rules.Black)
	default:
		s.printf("usage: turn [w|b]\n")
		return
	}
	s.printf("%s to move\n", s.game.TeamTurn())
}

func (s *session) showStatus() {
	out, err := s.game.Outcome()
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.printf("status: %s\n", out)
}

func (s *session) perft(args []string) {
	if len(args) != 1 {
		s.printf("usage: perft <depth>\n")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth <= 0 {
		s.printf("depth must be a positive number\n")
		return
	}
	div, err := rules.PerftDivide(s.game.Record(), depth)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	moves := maps.Keys(div)
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	var total uint64
	for _, m := range moves {
		s.printf("%s: %d\n", m, div[m])
		total += div[m]
	}
	s.printf("Total: %d\n", total)
}
