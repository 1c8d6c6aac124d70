package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	"chess-rules/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	boardFile := flag.String("board", "", "Read the position from a text board file instead of -fen")
	turn := flag.String("turn", "w", "Side to move for -board positions (w or b)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check the node count against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	rec, err := loadRecord(*fen, *boardFile, *turn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "position rejected: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div, err := rules.PerftDivide(rec, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft divide: %v\n", err)
			os.Exit(1)
		}
		// Sort moves for stable output
		moves := maps.Keys(div)
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes, err = rules.Perft(rec, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		board := dragontoothmg.ParseFen(rec.FEN())
		want := dragonPerft(&board, *depth)
		if want != nodes {
			fmt.Fprintf(os.Stderr, "MISMATCH: dragontoothmg counts %d nodes, rules counts %d\n", want, nodes)
			os.Exit(1)
		}
		fmt.Printf("verified against dragontoothmg: %d\n", want)
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// loadRecord builds the starting record from a board file when one is given,
// otherwise from the FEN.
func loadRecord(fen, boardFile, turn string) (rules.GameRecord, error) {
	if boardFile == "" {
		rec, err := rules.ParseFEN(fen)
		if err != nil {
			return rules.GameRecord{}, fmt.Errorf("ParseFEN error: %w", err)
		}
		return rec, nil
	}
	data, err := os.ReadFile(boardFile)
	if err != nil {
		return rules.GameRecord{}, fmt.Errorf("reading board: %w", err)
	}
	pos, err := rules.LoadBoard(string(data))
	if err != nil {
		return rules.GameRecord{}, err
	}
	switch turn {
	case "w":
		return rules.NewRecord(pos, rules.White), nil
	case "b":
		return rules.NewRecord(pos, rules.Black), nil
	default:
		return rules.GameRecord{}, fmt.Errorf("-turn must be w or b, got %q", turn)
	}
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}
