package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type perftCase struct {
	label string
	fen   string
	depth int
}

var suite = []perftCase{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
	{"Position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3},
	{"Position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3},
}

func main() {
	// Run all benchmarks in bench/ with benchmem, then the perft suite.
	// Usage: go run ./cmd/benchrun [-verify] [-skipbench]
	verify := flag.Bool("verify", false, "Cross-check every perft count against dragontoothmg")
	skipBench := flag.Bool("skipbench", false, "Only run the perft suite")
	flag.Parse()

	if !*skipBench {
		// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
		fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
		if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
			os.Exit(code)
		}
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, c := range suite {
		args := []string{"run", "./cmd/perft", "-depth", strconv.Itoa(c.depth), "-label", c.label}
		if c.fen != "" {
			args = append(args, "-fen", c.fen)
		}
		if *verify {
			args = append(args, "-verify")
		}
		if run("go", args...) != 0 {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d perft runs failed\n", failed)
		os.Exit(1)
	}
}
