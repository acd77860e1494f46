package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
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
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	log.Error().Err(err).Str("cmd", name).Msg("run failed")
	return 1
}

// Runs the benchmarks in bench/ and then the perft and search tools.
// Usage: go run ./cmd/benchrun [-depth N]
func main() {
	depth := flag.Int("depth", 4, "search depth for the searchbench pass")
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, d := range []string{"3", "4", "5"} {
		run("go", "run", "./cmd/perft", "-depth", d, "-label", "Initial")
	}
	run("go", "run", "./cmd/perft", "-fen",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"-depth", "3", "-label", "Kiwipete")

	fmt.Println("\nSearch Performance:")
	run("go", "run", "./cmd/searchbench", "-depth", strconv.Itoa(*depth))
	run("go", "run", "./cmd/searchbench", "-depth", strconv.Itoa(*depth), "-nott")
}
