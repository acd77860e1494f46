// Command analyze searches every FEN of an EPD/FEN file and prints the best
// move with the top root moves.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"graph-chess/engine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type job struct {
	index int
	fen   string
}

type analysis struct {
	index  int
	fen    string
	result engine.Result
	err    error
}

func main() {
	in := flag.String("in", "", "file with one FEN per line (empty = stdin)")
	depth := flag.Int("depth", 3, "search depth in plies")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent searches")
	verbose := flag.Bool("v", false, "log search statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal().Err(err).Msg("open input")
		}
		defer f.Close()
		r = f
	}

	fens, err := readFENs(r)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	results, err := run(context.Background(), fens, *depth, engine.Max(*workers, 1))
	if err != nil {
		log.Fatal().Err(err).Msg("analyze")
	}
	for _, a := range results {
		printAnalysis(os.Stdout, a)
	}
}

// readFENs keeps the first four fields of each non-empty line, so EPD
// operations are dropped.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 6 && isNumber(fields[4]) && isNumber(fields[5]) {
			fens = append(fens, strings.Join(fields[:6], " "))
			continue
		}
		fens = append(fens, strings.Join(fields[:engine.Min(4, len(fields))], " ")+" 0 1")
	}
	return fens, scanner.Err()
}

func isNumber(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// run fans the positions out over workers, each with its own Searcher, and
// returns the analyses in input order.
func run(ctx context.Context, fens []string, depth, workers int) ([]analysis, error) {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan job)
	done := make(chan analysis)

	g.Go(func() error {
		defer close(jobs)
		for i, fen := range fens {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{index: i, fen: fen}:
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return analyzePositions(ctx, depth, jobs, done)
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(done)
		return nil
	})

	results := make([]analysis, len(fens))
	g.Go(func() error {
		for a := range done {
			results[a.index] = a
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzePositions(ctx context.Context, depth int, jobs <-chan job, done chan<- analysis) error {
	searcher := engine.NewSearcher(engine.WithLogger(log.Logger))
	for j := range jobs {
		a := analysis{index: j.index, fen: j.fen}
		pos, err := engine.NewPosition(j.fen)
		if err == nil {
			a.result, err = searcher.FindBestMove(pos, depth)
		}
		a.err = err
		select {
		case <-ctx.Done():
			return ctx.Err()
		case done <- a:
		}
	}
	return nil
}

func printAnalysis(w io.Writer, a analysis) {
	if a.err != nil {
		fmt.Fprintf(w, "%s\n  error: %v\n", a.fen, a.err)
		return
	}
	top := lo.Map(a.result.Top, func(me engine.MoveEvaluation, _ int) string {
		return fmt.Sprintf("%s %s", me.Notation, engine.FormatPawns(me.Score))
	})
	fmt.Fprintf(w, "%s\n  bestmove %s score %s nodes %d\n  top: %s\n",
		a.fen, a.result.BestMove, engine.UCIScore(a.result.Score),
		a.result.Stats.Nodes+a.result.Stats.QNodes, strings.Join(top, ", "))
}
