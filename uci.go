package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"graph-chess/engine"

	"github.com/rs/zerolog"
)

const defaultGoDepth = 4

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()
	uciLoop(os.Stdin, os.Stdout, logger)
}

// spinOption is a tunable evaluation weight exposed through setoption.
type spinOption struct {
	name     string
	min, max int32
	field    func(w *engine.Weights) *int32
}

var spinOptions = []spinOption{
	{"Mobility", 0, 50, func(w *engine.Weights) *int32 { return &w.Mobility }},
	{"Control", 0, 100, func(w *engine.Weights) *int32 { return &w.Control }},
	{"KingSafety", 0, 100, func(w *engine.Weights) *int32 { return &w.KingSafety }},
	{"DoubledPawn", 0, 100, func(w *engine.Weights) *int32 { return &w.DoubledPawn }},
	{"IsolatedPawn", 0, 100, func(w *engine.Weights) *int32 { return &w.IsolatedPawn }},
}

func uciLoop(in io.Reader, out io.Writer, logger zerolog.Logger) {
	scanner := bufio.NewScanner(in)
	searcher := engine.NewSearcher(engine.WithLogger(logger))
	pos := engine.StartPosition()
	useTT := true

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name graph-chess")
			fmt.Fprintln(out, "id author graph-chess developers")
			fmt.Fprintln(out, "option name Hash type check default", useTT)
			defaults := engine.DefaultWeights()
			for _, opt := range spinOptions {
				fmt.Fprintf(out, "option name %s type spin default %d min %d max %d\n", opt.name, *opt.field(&defaults), opt.min, opt.max)
			}
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			pos = engine.StartPosition()
		case "quit":
			return
		case "stop":
			// searches are synchronous; nothing to interrupt
		case "eval":
			fmt.Fprintln(out, searcher.Evaluator().Breakdown(pos))
			fmt.Fprintln(out, "info string eval", engine.UCIScore(searcher.Evaluator().Evaluate(pos)))
		case "d":
			fmt.Fprintln(out, pos.FEN())
		case "go":
			depth, ok := parseGo(tokens[1:], out)
			if !ok {
				continue
			}
			searcher.SetTransTable(useTT)
			res, err := searcher.FindBestMove(pos, depth)
			if err != nil {
				logger.Debug().Err(err).Msg("go")
				fmt.Fprintln(out, "bestmove 0000")
				continue
			}
			fmt.Fprintf(out, "info depth %d score %s nodes %d nps %d pv %s\n",
				res.Depth, engine.UCIScore(res.Score), res.Stats.Nodes+res.Stats.QNodes, res.Stats.NPS(), res.BestMove)
			fmt.Fprintln(out, "bestmove", res.BestMove)
		case "position":
			if next, ok := parsePosition(tokens[1:], out); ok {
				pos = next
			}
		case "setoption":
			name, value, ok := parseSetOption(tokens[1:])
			if !ok {
				fmt.Fprintln(out, "info string Malformed setoption command")
				continue
			}
			if strings.EqualFold(name, "hash") {
				b, err := strconv.ParseBool(value)
				if err != nil {
					fmt.Fprintln(out, "info string Invalid Hash value", value)
					continue
				}
				useTT = b
				continue
			}
			if err := setWeight(&searcher.Evaluator().Weights, name, value); err != nil {
				fmt.Fprintln(out, "info string", err)
			}
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// parseGo reads the depth of a go command. Clock options are accepted and
// ignored since every search runs to a fixed depth.
func parseGo(args []string, out io.Writer) (int, bool) {
	depth := defaultGoDepth
	for i := 0; i < len(args); i++ {
		switch tok := strings.ToLower(args[i]); tok {
		case "infinite":
			continue
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(out, "info string Malformed go command option depth")
				return 0, false
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 1 {
				fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
				return 0, false
			}
			depth = d
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes":
			i++
		default:
			fmt.Fprintln(out, "info string Unknown go subcommand", tok)
		}
	}
	return depth, true
}

func parsePosition(args []string, out io.Writer) (*engine.Position, bool) {
	if len(args) == 0 {
		fmt.Fprintln(out, "info string Malformed position command")
		return nil, false
	}

	var pos *engine.Position
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		pos = engine.StartPosition()
	case "fen":
		n := 0
		for n < len(rest) && strings.ToLower(rest[n]) != "moves" {
			n++
		}
		if n == 0 {
			fmt.Fprintln(out, "info string Invalid fen position")
			return nil, false
		}
		p, err := engine.NewPosition(strings.Join(rest[:n], " "))
		if err != nil {
			fmt.Fprintln(out, "info string", err)
			return nil, false
		}
		pos = p
		rest = rest[n:]
	default:
		fmt.Fprintln(out, "info string Invalid position subcommand")
		return nil, false
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return pos, true
	}
	for _, mv := range rest[1:] {
		if err := pos.MakeUCI(mv); err != nil {
			fmt.Fprintln(out, "info string Move", mv, "not found for position", pos.FEN())
			return nil, false
		}
	}
	return pos, true
}

// parseSetOption splits "name <id...> value <x...>".
func parseSetOption(args []string) (name, value string, ok bool) {
	if len(args) < 2 || strings.ToLower(args[0]) != "name" {
		return "", "", false
	}
	args = args[1:]
	i := 0
	for i < len(args) && strings.ToLower(args[i]) != "value" {
		i++
	}
	name = strings.Join(args[:i], " ")
	if i+1 >= len(args) || name == "" {
		return "", "", false
	}
	return name, strings.Join(args[i+1:], " "), true
}

func setWeight(w *engine.Weights, name, value string) error {
	for _, opt := range spinOptions {
		if !strings.EqualFold(opt.name, name) {
			continue
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s", value, opt.name)
		}
		*opt.field(w) = engine.Clamp(int32(v), opt.min, opt.max)
		return nil
	}
	return fmt.Errorf("unknown option %s", name)
}
