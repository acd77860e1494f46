package main

import (
	"bytes"
	"strings"
	"testing"

	"graph-chess/engine"

	"github.com/rs/zerolog"
)

func runUCI(t *testing.T, script string) []string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(script), &out, zerolog.Nop())
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func lastLine(lines []string) string { return lines[len(lines)-1] }

func TestUCIHandshake(t *testing.T) {
	lines := runUCI(t, "uci\nisready\nquit\n")
	if lines[0] != "id name graph-chess" {
		t.Fatalf("first line = %q", lines[0])
	}
	var sawOK bool
	for _, l := range lines {
		if l == "uciok" {
			sawOK = true
		}
	}
	if !sawOK {
		t.Fatalf("no uciok in %q", lines)
	}
	if lastLine(lines) != "readyok" {
		t.Fatalf("last line = %q, want readyok", lastLine(lines))
	}
}

func TestUCIGoFindsMate(t *testing.T) {
	lines := runUCI(t, "position fen 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1\ngo depth 2\n")
	if got := lastLine(lines); got != "bestmove a1a8" {
		t.Fatalf("got %q, want bestmove a1a8", got)
	}
	if !strings.Contains(lines[len(lines)-2], "score mate 1") {
		t.Fatalf("info line %q has no mate score", lines[len(lines)-2])
	}
}

func TestUCIPositionMoves(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4 e7e5\nd\n")
	pos := engine.StartPosition()
	for _, mv := range []string{"e2e4", "e7e5"} {
		if err := pos.MakeUCI(mv); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.HasPrefix(pos.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq") {
		t.Fatalf("unexpected FEN %q", pos.FEN())
	}
	if lastLine(lines) != pos.FEN() {
		t.Fatalf("got %q, want %q", lastLine(lines), pos.FEN())
	}
}

func TestUCIBadMoveKeepsPosition(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e5\nd\n")
	if !strings.HasPrefix(lines[0], "info string Move e2e5 not found") {
		t.Fatalf("got %q", lines[0])
	}
	if lastLine(lines) != engine.StartPosition().FEN() {
		t.Fatalf("position changed to %q", lastLine(lines))
	}
}

func TestUCINoLegalMoves(t *testing.T) {
	lines := runUCI(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\ngo depth 1\n")
	if got := lastLine(lines); got != "bestmove 0000" {
		t.Fatalf("got %q", got)
	}
}

func TestUCISetOption(t *testing.T) {
	var w engine.Weights
	if err := setWeight(&w, "mobility", "7"); err != nil {
		t.Fatal(err)
	}
	if w.Mobility != 7 {
		t.Fatalf("Mobility = %d", w.Mobility)
	}
	if err := setWeight(&w, "KingSafety", "1000"); err != nil || w.KingSafety != 100 {
		t.Fatalf("KingSafety = %d, err %v; want clamped to 100", w.KingSafety, err)
	}
	if err := setWeight(&w, "Nonsense", "1"); err == nil {
		t.Fatal("expected unknown option error")
	}

	name, value, ok := parseSetOption(strings.Fields("name Hash value false"))
	if !ok || name != "Hash" || value != "false" {
		t.Fatalf("parseSetOption = %q %q %v", name, value, ok)
	}
	if _, _, ok := parseSetOption(strings.Fields("name Hash")); ok {
		t.Fatal("missing value accepted")
	}

	lines := runUCI(t, "setoption name Hash value nope\n")
	if !strings.HasPrefix(lines[0], "info string Invalid Hash value") {
		t.Fatalf("got %q", lines[0])
	}
}

func TestUCIUnknownCommand(t *testing.T) {
	lines := runUCI(t, "frobnicate\n")
	if lines[0] != "info string Unknown command: frobnicate" {
		t.Fatalf("got %q", lines[0])
	}
}
