package main

import (
	"context"
	"strings"
	"testing"
)

func TestReadFENs(t *testing.T) {
	input := `# comment
6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1

r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - bm Bb5;
`
	fens, err := readFENs(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
	}
	if len(fens) != len(want) {
		t.Fatalf("got %d FENs, want %d", len(fens), len(want))
	}
	for i := range want {
		if fens[i] != want[i] {
			t.Errorf("fens[%d] = %q, want %q", i, fens[i], want[i])
		}
	}
}

func TestRunKeepsInputOrder(t *testing.T) {
	fens := []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"not a fen",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	results, err := run(context.Background(), fens, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range results {
		if a.fen != fens[i] {
			t.Fatalf("results[%d] is for %q", i, a.fen)
		}
	}
	if results[0].err != nil || results[0].result.BestMove.String() != "a1a8" {
		t.Errorf("mate position: best %v err %v", results[0].result.BestMove, results[0].err)
	}
	if results[1].err == nil {
		t.Error("invalid FEN produced no error")
	}
	if results[2].err == nil {
		t.Error("stalemate produced no error")
	}
	if results[3].err != nil || len(results[3].result.Top) != 5 {
		t.Errorf("start position: %d top moves, err %v", len(results[3].result.Top), results[3].err)
	}
}
