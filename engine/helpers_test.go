package engine

import (
	"strings"
	"testing"
)

func mustPosition(t testing.TB, fen string) *Position {
	t.Helper()
	pos, err := NewPosition(fen)
	if err != nil {
		t.Fatalf("parse FEN %q: %v", fen, err)
	}
	return pos
}

// square converts algebraic notation ("e4") to a square index.
func square(name string) int {
	return int(name[0]-'a') + int(name[1]-'1')*8
}

// mirrorFEN swaps colours and flips the board vertically. En passant
// targets are dropped.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)
	rows := strings.Split(fields[0], "/")
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	fields[0] = swapCase(strings.Join(rows, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		swapped := swapCase(fields[2])
		var castle strings.Builder
		for _, c := range "KQkq" {
			if strings.ContainsRune(swapped, c) {
				castle.WriteRune(c)
			}
		}
		fields[2] = castle.String()
	}
	fields[3] = "-"
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}

var testFENs = []string{
	// Initial position
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	// Kiwipete
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1",
	"8/8/3p4/4r3/2RKP3/5k2/8/8 b - - 0 1",
}
