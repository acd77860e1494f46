package engine

import "testing"

func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 1, 20},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		if got := Perft(pos, tt.depth); got != tt.nodes {
			t.Errorf("perft(%s, %d) = %d, want %d", tt.fen, tt.depth, got, tt.nodes)
		}
		if pos.Plies() != 0 {
			t.Errorf("%s: position not restored", tt.fen)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := StartPosition()
	div := PerftDivide(pos, 3)
	if len(div) != 20 {
		t.Fatalf("divide has %d root moves, want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sum = %d, want 8902", sum)
	}
}
