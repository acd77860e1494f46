package engine

import (
	"errors"
	"testing"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		fen  string
		uci  string
		want string
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "e2e4", "e4"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "g1f3", "Nf3"},
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", "Ra8#"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"8/4P3/8/8/8/8/k7/4K3 w - - 0 1", "e7e8q", "e8=Q"},
	}
	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		m, err := pos.ParseMove(tt.uci)
		if err != nil {
			t.Fatalf("%s: %v", tt.uci, err)
		}
		if got := SAN(pos, m); got != tt.want {
			t.Errorf("SAN(%s) = %q, want %q", tt.uci, got, tt.want)
		}
	}
}

func TestParseSAN(t *testing.T) {
	pos := StartPosition()
	for _, in := range []string{"Nf3", "g1f3"} {
		m, err := ParseSAN(pos, in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if m.String() != "g1f3" {
			t.Fatalf("%s parsed as %s", in, m)
		}
	}
	if _, err := ParseSAN(pos, "Nf6"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}
