package engine

import (
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

func TestGamePhaseOf(t *testing.T) {
	cases := []struct {
		fen      string
		material int32
		want     GamePhase
	}{
		{gm.FENStartPos, 6400, Middlegame},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 2000, Middlegame},
		{"r3k3/8/8/8/8/8/8/R2QK3 w Q - 0 1", 1900, Endgame},
		{"4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1", 0, Endgame},
	}
	for _, tc := range cases {
		pos := mustPosition(t, tc.fen)
		if got := PhaseMaterial(pos); got != tc.material {
			t.Fatalf("%s: expected phase material %d, got %d", tc.fen, tc.material, got)
		}
		if got := GamePhaseOf(pos); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.fen, tc.want, got)
		}
	}
}

func TestKingTableFollowsPhase(t *testing.T) {
	e1, e8 := square("e1"), square("e8")
	if got := pstValue(gm.WhiteKing, e1, Middlegame); got != 0 {
		t.Fatalf("expected middlegame king on e1 to score 0, got %d", got)
	}
	if got := pstValue(gm.WhiteKing, e1, Endgame); got != -30 {
		t.Fatalf("expected endgame king on e1 to score -30, got %d", got)
	}
	if got := pstValue(gm.BlackKing, e8, Endgame); got != -30 {
		t.Fatalf("expected endgame king on e8 to score -30, got %d", got)
	}
	if got := pstValue(gm.WhiteKing, square("g1"), Middlegame); got != 30 {
		t.Fatalf("expected castled king bonus 30, got %d", got)
	}
}

func TestPieceSquareTablesMirror(t *testing.T) {
	pieces := [][2]gm.Piece{
		{gm.WhitePawn, gm.BlackPawn},
		{gm.WhiteKnight, gm.BlackKnight},
		{gm.WhiteBishop, gm.BlackBishop},
		{gm.WhiteRook, gm.BlackRook},
		{gm.WhiteQueen, gm.BlackQueen},
		{gm.WhiteKing, gm.BlackKing},
	}
	for _, pair := range pieces {
		for sq := 0; sq < 64; sq++ {
			for _, phase := range []GamePhase{Middlegame, Endgame} {
				if w, b := pstValue(pair[0], sq, phase), pstValue(pair[1], FlipView[sq], phase); w != b {
					t.Fatalf("piece %d on %d (%s): white %d, mirrored black %d", pair[0], sq, phase, w, b)
				}
			}
		}
	}
	if got := pstValue(gm.WhitePawn, square("e7"), Middlegame); got != 50 {
		t.Fatalf("expected advanced pawn bonus 50, got %d", got)
	}
	if got := pstValue(gm.WhitePawn, square("e2"), Middlegame); got != -20 {
		t.Fatalf("expected e2 pawn to score -20, got %d", got)
	}
}
