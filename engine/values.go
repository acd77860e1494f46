package engine

import gm "github.com/Oliverans/GooseEngineMG/goosemg"

// Material values in centipawns, indexed by piece type.
var pieceValue = [7]int32{
	gm.PieceTypeNone:   0,
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 320,
	gm.PieceTypeBishop: 330,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
	gm.PieceTypeKing:   20000,
}

// PieceValue returns the material value of the piece, 0 for NoPiece.
func PieceValue(p gm.Piece) int32 {
	return pieceValue[p.Type()]
}

// FlipView maps a square to its vertical mirror (a1 <-> a8).
var FlipView = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// Piece-square tables, written from the owner's side: first row is the
// opponent's back rank, last row is the owner's back rank.
var pawnPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPSTMiddlegame = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingPSTEndgame = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pstByType = [7]*[64]int32{
	gm.PieceTypePawn:   &pawnPST,
	gm.PieceTypeKnight: &knightPST,
	gm.PieceTypeBishop: &bishopPST,
	gm.PieceTypeRook:   &rookPST,
	gm.PieceTypeQueen:  &queenPST,
	gm.PieceTypeKing:   &kingPSTMiddlegame,
}

// pstIndex converts a board square (a1 = 0) to the table index seen from
// the owner's side.
func pstIndex(c gm.Color, sq int) int {
	if c == gm.White {
		return FlipView[sq]
	}
	return sq
}

// pstValue looks up the positional bonus of piece p on sq for the given phase.
func pstValue(p gm.Piece, sq int, phase GamePhase) int32 {
	pt := p.Type()
	if pt == gm.PieceTypeNone {
		return 0
	}
	table := pstByType[pt]
	if pt == gm.PieceTypeKing && phase == Endgame {
		table = &kingPSTEndgame
	}
	return table[pstIndex(p.Color(), sq)]
}
