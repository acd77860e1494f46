package engine

import gm "github.com/Oliverans/GooseEngineMG/goosemg"

// GamePhase selects the king piece-square table.
type GamePhase uint8

const (
	Middlegame GamePhase = iota
	Endgame
)

// EndgameMaterialThreshold is the non-pawn, non-king material (both sides)
// below which a position counts as an endgame.
const EndgameMaterialThreshold = 2000

func (gp GamePhase) String() string {
	if gp == Endgame {
		return "endgame"
	}
	return "middlegame"
}

// PhaseMaterial sums knight, bishop, rook and queen values for both sides.
func PhaseMaterial(pos *Position) int32 {
	var total int32
	for sq := 0; sq < 64; sq++ {
		p := pos.PieceAt(sq)
		switch p.Type() {
		case gm.PieceTypeNone, gm.PieceTypePawn, gm.PieceTypeKing:
			continue
		}
		total += PieceValue(p)
	}
	return total
}

// GamePhaseOf classifies the position as middlegame or endgame.
func GamePhaseOf(pos *Position) GamePhase {
	if PhaseMaterial(pos) < EndgameMaterialThreshold {
		return Endgame
	}
	return Middlegame
}
