package engine

import gm "github.com/Oliverans/GooseEngineMG/goosemg"

type move struct {
	move  gm.Move
	score int32
}

type moveList struct {
	moves []move
}

// ScoreMove rates m for move ordering: the promoted piece's value, plus
// 10*victim - attacker for captures. Quiet moves score 0.
func ScoreMove(m gm.Move) int32 {
	var score int32
	if IsPromotion(m) {
		score += PieceValue(m.PromotionPiece())
	}
	if IsCapture(m) {
		victim := m.CapturedPiece()
		if victim == gm.NoPiece {
			victim = gm.WhitePawn // en passant
		}
		score += 10*PieceValue(victim) - PieceValue(m.MovedPiece())
	}
	return score
}

func scoreMovesList(moves []gm.Move) (movesList moveList) {
	movesList.moves = make([]move, len(moves))
	for i, m := range moves {
		movesList.moves[i] = move{move: m, score: ScoreMove(m)}
	}
	return movesList
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// OrderMoves returns moves sorted by descending ScoreMove. The input slice is
// left untouched.
func OrderMoves(moves []gm.Move) []gm.Move {
	list := scoreMovesList(moves)
	ordered := make([]gm.Move, len(moves))
	for i := range list.moves {
		orderNextMove(i, &list)
		ordered[i] = list.moves[i].move
	}
	return ordered
}
