package engine

import gm "github.com/Oliverans/GooseEngineMG/goosemg"

// Perft counts the leaf nodes of the legal move tree below pos.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if !pos.Make(m) {
			continue
		}
		nodes += Perft(pos, depth-1)
		pos.Unmake()
	}
	return nodes
}

// PerftDivide reports Perft(depth-1) for every root move.
func PerftDivide(pos *Position, depth int) map[gm.Move]uint64 {
	div := make(map[gm.Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range pos.LegalMoves() {
		if !pos.Make(m) {
			continue
		}
		div[m] = Perft(pos, depth-1)
		pos.Unmake()
	}
	return div
}
