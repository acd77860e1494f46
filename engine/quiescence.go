package engine

// quiescence resolves captures at the horizon so the static evaluation is
// only trusted in quiet positions.
func (s *Searcher) quiescence(alpha, beta int32, ply int) int32 {
	s.stats.QNodes++

	standpat := s.eval.Evaluate(s.pos)
	if standpat == -MateScore {
		standpat += int32(ply)
	}

	if standpat >= beta {
		s.stats.QStandPatCutoffs++
		return beta
	}
	if standpat > alpha {
		alpha = standpat
	}
	if ply >= MaxPly {
		return alpha
	}

	list := scoreMovesList(s.pos.Captures())
	for index := range list.moves {
		orderNextMove(index, &list)
		move := list.moves[index].move

		undo, ok := s.applyMoveWithState(move)
		if !ok {
			continue
		}
		score := -s.quiescence(-beta, -alpha, ply+1)
		undo()

		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
