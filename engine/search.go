package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// TopMoves is the number of root moves reported with a result.
const TopMoves = 5

var ErrNoLegalMoves = errors.New("no legal moves")

// MoveEvaluation is the score one root move received.
type MoveEvaluation struct {
	Move     gm.Move
	Notation string
	Score    int32
}

// Result of a fixed-depth search.
type Result struct {
	BestMove gm.Move
	Score    int32
	Depth    int
	Top      []MoveEvaluation
	Stats    SearchStats
}

// Notations lists the SAN of the top moves.
func (r Result) Notations() []string {
	return lo.Map(r.Top, func(me MoveEvaluation, _ int) string { return me.Notation })
}

// Searcher runs fixed-depth alpha-beta searches. It is not safe for
// concurrent use; give each goroutine its own.
type Searcher struct {
	eval   *Evaluator
	useTT  bool
	logger zerolog.Logger

	pos   *Position
	tt    *TransTable
	stats CutStatistics
}

type Option func(*Searcher)

// WithEvaluator replaces the default evaluator.
func WithEvaluator(e *Evaluator) Option {
	return func(s *Searcher) { s.eval = e }
}

// WithTransTable turns the transposition table on or off.
func WithTransTable(enabled bool) Option {
	return func(s *Searcher) { s.useTT = enabled }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) { s.logger = l }
}

func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		eval:   NewEvaluator(DefaultWeights()),
		useTT:  true,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Searcher) Evaluator() *Evaluator { return s.eval }

// SetTransTable turns the table on or off for subsequent searches.
func (s *Searcher) SetTransTable(enabled bool) { s.useTT = enabled }

// FindBestMove searches pos to depth plies and returns the best move with
// the top root moves. pos is restored before returning.
func FindBestMove(pos *Position, depth int) (Result, error) {
	return NewSearcher().FindBestMove(pos, depth)
}

// EvaluateBoard is the static evaluation of pos for the side to move.
func EvaluateBoard(pos *Position) int32 {
	return Evaluate(pos)
}

func (s *Searcher) FindBestMove(pos *Position, depth int) (Result, error) {
	depth = Clamp(depth, 1, MaxPly-1)
	s.pos = pos
	s.tt = NewTransTable(s.useTT)
	s.stats = CutStatistics{}
	defer func() { s.pos = nil }()

	start := time.Now()
	res, err := s.rootsearch(depth)
	if err != nil {
		return Result{}, err
	}
	res.Stats = SearchStats{CutStatistics: s.stats, TT: s.tt.Stats(), Elapsed: time.Since(start)}

	res.Stats.logEvent(s.logger.Info()).
		Int("depth", depth).
		Str("best", res.BestMove.String()).
		Int32("score", res.Score).
		Msg("search-complete")
	return res, nil
}

func (s *Searcher) rootsearch(depth int) (Result, error) {
	legal := s.pos.LegalMoves()
	if len(legal) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, s.pos.FEN())
	}

	san := newSANFormatter(s.pos)
	alpha, beta := -MaxScore, MaxScore
	bestScore := -MaxScore - 1
	var bestMove gm.Move

	list := scoreMovesList(legal)
	evals := make([]MoveEvaluation, 0, len(legal))
	for index := range list.moves {
		orderNextMove(index, &list)
		move := list.moves[index].move

		undo, ok := s.applyMoveWithState(move)
		if !ok {
			continue
		}
		score := -s.alphabeta(-beta, -alpha, int8(depth-1), 1)
		undo()

		evals = append(evals, MoveEvaluation{Move: move, Notation: san.format(move), Score: score})
		s.logger.Debug().Str("move", move.String()).Int32("score", score).Msg("root-move")

		if score > bestScore {
			bestScore = score
			bestMove = move
			alpha = Max(alpha, score)
		}
	}
	if len(evals) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, s.pos.FEN())
	}

	sort.SliceStable(evals, func(i, j int) bool { return evals[i].Score > evals[j].Score })
	return Result{
		BestMove: bestMove,
		Score:    bestScore,
		Depth:    depth,
		Top:      evals[:Min(TopMoves, len(evals))],
	}, nil
}

func (s *Searcher) alphabeta(alpha, beta int32, depth int8, ply int) int32 {
	s.stats.Nodes++
	originalAlpha := alpha
	hash := s.pos.Hash()

	if score, ok := s.tt.Probe(hash, depth, alpha, beta, ply); ok {
		s.stats.TTCutoffs++
		return score
	}

	legal := s.pos.LegalMoves()
	if depth <= 0 || ply >= MaxPly || s.pos.outcomeWith(len(legal)).Over() {
		return s.quiescence(alpha, beta, ply)
	}

	list := scoreMovesList(legal)
	for index := range list.moves {
		orderNextMove(index, &list)
		move := list.moves[index].move

		undo, ok := s.applyMoveWithState(move)
		if !ok {
			continue
		}
		score := -s.alphabeta(-beta, -alpha, depth-1, ply+1)
		undo()

		if score >= beta {
			s.stats.BetaCutoffs++
			s.tt.Store(hash, beta, depth, LowerBoundFlag, ply)
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	flag := ExactFlag
	if alpha <= originalAlpha {
		flag = UpperBoundFlag
	}
	s.tt.Store(hash, alpha, depth, flag, ply)
	return alpha
}

// applyMoveWithState makes move and returns the matching undo.
func (s *Searcher) applyMoveWithState(move gm.Move) (func(), bool) {
	if !s.pos.Make(move) {
		return nil, false
	}
	return s.pos.Unmake, true
}
