package engine

import (
	"fmt"
	"math/bits"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

// Weights scales the non-material evaluation terms.
type Weights struct {
	Mobility     int32
	Control      int32
	KingSafety   int32
	DoubledPawn  int32
	IsolatedPawn int32
}

// DefaultWeights returns the standard evaluation weights.
func DefaultWeights() Weights {
	return Weights{
		Mobility:     5,
		Control:      10,
		KingSafety:   15,
		DoubledPawn:  20,
		IsolatedPawn: 15,
	}
}

// onlyFile[f] masks every square of file f.
var onlyFile = [8]uint64{
	bitboardFileA, bitboardFileA << 1, bitboardFileA << 2, bitboardFileA << 3,
	bitboardFileA << 4, bitboardFileA << 5, bitboardFileA << 6, bitboardFileA << 7,
}

// adjacentFiles[f] masks the files either side of f.
var adjacentFiles [8]uint64

func init() {
	for f := 0; f < 8; f++ {
		if f > 0 {
			adjacentFiles[f] |= onlyFile[f-1]
		}
		if f < 7 {
			adjacentFiles[f] |= onlyFile[f+1]
		}
	}
}

// Evaluator scores positions statically.
type Evaluator struct {
	Weights Weights
}

// NewEvaluator returns an evaluator using w.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{Weights: w}
}

var defaultEvaluator = NewEvaluator(DefaultWeights())

// Evaluate scores pos with the default weights, from the side to move.
func Evaluate(pos *Position) int32 {
	return defaultEvaluator.Evaluate(pos)
}

// EvalBreakdown holds the White-relative terms of an evaluation.
type EvalBreakdown struct {
	Phase GamePhase

	Material    [2]int32 // material plus piece-square bonus, per colour
	PawnPenalty [2]int32
	Mobility    [2]int
	Control     [2]int
	KingThreat  [2]int

	MaterialEval int32
	MobilityEval int32
	ControlEval  int32
	SafetyEval   int32
	Total        int32 // White-relative
}

// Evaluate returns the score of pos for the side to move. A mated side sees
// -MateScore; every other finished game is 0.
func (e *Evaluator) Evaluate(pos *Position) int32 {
	legal := len(pos.LegalMoves())
	outcome := pos.outcomeWith(legal)
	if outcome.Termination == TerminationCheckmate {
		return -MateScore
	}
	if outcome.Over() {
		return 0
	}
	bd := e.breakdown(pos, legal)
	if pos.SideToMove() == gm.Black {
		return -bd.Total
	}
	return bd.Total
}

// Breakdown computes each term of the evaluation. It ignores game over.
func (e *Evaluator) Breakdown(pos *Position) EvalBreakdown {
	return e.breakdown(pos, len(pos.LegalMoves()))
}

func (e *Evaluator) breakdown(pos *Position, legal int) EvalBreakdown {
	b := pos.Board()
	w := e.Weights
	bd := EvalBreakdown{Phase: GamePhaseOf(pos)}

	for sq := 0; sq < 64; sq++ {
		p := pos.PieceAt(sq)
		if p == gm.NoPiece {
			continue
		}
		bd.Material[p.Color()] += PieceValue(p) + pstValue(p, sq, bd.Phase)
	}

	stm := pos.SideToMove()
	for _, c := range [2]gm.Color{gm.White, gm.Black} {
		pawns := b.Bitboards(c).Pawns
		bd.PawnPenalty[c] = w.DoubledPawn*int32(doubledPawns(pawns)) + w.IsolatedPawn*int32(isolatedPawns(pawns))
		if c == stm {
			bd.Mobility[c] = legal
		} else {
			bd.Mobility[c] = pos.mobility(c)
		}
		bd.Control[c] = centerControl(b, c)
		bd.KingThreat[c] = kingThreat(b, c)
	}

	white := bd.Material[gm.White] - bd.PawnPenalty[gm.White]
	black := bd.Material[gm.Black] - bd.PawnPenalty[gm.Black]
	bd.MaterialEval = white - black
	bd.MobilityEval = w.Mobility * int32(bd.Mobility[gm.White]-bd.Mobility[gm.Black])
	bd.ControlEval = w.Control * int32(bd.Control[gm.White]-bd.Control[gm.Black])
	bd.SafetyEval = w.KingSafety * int32(bd.KingThreat[gm.Black]-bd.KingThreat[gm.White])
	bd.Total = bd.MaterialEval + bd.MobilityEval + bd.ControlEval + bd.SafetyEval
	return bd
}

// doubledPawns counts the extra pawns on files holding more than one.
func doubledPawns(pawns uint64) int {
	extra := 0
	for f := 0; f < 8; f++ {
		extra += Max(bits.OnesCount64(pawns&onlyFile[f])-1, 0)
	}
	return extra
}

// isolatedPawns counts pawns with no friendly pawn on a neighbouring file.
func isolatedPawns(pawns uint64) int {
	isolated := 0
	for f := 0; f < 8; f++ {
		if pawns&adjacentFiles[f] == 0 {
			isolated += bits.OnesCount64(pawns & onlyFile[f])
		}
	}
	return isolated
}

func (bd EvalBreakdown) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "phase %s\n", bd.Phase)
	fmt.Fprintf(&sb, "%-10s %8s %8s %8s\n", "term", "white", "black", "eval")
	fmt.Fprintf(&sb, "%-10s %8d %8d %8d\n", "material", bd.Material[gm.White]-bd.PawnPenalty[gm.White], bd.Material[gm.Black]-bd.PawnPenalty[gm.Black], bd.MaterialEval)
	fmt.Fprintf(&sb, "%-10s %8d %8d\n", "pawns", -bd.PawnPenalty[gm.White], -bd.PawnPenalty[gm.Black])
	fmt.Fprintf(&sb, "%-10s %8d %8d %8d\n", "mobility", bd.Mobility[gm.White], bd.Mobility[gm.Black], bd.MobilityEval)
	fmt.Fprintf(&sb, "%-10s %8d %8d %8d\n", "center", bd.Control[gm.White], bd.Control[gm.Black], bd.ControlEval)
	fmt.Fprintf(&sb, "%-10s %8d %8d %8d\n", "kingthreat", bd.KingThreat[gm.White], bd.KingThreat[gm.Black], bd.SafetyEval)
	fmt.Fprintf(&sb, "%-10s %26d", "total", bd.Total)
	return sb.String()
}
