package engine

import (
	"math/bits"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

const (
	seventyFiveMoveLimit = 150
	fivefoldLimit        = 5

	lightSquares uint64 = 0x55aa55aa55aa55aa
	darkSquares  uint64 = 0xaa55aa55aa55aa55
)

// Termination is the reason a game ended.
type Termination uint8

const (
	NotTerminated Termination = iota
	TerminationCheckmate
	TerminationStalemate
	TerminationInsufficientMaterial
	TerminationSeventyFiveMoves
	TerminationFivefoldRepetition
)

var terminationNames = [...]string{
	NotTerminated:                   "none",
	TerminationCheckmate:            "checkmate",
	TerminationStalemate:            "stalemate",
	TerminationInsufficientMaterial: "insufficient material",
	TerminationSeventyFiveMoves:     "seventy-five move rule",
	TerminationFivefoldRepetition:   "fivefold repetition",
}

func (t Termination) String() string {
	if int(t) < len(terminationNames) {
		return terminationNames[t]
	}
	return "unknown"
}

// Outcome describes a finished game. Winner is only meaningful when
// Termination is TerminationCheckmate.
type Outcome struct {
	Termination Termination
	Winner      gm.Color
}

func (o Outcome) Over() bool { return o.Termination != NotTerminated }

func (o Outcome) Draw() bool { return o.Over() && o.Termination != TerminationCheckmate }

// Result returns the PGN style result string.
func (o Outcome) Result() string {
	switch {
	case !o.Over():
		return "*"
	case o.Draw():
		return "1/2-1/2"
	case o.Winner == gm.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// Outcome reports whether and how the game is over. Draw claims (threefold,
// fifty moves) are not automatic and do not end the game.
func (p *Position) Outcome() Outcome {
	return p.outcomeWith(len(p.LegalMoves()))
}

func (p *Position) outcomeWith(legal int) Outcome {
	if legal == 0 {
		if p.InCheck() {
			return Outcome{Termination: TerminationCheckmate, Winner: p.SideToMove() ^ 1}
		}
		return Outcome{Termination: TerminationStalemate}
	}
	switch {
	case p.insufficientMaterial():
		return Outcome{Termination: TerminationInsufficientMaterial}
	case p.board.HalfmoveClock() >= seventyFiveMoveLimit:
		return Outcome{Termination: TerminationSeventyFiveMoves}
	case p.repetitions() >= fivefoldLimit:
		return Outcome{Termination: TerminationFivefoldRepetition}
	}
	return Outcome{}
}

func (p *Position) IsCheckmate() bool { return p.InCheck() && !p.board.HasLegalMoves() }

func (p *Position) IsGameOver() bool { return p.Outcome().Over() }

func (p *Position) insufficientMaterial() bool {
	return p.sideCannotMate(gm.White) && p.sideCannotMate(gm.Black)
}

// sideCannotMate reports whether side c has no material that could ever
// deliver mate, whatever the opponent does.
func (p *Position) sideCannotMate(c gm.Color) bool {
	us := p.board.Bitboards(c)
	them := p.board.Bitboards(c ^ 1)
	if us.Pawns|us.Rooks|us.Queens != 0 {
		return false
	}
	if us.Knights != 0 {
		return bits.OnesCount64(us.All) <= 2 && them.All&^them.Kings&^them.Queens == 0
	}
	if us.Bishops != 0 {
		bishops := us.Bishops | them.Bishops
		sameColour := bishops&darkSquares == 0 || bishops&lightSquares == 0
		return sameColour && them.Pawns|them.Knights == 0
	}
	return true
}
