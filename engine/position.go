package engine

import (
	"errors"
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/samber/lo"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrIllegalMove = errors.New("illegal move")
)

// Position is a board plus the undo stack and hash history needed for
// make/unmake and repetition detection.
type Position struct {
	board   *gm.Board
	stack   []gm.MoveState
	history []uint64
	played  []gm.Move
}

// NewPosition parses a FEN string.
func NewPosition(fen string) (*Position, error) {
	b, err := gm.ParseFEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidFEN, fen, err)
	}
	return positionFromBoard(b), nil
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	pos, err := NewPosition(gm.FENStartPos)
	if err != nil {
		panic(err)
	}
	return pos
}

func positionFromBoard(b *gm.Board) *Position {
	return &Position{
		board:   b,
		stack:   make([]gm.MoveState, 0, 64),
		history: append(make([]uint64, 0, 128), b.Hash()),
	}
}

// Copy returns an independent copy, history included.
func (p *Position) Copy() *Position {
	b := *p.board
	return &Position{
		board:   &b,
		stack:   append([]gm.MoveState(nil), p.stack...),
		history: append([]uint64(nil), p.history...),
		played:  append([]gm.Move(nil), p.played...),
	}
}

// Board exposes the underlying rules-engine board. Callers must not make
// moves on it directly.
func (p *Position) Board() *gm.Board { return p.board }

func (p *Position) Hash() uint64 { return p.board.Hash() }

func (p *Position) SideToMove() gm.Color { return p.board.SideToMove() }

func (p *Position) PieceAt(sq int) gm.Piece { return p.board.PieceAt(gm.Square(sq)) }

func (p *Position) FEN() string { return p.board.ToFEN() }

func (p *Position) InCheck() bool { return p.board.InCheck(p.board.SideToMove()) }

func (p *Position) HalfmoveClock() int { return p.board.HalfmoveClock() }

// LegalMoves returns the legal moves for the side to move.
func (p *Position) LegalMoves() []gm.Move { return p.board.GenerateMoves() }

// Captures returns the legal capturing moves, en passant included.
func (p *Position) Captures() []gm.Move {
	return lo.Filter(p.LegalMoves(), func(m gm.Move, _ int) bool { return IsCapture(m) })
}

// IsCapture reports whether m removes an enemy piece.
func IsCapture(m gm.Move) bool {
	return m.CapturedPiece() != gm.NoPiece || m.Flags() == gm.FlagEnPassant
}

// IsPromotion reports whether m promotes a pawn.
func IsPromotion(m gm.Move) bool { return m.PromotionPiece() != gm.NoPiece }

// Make plays m. It returns false and leaves the position untouched when the
// move is illegal.
func (p *Position) Make(m gm.Move) bool {
	if !p.board.PushMove(m, &p.stack, &p.history) {
		return false
	}
	p.played = append(p.played, m)
	return true
}

// Unmake takes back the last move played with Make.
func (p *Position) Unmake() {
	p.board.PopMove(&p.stack, &p.history)
	p.played = p.played[:len(p.played)-1]
}

// Plies is the number of moves played on this Position since it was created.
func (p *Position) Plies() int { return len(p.played) }

// Played returns the moves made since the position was created.
func (p *Position) Played() []gm.Move { return p.played }

// ParseMove resolves a UCI move string against the legal moves. A four
// character pawn move to the last rank promotes to a queen.
func (p *Position) ParseMove(s string) (gm.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	legal := p.LegalMoves()
	for _, m := range legal {
		if m.String() == s {
			return m, nil
		}
	}
	if len(s) == 4 {
		for _, m := range legal {
			if m.String() == s+"q" {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s in %s", ErrIllegalMove, s, p.FEN())
}

// MakeUCI parses and plays a UCI move string.
func (p *Position) MakeUCI(s string) error {
	m, err := p.ParseMove(s)
	if err != nil {
		return err
	}
	if !p.Make(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}
	return nil
}

// repetitions counts how often the current position occurred, itself included.
func (p *Position) repetitions() int {
	target := p.board.Hash()
	n := 0
	for _, h := range p.history {
		if h == target {
			n++
		}
	}
	return n
}

// mobility counts the legal moves of side c. The other side is counted on a
// copy of the board with the turn handed over.
func (p *Position) mobility(c gm.Color) int {
	if p.board.SideToMove() == c {
		return len(p.board.GenerateMoves())
	}
	cp := *p.board
	cp.SetSideToMove(c)
	return len(cp.GenerateMoves())
}
