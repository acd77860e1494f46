package engine

import (
	"fmt"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/notnil/chess"
)

// sanFormatter renders moves of a single position in standard algebraic
// notation. It falls back to UCI text when the position cannot be loaded.
type sanFormatter struct {
	pos *chess.Position
}

func newSANFormatter(p *Position) sanFormatter {
	opt, err := chess.FEN(p.FEN())
	if err != nil {
		return sanFormatter{}
	}
	return sanFormatter{pos: chess.NewGame(opt).Position()}
}

func (f sanFormatter) format(m gm.Move) string {
	if f.pos == nil {
		return m.String()
	}
	mv, err := chess.UCINotation{}.Decode(f.pos, m.String())
	if err != nil {
		return m.String()
	}
	return chess.AlgebraicNotation{}.Encode(f.pos, mv)
}

// SAN returns m in standard algebraic notation for position p.
func SAN(p *Position, m gm.Move) string {
	return newSANFormatter(p).format(m)
}

// ParseSAN resolves a move in standard algebraic notation (Nf3, exd5, O-O,
// e8=Q) or UCI text against the legal moves of p.
func ParseSAN(p *Position, s string) (gm.Move, error) {
	if m, err := p.ParseMove(s); err == nil {
		return m, nil
	}
	f := newSANFormatter(p)
	if f.pos == nil {
		return p.ParseMove(s)
	}
	mv, err := chess.AlgebraicNotation{}.Decode(f.pos, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrIllegalMove, s, err)
	}
	return p.ParseMove(mv.String())
}
