// Package graph answers questions about the board as a graph of squares:
// shortest knight routes and the squares a piece attacks.
package graph

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/samber/lo"

	"graph-chess/engine"
)

var ErrInvalidSquare = errors.New("invalid square")

// ParseSquare converts algebraic notation ("e4") to a square index, a1 = 0.
func ParseSquare(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return int(s[0]-'a') + int(s[1]-'1')*8, nil
}

// SquareName converts a square index to algebraic notation.
func SquareName(sq int) string {
	return string([]byte{'a' + byte(sq&7), '1' + byte(sq>>3)})
}

// SquareNames maps a list of squares to their names.
func SquareNames(squares []int) []string {
	return lo.Map(squares, func(sq int, _ int) string { return SquareName(sq) })
}

func validSquare(sq int) bool { return sq >= 0 && sq < 64 }

// KnightPath returns a shortest knight route between two squares, both ends
// included. from == to gives a single-square path.
func KnightPath(from, to int) ([]int, error) {
	if !validSquare(from) || !validSquare(to) {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSquare, from, to)
	}

	var parent [64]int
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from

	queue := []int{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == to {
			break
		}
		for next := engine.KnightMoves[curr]; next != 0; next &= next - 1 {
			sq := bits.TrailingZeros64(next)
			if parent[sq] != -1 {
				continue
			}
			parent[sq] = curr
			queue = append(queue, sq)
		}
	}

	path := []int{to}
	for sq := to; sq != from; sq = parent[sq] {
		path = append(path, parent[sq])
	}
	return lo.Reverse(path), nil
}

// KnightDistance is the number of knight moves between two squares.
func KnightDistance(from, to int) (int, error) {
	path, err := KnightPath(from, to)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// AttackSet lists the squares attacked by the piece on sq, in ascending
// order. An empty square attacks nothing.
func AttackSet(pos *engine.Position, sq int) ([]int, error) {
	if !validSquare(sq) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	var squares []int
	for bb := engine.AttacksFrom(pos.Board(), sq); bb != 0; bb &= bb - 1 {
		squares = append(squares, bits.TrailingZeros64(bb))
	}
	return squares, nil
}
