package graph

import (
	"errors"
	"reflect"
	"testing"

	"graph-chess/engine"
)

func sq(t *testing.T, name string) int {
	t.Helper()
	s, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("parse square %s: %v", name, err)
	}
	return s
}

func TestKnightPathDistances(t *testing.T) {
	cases := []struct {
		from, to string
		moves    int
	}{
		{"a1", "a1", 0},
		{"g1", "f3", 1},
		{"a1", "b2", 4},
		{"a1", "h8", 6},
		{"e4", "e5", 3},
		{"b1", "c3", 1},
	}
	for _, tc := range cases {
		path, err := KnightPath(sq(t, tc.from), sq(t, tc.to))
		if err != nil {
			t.Fatalf("%s-%s: %v", tc.from, tc.to, err)
		}
		if len(path)-1 != tc.moves {
			t.Fatalf("%s-%s: expected %d moves, got path %v", tc.from, tc.to, tc.moves, SquareNames(path))
		}
		if path[0] != sq(t, tc.from) || path[len(path)-1] != sq(t, tc.to) {
			t.Fatalf("%s-%s: path endpoints wrong: %v", tc.from, tc.to, SquareNames(path))
		}
		for i := 1; i < len(path); i++ {
			if engine.KnightMoves[path[i-1]]&(uint64(1)<<uint(path[i])) == 0 {
				t.Fatalf("%s-%s: %s to %s is not a knight move", tc.from, tc.to, SquareName(path[i-1]), SquareName(path[i]))
			}
		}
	}
}

func TestKnightPathInvalidSquare(t *testing.T) {
	if _, err := KnightPath(-1, 10); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("expected ErrInvalidSquare, got %v", err)
	}
	if _, err := ParseSquare("i9"); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("expected ErrInvalidSquare, got %v", err)
	}
}

func TestAttackSet(t *testing.T) {
	pos, err := engine.NewPosition("4k3/8/8/8/3R4/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		square string
		want   []string
	}{
		// Rook stops at the d2 pawn and runs free elsewhere.
		{"d4", []string{"d2", "d3", "a4", "b4", "c4", "e4", "f4", "g4", "h4", "d5", "d6", "d7", "d8"}},
		{"d2", []string{"c3", "e3"}},
		{"e1", []string{"d1", "f1", "d2", "e2", "f2"}},
		{"a5", nil},
	}
	for _, tc := range cases {
		got, err := AttackSet(pos, sq(t, tc.square))
		if err != nil {
			t.Fatal(err)
		}
		if names := SquareNames(got); !reflect.DeepEqual(names, tc.want) && !(len(names) == 0 && len(tc.want) == 0) {
			t.Fatalf("%s: expected %v, got %v", tc.square, tc.want, names)
		}
	}
}

func TestSquareNameRoundTrip(t *testing.T) {
	for s := 0; s < 64; s++ {
		if got := sq(t, SquareName(s)); got != s {
			t.Fatalf("square %d round-tripped to %d", s, got)
		}
	}
}
