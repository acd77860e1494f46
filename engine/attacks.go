package engine

import (
	"math/bits"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
)

const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080
)

var (
	KingMoves   [64]uint64
	KnightMoves [64]uint64
	// PawnAttacks[c][sq] holds the squares a pawn of colour c on sq attacks.
	PawnAttacks [2][64]uint64
)

var centerSquares = [4]int{27, 28, 35, 36} // d4 e4 d5 e5

func init() {
	initAttackTables()
}

func initAttackTables() {
	for sq := 0; sq < 64; sq++ {
		sqBB := uint64(1) << uint(sq)

		left := (sqBB >> 1) &^ bitboardFileH
		right := (sqBB << 1) &^ bitboardFileA
		row := sqBB | left | right
		KingMoves[sq] = (row | row<<8 | row>>8) &^ sqBB

		l1 := (sqBB >> 1) &^ bitboardFileH
		l2 := (sqBB >> 2) &^ (bitboardFileH | bitboardFileH>>1)
		r1 := (sqBB << 1) &^ bitboardFileA
		r2 := (sqBB << 2) &^ (bitboardFileA | bitboardFileA<<1)
		KnightMoves[sq] = (l1|r1)<<16 | (l1|r1)>>16 | (l2|r2)<<8 | (l2|r2)>>8

		PawnAttacks[gm.White][sq] = ((sqBB << 7) &^ bitboardFileH) | ((sqBB << 9) &^ bitboardFileA)
		PawnAttacks[gm.Black][sq] = ((sqBB >> 9) &^ bitboardFileH) | ((sqBB >> 7) &^ bitboardFileA)
	}
}

func rookAttacks(sq int, occ uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
}

func bishopAttacks(sq int, occ uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
}

// AttackersTo returns the bitboard of pieces of colour by that attack sq.
func AttackersTo(b *gm.Board, sq int, by gm.Color) uint64 {
	own := b.Bitboards(by)
	occ := b.Bitboards(gm.White).All | b.Bitboards(gm.Black).All

	attackers := PawnAttacks[by^1][sq] & own.Pawns
	attackers |= KnightMoves[sq] & own.Knights
	attackers |= KingMoves[sq] & own.Kings
	attackers |= bishopAttacks(sq, occ) & (own.Bishops | own.Queens)
	attackers |= rookAttacks(sq, occ) & (own.Rooks | own.Queens)
	return attackers
}

// AttacksFrom returns the squares attacked by the piece standing on sq.
func AttacksFrom(b *gm.Board, sq int) uint64 {
	p := b.PieceAt(gm.Square(sq))
	occ := b.Bitboards(gm.White).All | b.Bitboards(gm.Black).All
	switch p.Type() {
	case gm.PieceTypePawn:
		return PawnAttacks[p.Color()][sq]
	case gm.PieceTypeKnight:
		return KnightMoves[sq]
	case gm.PieceTypeBishop:
		return bishopAttacks(sq, occ)
	case gm.PieceTypeRook:
		return rookAttacks(sq, occ)
	case gm.PieceTypeQueen:
		return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
	case gm.PieceTypeKing:
		return KingMoves[sq]
	}
	return 0
}

// centerControl counts the central squares attacked by side c.
func centerControl(b *gm.Board, c gm.Color) int {
	n := 0
	for _, sq := range centerSquares {
		if AttackersTo(b, sq, c) != 0 {
			n++
		}
	}
	return n
}

// kingThreat sums, over the squares around c's king, the number of enemy
// pieces attacking each of them.
func kingThreat(b *gm.Board, c gm.Color) int {
	kings := b.Bitboards(c).Kings
	if kings == 0 {
		return 0
	}
	ksq := bits.TrailingZeros64(kings)
	threat := 0
	for zone := KingMoves[ksq]; zone != 0; zone &= zone - 1 {
		threat += bits.OnesCount64(AttackersTo(b, bits.TrailingZeros64(zone), c^1))
	}
	return threat
}
