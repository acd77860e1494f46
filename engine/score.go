package engine

import "fmt"

const (
	MaxScore  int32 = 32500
	MateScore int32 = 32000
	DrawScore int32 = 0

	// Scores beyond MateThreshold encode a forced mate.
	MateThreshold = MateScore - 1000

	MaxPly = 64
)

// IsMateScore reports whether score encodes a forced mate for either side.
func IsMateScore(score int32) bool {
	return score > MateThreshold || score < -MateThreshold
}

// MateIn returns the moves to mate encoded in score, negative when the side
// to move is getting mated, and 0 for ordinary scores.
func MateIn(score int32) int {
	if score > MateThreshold {
		return int(MateScore-score+1) / 2
	} else if score < -MateThreshold {
		return -int(MateScore+score+1) / 2
	}
	return 0
}

// getMateOrCPScore formats a score for UCI "info ... score" output.
func getMateOrCPScore(score int32) string {
	if IsMateScore(score) {
		return fmt.Sprintf("mate %d", MateIn(score))
	}
	return fmt.Sprintf("cp %d", score)
}

// UCIScore is the exported form of getMateOrCPScore.
func UCIScore(score int32) string { return getMateOrCPScore(score) }

// FormatPawns renders a centipawn score in pawns with an explicit sign
// (+0.35, -1.20); mates render as #N / #-N.
func FormatPawns(score int32) string {
	if IsMateScore(score) {
		return fmt.Sprintf("#%d", MateIn(score))
	}
	return fmt.Sprintf("%+.2f", float64(score)/100)
}
