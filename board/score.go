package board

import "golang.org/x/exp/constraints"

// Score is a material score. It stays inside the signed-byte range so that ScoreMate and
// its negation are the extremes.
type Score int8

const (
	ScoreMate Score = 127
	ScoreMin  Score = -ScoreMate
)

// Add sums two scores, saturating at ±ScoreMate.
func (s Score) Add(o Score) Score {
	return Score(Clamp(int16(s)+int16(o), int16(ScoreMin), int16(ScoreMate)))
}

func (s Score) Neg() Score {
	return Score(Clamp(-int16(s), int16(ScoreMin), int16(ScoreMate)))
}

func Clamp[T constraints.Integer](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
