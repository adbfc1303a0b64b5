package engine

import "math"

// Band is the three-level RAG classification of a listing's profitability
// relative to target. Boundaries are inclusive on each band's lower value.
type Band string

const (
	BandTop   Band = "green" // profit70 >= target
	BandNear  Band = "amber" // profit70 >= 0.7 * target
	BandBelow Band = "red"
)

// BandFor classifies profit70 against the target.
func BandFor(profit70, target int) Band {
	switch {
	case profit70 >= target:
		return BandTop
	case float64(profit70) >= 0.7*float64(target):
		return BandNear
	default:
		return BandBelow
	}
}

// Score10 maps profit70 onto a 0..10 scale against the target, rounded to
// one decimal.
func Score10(profit70, target int) float64 {
	s := float64(profit70) / float64(target) * 10
	s = math.Max(0, math.Min(10, s))
	return math.Round(s*10) / 10
}

// Notable reports whether profit70 clears the target by at least the
// configured margin. Independent of banding: a green listing is not
// necessarily notable.
func Notable(profit70, target, margin int) bool {
	return profit70-target >= margin
}
