package engine

import (
	"fmt"
	"strings"
)

// Recommendation is one actionable adjustment that would close the gap to
// the profit target.
type Recommendation struct {
	Kind  string // "raise_rate" | "negotiate_rent"
	Value int
	Text  string
}

// Recommend returns the adjustments that would make a non-qualifying listing
// hit the target at 70% occupancy. Empty when the target is already met, and
// an option is only emitted when it actually moves the number in the right
// direction.
func Recommend(profit70, target, rent, rate, bills int, fee float64) []Recommendation {
	if profit70 >= target {
		return nil
	}

	var recs []Recommendation
	if adr := RequiredNightlyRate(target, rent, bills, fee, OccupancyDecision); adr > rate {
		recs = append(recs, Recommendation{
			Kind:  "raise_rate",
			Value: adr,
			Text:  fmt.Sprintf("A: Raise nightly to £%d", adr),
		})
	}
	if r := RequiredRent(target, rate, bills, fee, OccupancyDecision); r < rent {
		recs = append(recs, Recommendation{
			Kind:  "negotiate_rent",
			Value: r,
			Text:  fmt.Sprintf("B: Negotiate rent to ~£%d/mo", r),
		})
	}
	return recs
}

// RecommendationText joins recommendations into the webhook/preview block.
func RecommendationText(recs []Recommendation) string {
	if len(recs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, "• "+r.Text)
	}
	return strings.Join(lines, "\n")
}
