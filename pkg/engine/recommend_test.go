package engine

import (
	"strings"
	"testing"
)

func TestRecommendEmptyWhenTargetMet(t *testing.T) {
	if recs := Recommend(1852, 1300, 1200, 196, 448, 0.15); len(recs) != 0 {
		t.Fatalf("expected no recommendations for a qualifying deal, got %d", len(recs))
	}
}

func TestRecommendBothOptions(t *testing.T) {
	// rate 150 at rent 1400: profit70 = round(2677.5 - 1400 - 448) = 830
	recs := Recommend(830, 1300, 1400, 150, 448, 0.15)
	if len(recs) != 2 {
		t.Fatalf("expected both options, got %d: %+v", len(recs), recs)
	}
	if recs[0].Kind != "raise_rate" || recs[1].Kind != "negotiate_rent" {
		t.Fatalf("unexpected option kinds: %+v", recs)
	}
	// (1300 + 1400 + 448) / 17.85 = 176.35
	if recs[0].Value != 176 {
		t.Errorf("raise_rate value = %d; want 176", recs[0].Value)
	}
	// 2677.5 - 448 - 1300 = 929.5
	if recs[1].Value != 930 {
		t.Errorf("negotiate_rent value = %d; want 930", recs[1].Value)
	}
}

// When the required rate rounds down to the current rate, raising the rate
// would not close the gap and option A must not be fabricated.
func TestRecommendNoFabricatedRateOption(t *testing.T) {
	// rent 1755 at rate 196: profit70 = round(3498.6 - 1755 - 448) = 1296,
	// required rate = round(3503/17.85) = 196 = current rate.
	recs := Recommend(1296, 1300, 1755, 196, 448, 0.15)
	for _, r := range recs {
		if r.Kind == "raise_rate" {
			t.Fatalf("fabricated raise_rate option: %+v", r)
		}
	}
	if len(recs) != 1 || recs[0].Kind != "negotiate_rent" {
		t.Fatalf("expected only negotiate_rent, got %+v", recs)
	}
}

func TestRecommendationText(t *testing.T) {
	if got := RecommendationText(nil); got != "" {
		t.Errorf("empty set should render empty text, got %q", got)
	}

	recs := Recommend(830, 1300, 1400, 150, 448, 0.15)
	text := RecommendationText(recs)
	if !strings.Contains(text, "A: Raise nightly to £176") {
		t.Errorf("missing option A line: %q", text)
	}
	if !strings.Contains(text, "B: Negotiate rent to ~£930/mo") {
		t.Errorf("missing option B line: %q", text)
	}
	if len(strings.Split(text, "\n")) != 2 {
		t.Errorf("expected two lines, got %q", text)
	}
}
