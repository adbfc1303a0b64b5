package engine

import "testing"

func TestBandForBoundaries(t *testing.T) {
	const target = 1300 // 0.7 * target = 910

	tests := []struct {
		profit70 int
		want     Band
	}{
		{1852, BandTop},
		{1300, BandTop}, // boundary is inclusive
		{1299, BandNear},
		{910, BandNear}, // boundary is inclusive
		{909, BandBelow},
		{0, BandBelow},
		{-500, BandBelow},
	}

	for _, tt := range tests {
		if got := BandFor(tt.profit70, target); got != tt.want {
			t.Errorf("BandFor(%d, %d) = %q; want %q", tt.profit70, target, got, tt.want)
		}
	}
}

func TestBandCoverageIsExhaustive(t *testing.T) {
	const target = 1300
	for p := -2000; p <= 4000; p++ {
		band := BandFor(p, target)
		if band != BandTop && band != BandNear && band != BandBelow {
			t.Fatalf("profit %d classified as unknown band %q", p, band)
		}
	}
}

func TestScore10(t *testing.T) {
	tests := []struct {
		profit70, target int
		want             float64
	}{
		{1300, 1300, 10},
		{1852, 1300, 10}, // clamped
		{650, 1300, 5},
		{0, 1300, 0},
		{-400, 1300, 0}, // clamped
		{1000, 1300, 7.7},
	}

	for _, tt := range tests {
		if got := Score10(tt.profit70, tt.target); got != tt.want {
			t.Errorf("Score10(%d, %d) = %v; want %v", tt.profit70, tt.target, got, tt.want)
		}
	}
}

func TestNotableIndependentOfBand(t *testing.T) {
	const target, margin = 1300, 100

	if Notable(1350, target, margin) {
		t.Error("green but only £50 over target should not be notable")
	}
	if !Notable(1400, target, margin) {
		t.Error("£100 over target should be notable (inclusive)")
	}
	if !Notable(1852, target, margin) {
		t.Error("£552 over target should be notable")
	}
}
