package engine

import "testing"

func TestEvaluateQualifyingLead(t *testing.T) {
	lead, out := Evaluate(houseCandidate(), testAreaConfig())
	if !out.Eligible {
		t.Fatalf("expected eligible, got %q", out.Reason)
	}
	if lead == nil {
		t.Fatal("eligible candidate must produce a lead")
	}

	if lead.Profit70 != 1851 {
		t.Errorf("Profit70 = %d; want 1851", lead.Profit70)
	}
	if !lead.MeetsTarget {
		t.Error("profit 1851 >= target 1300 must qualify")
	}
	if lead.Band != BandTop {
		t.Errorf("Band = %q; want %q", lead.Band, BandTop)
	}
	if lead.Recommendation != "" {
		t.Errorf("qualifying lead must carry no recommendation, got %q", lead.Recommendation)
	}
	if lead.OverBy != 551 || lead.BelowBy != 0 {
		t.Errorf("OverBy/BelowBy = %d/%d; want 551/0", lead.OverBy, lead.BelowBy)
	}
	if !lead.Notable {
		t.Error("551 over target clears the £100 margin")
	}
	if lead.Area != "Wirral" || lead.BillsTotal != 448 {
		t.Errorf("area constants not carried: %s / %d", lead.Area, lead.BillsTotal)
	}
}

func TestEvaluateBorderlineRentStillQualifies(t *testing.T) {
	c := houseCandidate()
	c.RentPCM = intPtr(1490)

	lead, out := Evaluate(c, testAreaConfig())
	if !out.Eligible {
		t.Fatalf("expected eligible, got %q", out.Reason)
	}
	if lead.Profit70 != 1561 {
		t.Errorf("Profit70 = %d; want 1561", lead.Profit70)
	}
	if !lead.MeetsTarget {
		t.Error("1561 >= 1300 must qualify")
	}
}

func TestEvaluateNonQualifyingCarriesRecommendation(t *testing.T) {
	cfg := testAreaConfig()
	cfg.NightlyRate = 120 // net70 = 120*17.85 = 2142

	lead, out := Evaluate(houseCandidate(), cfg)
	if !out.Eligible {
		t.Fatalf("expected eligible, got %q", out.Reason)
	}
	// 2142 - 1200 - 448 = 494
	if lead.Profit70 != 494 {
		t.Errorf("Profit70 = %d; want 494", lead.Profit70)
	}
	if lead.MeetsTarget {
		t.Error("494 < 1300 must not qualify")
	}
	if lead.Band != BandBelow {
		t.Errorf("Band = %q; want %q", lead.Band, BandBelow)
	}
	if lead.Recommendation == "" {
		t.Error("non-qualifying lead should carry gap-closing advice")
	}
	if lead.BelowBy != 806 {
		t.Errorf("BelowBy = %d; want 806", lead.BelowBy)
	}
}

func TestEvaluateRejectedProducesNoLead(t *testing.T) {
	c := houseCandidate()
	c.Category = "STUDIO"

	lead, out := Evaluate(c, testAreaConfig())
	if out.Eligible {
		t.Fatal("studio must be rejected regardless of profit")
	}
	if lead != nil {
		t.Fatal("rejected candidate must not produce a lead")
	}
}
