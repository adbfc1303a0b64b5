// Package engine implements the evaluation core: the eligibility filter, the
// nightly-rate/occupancy profitability model, scoring and banding, and the
// gap-closing recommendation generator. Everything here is a pure function
// of a candidate and an area config; no network, no shared state.
package engine

import (
	"github.com/thatguydan86/rentradar/pkg/areas"
)

// Evaluate runs a candidate through the full pipeline. The Outcome reports
// eligibility; the Lead is non-nil only for eligible candidates and is
// complete and immutable once returned.
func Evaluate(c RawCandidate, cfg areas.Config) (*Lead, Outcome) {
	out := CheckEligibility(c, cfg)
	if !out.Eligible {
		return nil, out
	}

	rent := *c.RentPCM
	bills := cfg.Bills()
	profits := ComputeProfits(rent, cfg.NightlyRate, bills, cfg.BookingFee)
	meets := profits.At70 >= cfg.Target

	requiredADR := RequiredNightlyRate(cfg.Target, rent, bills, cfg.BookingFee, OccupancyDecision)
	requiredRent := RequiredRent(cfg.Target, cfg.NightlyRate, bills, cfg.BookingFee, OccupancyDecision)
	recs := Recommend(profits.At70, cfg.Target, rent, cfg.NightlyRate, bills, cfg.BookingFee)

	lead := &Lead{
		ID:        c.ID,
		Area:      cfg.Name,
		Address:   c.Address,
		RentPCM:   rent,
		Bedrooms:  *c.Bedrooms,
		Bathrooms: c.Bathrooms,
		Category:  c.Category,
		URL:       c.URL,

		NightRate:  cfg.NightlyRate,
		BillsTotal: bills,
		CouncilTax: cfg.CouncilTax,
		Utilities:  cfg.Utilities,

		Profit50:  profits.At50,
		Profit70:  profits.At70,
		Profit100: profits.At100,

		Target:      cfg.Target,
		MeetsTarget: meets,
		Band:        BandFor(profits.At70, cfg.Target),
		Score:       Score10(profits.At70, cfg.Target),
		Notable:     Notable(profits.At70, cfg.Target, cfg.NotableMargin),
		OverBy:      max(0, profits.At70-cfg.Target),
		BelowBy:     max(0, cfg.Target-profits.At70),

		RequiredNightlyRate: requiredADR,
		RequiredRent:        requiredRent,
		Recommendation:      RecommendationText(recs),
	}
	return lead, out
}
