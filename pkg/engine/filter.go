package engine

import (
	"strings"

	"github.com/thatguydan86/rentradar/pkg/areas"
)

// Reason explains why a candidate was rejected by the eligibility filter.
type Reason string

const (
	ReasonIncomplete         Reason = "incomplete"
	ReasonBedroomMismatch    Reason = "bedroom_mismatch"
	ReasonBathroomMismatch   Reason = "bathroom_mismatch"
	ReasonPriceOutOfRange    Reason = "price_out_of_range"
	ReasonDisallowedCategory Reason = "disallowed_category"
	ReasonDisallowedKeyword  Reason = "disallowed_keyword"
)

// Outcome is the per-candidate eligibility result. Rejections carry the
// first failing check's reason; they are routine filtering, not errors.
type Outcome struct {
	Eligible bool
	Reason   Reason
}

func eligible() Outcome         { return Outcome{Eligible: true} }
func rejected(r Reason) Outcome { return Outcome{Reason: r} }

// Property subtypes that are never a whole house.
var excludedCategories = map[string]struct{}{
	"FLAT":          {},
	"APARTMENT":     {},
	"MAISONETTE":    {},
	"STUDIO":        {},
	"FLAT SHARE":    {},
	"HOUSE SHARE":   {},
	"ROOM":          {},
	"NOT SPECIFIED": {},
	"BUNGALOW":      {},
}

// Free-text markers for deals that cannot work as rent-to-SA.
var excludedKeywords = []string{
	"RENT TO BUY", "RENT-TO-BUY", "RENT TO OWN", "RENT2BUY",
	"HOUSE SHARE", "ROOM SHARE", "SHARED", "HMO",
	"ALL BILLS INCLUDED", "BILLS INCLUDED", "INCLUSIVE OF BILLS",
}

// CheckEligibility runs the structural checks in fixed order and reports the
// first failure. A candidate with an absent bathroom count passes the
// bathroom check: absent means unknown, and unknowns are resolved by a human
// reading the lead, not by silently discarding the listing.
func CheckEligibility(c RawCandidate, cfg areas.Config) Outcome {
	if c.Bedrooms == nil || c.RentPCM == nil {
		return rejected(ReasonIncomplete)
	}
	if *c.Bedrooms < cfg.MinBedrooms || *c.Bedrooms > cfg.MaxBedrooms {
		return rejected(ReasonBedroomMismatch)
	}
	if c.Bathrooms != nil && *c.Bathrooms < cfg.MinBathrooms {
		return rejected(ReasonBathroomMismatch)
	}
	if *c.RentPCM > cfg.MaxPrice || (cfg.MinPrice > 0 && *c.RentPCM < cfg.MinPrice) {
		return rejected(ReasonPriceOutOfRange)
	}
	category := strings.ToUpper(strings.TrimSpace(c.Category))
	if _, banned := excludedCategories[category]; banned {
		return rejected(ReasonDisallowedCategory)
	}
	haystack := strings.ToUpper(c.Address + " " + c.Summary + " " + c.Title)
	for _, kw := range excludedKeywords {
		if strings.Contains(haystack, kw) {
			return rejected(ReasonDisallowedKeyword)
		}
	}
	return eligible()
}
