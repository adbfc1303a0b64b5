package notify

import (
	"fmt"
	"strings"

	"github.com/thatguydan86/rentradar/pkg/engine"
)

var bandEmoji = map[engine.Band]string{
	engine.BandTop:   "🟢",
	engine.BandNear:  "🟡",
	engine.BandBelow: "🔴",
}

// Preview renders the human-readable lead block printed to the console
// alongside webhook delivery.
func Preview(l engine.Lead) string {
	var b strings.Builder

	baths := "?"
	if l.Bathrooms != nil {
		baths = fmt.Sprintf("%d", *l.Bathrooms)
	}

	fmt.Fprintf(&b, "🔔 New Rent-to-SA Lead (%s) %s\n", l.Area, bandEmoji[l.Band])
	fmt.Fprintf(&b, "📍 %s\n", l.Address)
	fmt.Fprintf(&b, "🏠 %d-bed %s | 🛁 %s baths\n", l.Bedrooms, l.Category, baths)
	fmt.Fprintf(&b, "💰 Rent: £%d/mo | Bills: £%d/mo (CT £%d + utils £%d)\n",
		l.RentPCM, l.BillsTotal, l.CouncilTax, l.Utilities)
	fmt.Fprintf(&b, "🔗 %s\n\n", l.URL)
	fmt.Fprintf(&b, "📊 Profit (Nightly £%d, score %.1f/10)\n", l.NightRate, l.Score)
	fmt.Fprintf(&b, "• 50%% → £%d\n", l.Profit50)
	fmt.Fprintf(&b, "• 70%% → £%d   🎯 Target: £%d\n", l.Profit70, l.Target)
	fmt.Fprintf(&b, "• 100%% → £%d\n", l.Profit100)
	if l.Notable {
		b.WriteString("🔥 Hot deal\n")
	}
	if !l.MeetsTarget && l.Recommendation != "" {
		fmt.Fprintf(&b, "\n💡 A/B to hit target @ 70%%:\n%s\n", l.Recommendation)
	}
	return b.String()
}
