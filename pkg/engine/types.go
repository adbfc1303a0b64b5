package engine

// RawCandidate is one listing as returned by the search collaborator, after
// the single parse step. Pointer fields are absent when the upstream record
// did not carry them; absent is unknown, not zero.
type RawCandidate struct {
	ID        string
	Bedrooms  *int
	Bathrooms *int
	RentPCM   *int
	Category  string
	Address   string
	Summary   string
	Title     string
	URL       string // absolute display URL, resolved by the fetcher
}

// Lead is the evaluated, qualifying output unit. Immutable after creation;
// its JSON shape is the webhook delivery payload.
type Lead struct {
	ID        string `json:"id"`
	Area      string `json:"area"`
	Address   string `json:"address"`
	RentPCM   int    `json:"rent_pcm"`
	Bedrooms  int    `json:"bedrooms"`
	Bathrooms *int   `json:"bathrooms,omitempty"`
	Category  string `json:"category"`
	URL       string `json:"url"`

	NightRate  int `json:"night_rate"`
	BillsTotal int `json:"bills_total"`
	CouncilTax int `json:"council_tax_monthly"`
	Utilities  int `json:"utils_base_monthly"`

	Profit50  int `json:"profit_50"`
	Profit70  int `json:"profit_70"`
	Profit100 int `json:"profit_100"`

	Target      int     `json:"target_profit_70"`
	MeetsTarget bool    `json:"meets_target"`
	Band        Band    `json:"rag"`
	Score       float64 `json:"score10"`
	Notable     bool    `json:"hot_deal"`
	OverBy      int     `json:"over_by"`
	BelowBy     int     `json:"below_by"`

	RequiredNightlyRate int    `json:"to_target_adr"`
	RequiredRent        int    `json:"to_target_rent"`
	Recommendation      string `json:"recommendation,omitempty"`
}
