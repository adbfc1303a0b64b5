package areas

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the search constraints and profitability constants for one
// Rightmove region. Loaded once at startup and immutable afterwards.
type Config struct {
	Name     string // display name, e.g. "Wirral"
	Location string // Rightmove location identifier, e.g. "REGION^93365"

	NightlyRate int // assumed ADR for a short-let in this area, GBP/night
	CouncilTax  int // GBP/month
	Utilities   int // GBP/month (energy + water baseline)

	MinBedrooms  int
	MaxBedrooms  int
	MinBathrooms int
	MaxPrice     int // rent ceiling, GBP pcm
	MinPrice     int // optional rent floor, 0 = no floor

	Target        int     // required profit at 70% occupancy, GBP/month
	BookingFee    float64 // platform commission fraction, 0 <= fee < 1
	NotableMargin int     // (profit70 - target) >= margin flags a hot deal
}

// Bills returns the total monthly bills used by the profitability model.
func (c Config) Bills() int {
	return c.CouncilTax + c.Utilities
}

// Defaults applied to every area unless overridden per-area or via the
// search.*/profit.* config keys.
const (
	DefaultMinBedrooms   = 4
	DefaultMaxBedrooms   = 4
	DefaultMinBathrooms  = 2
	DefaultMaxPrice      = 1500
	DefaultUtilities     = 250
	DefaultTarget        = 1300
	DefaultBookingFee    = 0.15
	DefaultNotableMargin = 100
)

// Zero is a legal explicit value for the booking fee and the notable margin,
// so "not configured" is tracked with an out-of-band sentinel instead.
const (
	feeUnset    = -1
	marginUnset = -1
)

// builtIn returns the registry with nothing layered on, so Load can apply
// the global config keys before the hard-coded defaults.
func builtIn() []Config {
	return []Config{
		{Name: "Wirral", Location: "REGION^93365", NightlyRate: 196, CouncilTax: 198, BookingFee: feeUnset, NotableMargin: marginUnset},
		{Name: "Lincoln", Location: "REGION^804", NightlyRate: 178, CouncilTax: 188, BookingFee: feeUnset, NotableMargin: marginUnset},
		{Name: "Bridgwater", Location: "REGION^212", NightlyRate: 205, CouncilTax: 189, BookingFee: feeUnset, NotableMargin: marginUnset},
	}
}

// BuiltIn returns the default area registry used when the config file
// declares no areas of its own.
func BuiltIn() []Config {
	return applyDefaults(builtIn())
}

// Load reads the area registry from viper, falling back to the built-in
// registry when the config file declares none. The result is validated.
func Load(v *viper.Viper) ([]Config, error) {
	var cfgs []Config

	var raw []map[string]interface{}
	if err := v.UnmarshalKey("areas", &raw); err != nil {
		return nil, fmt.Errorf("parsing areas config: %w", err)
	}

	if len(raw) == 0 {
		cfgs = builtIn()
	} else {
		for _, m := range raw {
			sub := viper.New()
			for k, val := range m {
				sub.Set(k, val)
			}
			fee := float64(feeUnset)
			if sub.IsSet("booking_fee") {
				fee = sub.GetFloat64("booking_fee")
			}
			margin := marginUnset
			if sub.IsSet("notable_margin") {
				margin = sub.GetInt("notable_margin")
			}
			c := Config{
				Name:          sub.GetString("name"),
				Location:      sub.GetString("location"),
				NightlyRate:   sub.GetInt("nightly_rate"),
				CouncilTax:    sub.GetInt("council_tax"),
				Utilities:     sub.GetInt("utilities"),
				MinBedrooms:   sub.GetInt("min_bedrooms"),
				MaxBedrooms:   sub.GetInt("max_bedrooms"),
				MinBathrooms:  sub.GetInt("min_bathrooms"),
				MaxPrice:      sub.GetInt("max_price"),
				MinPrice:      sub.GetInt("min_price"),
				Target:        sub.GetInt("target"),
				BookingFee:    fee,
				NotableMargin: margin,
			}
			cfgs = append(cfgs, c)
		}
	}
	cfgs = applyGlobals(v, cfgs)
	cfgs = applyDefaults(cfgs)

	for i, c := range cfgs {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("area %d (%s): %w", i, c.Name, err)
		}
	}
	return cfgs, nil
}

// applyGlobals copies the search.*/profit.* config keys onto areas that did
// not set their own value.
func applyGlobals(v *viper.Viper, cfgs []Config) []Config {
	for i := range cfgs {
		c := &cfgs[i]
		if c.MaxPrice == 0 && v.IsSet("search.max_price") {
			c.MaxPrice = v.GetInt("search.max_price")
		}
		if c.MinPrice == 0 {
			c.MinPrice = v.GetInt("search.min_price")
		}
		if c.Utilities == 0 && v.IsSet("profit.utilities") {
			c.Utilities = v.GetInt("profit.utilities")
		}
		if c.Target == 0 && v.IsSet("profit.target") {
			c.Target = v.GetInt("profit.target")
		}
		if c.BookingFee == feeUnset && v.IsSet("profit.booking_fee") {
			c.BookingFee = v.GetFloat64("profit.booking_fee")
		}
		if c.NotableMargin == marginUnset && v.IsSet("profit.notable_margin") {
			c.NotableMargin = v.GetInt("profit.notable_margin")
		}
	}
	return cfgs
}

func applyDefaults(cfgs []Config) []Config {
	for i := range cfgs {
		c := &cfgs[i]
		if c.MinBedrooms == 0 {
			c.MinBedrooms = DefaultMinBedrooms
		}
		if c.MaxBedrooms == 0 {
			c.MaxBedrooms = DefaultMaxBedrooms
		}
		if c.MinBathrooms == 0 {
			c.MinBathrooms = DefaultMinBathrooms
		}
		if c.MaxPrice == 0 {
			c.MaxPrice = DefaultMaxPrice
		}
		if c.Utilities == 0 {
			c.Utilities = DefaultUtilities
		}
		if c.Target == 0 {
			c.Target = DefaultTarget
		}
		if c.BookingFee == feeUnset {
			c.BookingFee = DefaultBookingFee
		}
		if c.NotableMargin == marginUnset {
			c.NotableMargin = DefaultNotableMargin
		}
	}
	return cfgs
}

// Validate rejects configs the engine cannot safely evaluate with.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	if c.Location == "" {
		return fmt.Errorf("missing location identifier")
	}
	if c.NightlyRate <= 0 {
		return fmt.Errorf("nightly rate must be positive, got %d", c.NightlyRate)
	}
	if c.CouncilTax < 0 || c.Utilities < 0 {
		return fmt.Errorf("bills cannot be negative")
	}
	if c.BookingFee < 0 || c.BookingFee >= 1 {
		return fmt.Errorf("booking fee must be in [0,1), got %v", c.BookingFee)
	}
	if c.MinBedrooms > c.MaxBedrooms {
		return fmt.Errorf("bedroom bounds out of order: %d > %d", c.MinBedrooms, c.MaxBedrooms)
	}
	if c.MinPrice < 0 || (c.MinPrice > 0 && c.MinPrice > c.MaxPrice) {
		return fmt.Errorf("price floor %d conflicts with ceiling %d", c.MinPrice, c.MaxPrice)
	}
	if c.Target <= 0 {
		return fmt.Errorf("profit target must be positive, got %d", c.Target)
	}
	if c.NotableMargin < 0 {
		return fmt.Errorf("notable margin cannot be negative, got %d", c.NotableMargin)
	}
	return nil
}
