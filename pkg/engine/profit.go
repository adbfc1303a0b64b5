package engine

import "math"

// Occupancy points the model is evaluated at. 70% is the decision metric.
const (
	OccupancyLow      = 0.5
	OccupancyDecision = 0.7
	OccupancyFull     = 1.0
)

// daysPerMonth is a fixed month-length approximation, not calendar-accurate.
const daysPerMonth = 30

// requiredRentFloorsAtZero: a computed break-even rent below zero is clamped
// to 0 rather than reported as a negative number.
const requiredRentFloorsAtZero = true

// monthlyNet projects net monthly income from a nightly rate at the given
// occupancy, after the booking fee.
func monthlyNet(rate int, occupancy, fee float64) float64 {
	gross := float64(rate) * occupancy * daysPerMonth
	return gross * (1 - fee)
}

// ProfitAt returns the projected monthly profit at the given occupancy,
// rounded to the nearest pound (half away from zero).
func ProfitAt(rent, rate, bills int, fee, occupancy float64) int {
	return int(math.Round(monthlyNet(rate, occupancy, fee) - float64(rent) - float64(bills)))
}

// Profits holds the model output at the three fixed occupancy points.
type Profits struct {
	At50  int
	At70  int
	At100 int
}

func ComputeProfits(rent, rate, bills int, fee float64) Profits {
	return Profits{
		At50:  ProfitAt(rent, rate, bills, fee, OccupancyLow),
		At70:  ProfitAt(rent, rate, bills, fee, OccupancyDecision),
		At100: ProfitAt(rent, rate, bills, fee, OccupancyFull),
	}
}

// RequiredNightlyRate returns the minimum nightly rate that reaches the
// target profit at the given occupancy. A degenerate denominator (zero
// occupancy, or a 100% booking fee) yields 0.
func RequiredNightlyRate(target, rent, bills int, fee, occupancy float64) int {
	denom := occupancy * daysPerMonth * (1 - fee)
	if denom <= 0 {
		return 0
	}
	netNeeded := float64(target + rent + bills)
	return int(math.Round(netNeeded / denom))
}

// RequiredRent returns the maximum rent that still reaches the target profit
// at the given occupancy.
func RequiredRent(target, rate, bills int, fee, occupancy float64) int {
	r := int(math.Round(monthlyNet(rate, occupancy, fee) - float64(bills) - float64(target)))
	if requiredRentFloorsAtZero && r < 0 {
		return 0
	}
	return r
}
