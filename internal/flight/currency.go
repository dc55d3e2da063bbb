package flight

import "math"

// USDToINRRate is the fixed display conversion rate. Sourcing a live rate is
// out of scope; swap in a rate provider if that changes.
const USDToINRRate = 83.5

// ApplyRate converts every price in the result set at the given rate and
// retags the currency. Pure and order-preserving; each figure is rounded
// independently, so converted components may not sum exactly to a converted
// total. That approximation is accepted, not a defect.
func ApplyRate(flights []Flight, rate float64, currency string) []Flight {
	converted := make([]Flight, len(flights))
	for i, f := range flights {
		f.Price = int(math.Round(float64(f.Price) * rate))
		f.Currency = currency
		converted[i] = f
	}
	return converted
}

// ConvertUSDToINR applies the fixed USD→INR rate to a normalized result set.
func ConvertUSDToINR(flights []Flight) []Flight {
	return ApplyRate(flights, USDToINRRate, "INR")
}
