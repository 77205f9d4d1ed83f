// Package tax implements Romanian VAT (TVA) arithmetic.
package tax

import "math"

// Breakdown is the result of a VAT computation.
type Breakdown struct {
	TVA   float64 `json:"TVA"`
	Total float64 `json:"Total"`
}

// Calculate returns the VAT amount and VAT-inclusive total for the given net
// amount and rate in percent, both rounded to two decimals.
func Calculate(suma, cotaTVA float64) Breakdown {
	tva := suma * cotaTVA / 100
	return Breakdown{
		TVA:   round2(tva),
		Total: round2(suma + tva),
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
