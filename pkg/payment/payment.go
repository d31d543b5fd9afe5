// Package payment provides the level-payment amortization formula.
package payment

import (
	"math"

	"github.com/finsim/loan-recast/pkg/constants"
	"github.com/finsim/loan-recast/pkg/mathutil"
)

// Calc computes the fixed monthly payment that amortizes principal over
// numMonths at the given periodic (monthly) interest rate, rounded to the
// cent.
//
// The zero-rate branch must be taken before evaluating the exponential term;
// the discount factor degenerates as the rate approaches zero.
func Calc(principal, monthlyRate float64, numMonths int) float64 {
	if numMonths <= 0 {
		return 0
	}
	if math.Abs(monthlyRate) < constants.RateEpsilon {
		return mathutil.Round(principal / float64(numMonths))
	}

	power := math.Pow(1.00+monthlyRate, float64(numMonths))
	discountFactor := (power - 1.00) / power
	return mathutil.Round(principal * monthlyRate / discountFactor)
}

// MonthlyRate converts a nominal annual percentage rate to a periodic
// monthly rate, e.g. 6.0 -> 0.005.
func MonthlyRate(annualRatePct float64) float64 {
	return annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Interest computes the interest accrued on a balance for one month,
// rounded to the cent.
func Interest(balance, monthlyRate float64) float64 {
	return mathutil.Round(balance * monthlyRate)
}
