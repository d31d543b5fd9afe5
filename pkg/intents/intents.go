// Package intents expands user-editable payment intents (one-off or
// recurring extra payments and forgiveness grants) into flat month-indexed
// amount maps consumed by the schedule builder.
package intents

import (
	"github.com/finsim/loan-recast/pkg/constants"
	"github.com/finsim/loan-recast/pkg/mathutil"
)

// Intent describes a principal-reduction intent anchored to a 1-based month
// index of the loan.
type Intent struct {
	Amount      float64
	StartMonth  int
	Recurring   bool
	Frequency   int // months between occurrences; 1 = monthly, 12 = annually
	Occurrences int // 0 = unbounded
	EndMonth    int // 0 = unbounded; inclusive
}

// Expand flattens a list of intents into a month -> amount map for a loan of
// termMonths months. Amounts landing on the same month are summed.
//
// Malformed intents are normalized rather than rejected: negative amounts
// clamp to zero, start months below 1 are dropped, start months past the
// term clamp to the final month, and a recurring intent stops at whichever
// bound fires first (occurrence count, end month, loan term).
func Expand(list []Intent, termMonths int) map[int]float64 {
	out := make(map[int]float64)
	if termMonths < 1 {
		return out
	}

	for _, intent := range list {
		amount := mathutil.Max(0, intent.Amount)
		if amount == 0 || intent.StartMonth < 1 {
			continue
		}

		if !intent.Recurring {
			month := intent.StartMonth
			if month > termMonths {
				month = termMonths
			}
			out[month] += amount
			continue
		}

		step := intent.Frequency
		if step != constants.AnnualFrequency {
			step = constants.DefaultFrequency
		}
		occurrences := 0
		for month := intent.StartMonth; month <= termMonths; month += step {
			if intent.EndMonth > 0 && month > intent.EndMonth {
				break
			}
			out[month] += amount
			occurrences++
			if intent.Occurrences > 0 && occurrences >= intent.Occurrences {
				break
			}
		}
	}

	return out
}
