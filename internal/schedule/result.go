package schedule

// ChartPoint is one plottable point per simulated month.
type ChartPoint struct {
	Month          int     `json:"month"`
	Date           string  `json:"date"`
	Balance        float64 `json:"balance"`
	CumInterest    float64 `json:"cumInterest"`
	CumPrincipal   float64 `json:"cumPrincipal"`
	CumForgiveness float64 `json:"cumForgiveness"`
}

// aggregate derives the payoff month and chart projection from the built
// row sequence. It is a single forward pass; segments are already
// accumulated by the builder and carried through untouched.
func aggregate(result *Result) {
	if len(result.Rows) == 0 {
		result.PayoffMonth = 0
		return
	}
	result.PayoffMonth = result.Rows[len(result.Rows)-1].Index

	result.Chart = make([]ChartPoint, len(result.Rows))
	for i, row := range result.Rows {
		result.Chart[i] = ChartPoint{
			Month:          row.Index,
			Date:           row.DateString,
			Balance:        row.Balance,
			CumInterest:    row.CumInterest,
			CumPrincipal:   row.CumPrincipal,
			CumForgiveness: row.CumForgiveness,
		}
	}
}
