// Package comparison computes interest and time savings between a loan's
// unmodified repayment plan and a user-modified plan.
package comparison

import (
	"github.com/finsim/loan-recast/internal/schedule"
	"github.com/finsim/loan-recast/pkg/mathutil"
	"go.uber.org/zap"
)

// Comparison holds the baseline and modified results side by side with the
// derived savings figures.
type Comparison struct {
	Baseline schedule.Result `json:"baseline"`
	Actual   schedule.Result `json:"actual"`

	InterestSaved    float64 `json:"interestSaved"`
	MonthsSaved      int     `json:"monthsSaved"`
	TotalPaidDelta   float64 `json:"totalPaidDelta"`
	TotalForgiveness float64 `json:"totalForgiveness"`

	BaselinePayoffDate string `json:"baselinePayoffDate,omitempty"`
	ActualPayoffDate   string `json:"actualPayoffDate,omitempty"`
}

// Compare runs two independent simulations, one with the principal
// reductions and recasting stripped out and one as configured, and derives
// the savings between them.
func Compare(logger *zap.Logger, params schedule.Params) Comparison {
	if logger == nil {
		logger = zap.NewNop()
	}
	builder := schedule.NewBuilder(logger)

	baseline := builder.Build(params.Baseline())
	actual := builder.Build(params)

	comp := Comparison{
		Baseline:         baseline,
		Actual:           actual,
		InterestSaved:    mathutil.Round(baseline.TotalInterest - actual.TotalInterest),
		MonthsSaved:      baseline.PayoffMonth - actual.PayoffMonth,
		TotalPaidDelta:   mathutil.Round(baseline.TotalPaid - actual.TotalPaid),
		TotalForgiveness: actual.TotalForgiveness,
	}
	if len(baseline.Rows) > 0 {
		comp.BaselinePayoffDate = baseline.Rows[len(baseline.Rows)-1].DateString
	}
	if len(actual.Rows) > 0 {
		comp.ActualPayoffDate = actual.Rows[len(actual.Rows)-1].DateString
	}

	logger.Debug("compared repayment plans",
		zap.Float64("interestSaved", comp.InterestSaved),
		zap.Int("monthsSaved", comp.MonthsSaved),
	)
	return comp
}
