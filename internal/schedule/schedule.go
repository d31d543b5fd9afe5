// Package schedule implements the month-by-month repayment simulation for a
// fixed-rate installment loan under extra principal payments, principal
// forgiveness, and payment recasting.
package schedule

import (
	"github.com/finsim/loan-recast/pkg/calendar"
	"github.com/finsim/loan-recast/pkg/constants"
	"github.com/finsim/loan-recast/pkg/mathutil"
	"github.com/finsim/loan-recast/pkg/payment"
	"go.uber.org/zap"
)

// Params holds the complete input for one simulation. Maps are keyed by the
// 1-based month index; an absent key means zero for that month.
type Params struct {
	Principal         float64
	AnnualRatePct     float64
	TermMonths        int
	Start             calendar.YearMonth
	Extra             map[int]float64
	Forgiveness       map[int]float64
	RecastMonths      map[int]bool
	AutoRecastOnExtra bool
}

// Baseline returns a copy of the params with all principal reductions and
// recasting removed, for computing the unmodified repayment plan.
func (p Params) Baseline() Params {
	return Params{
		Principal:     p.Principal,
		AnnualRatePct: p.AnnualRatePct,
		TermMonths:    p.TermMonths,
		Start:         p.Start,
	}
}

// Row is one ledger entry for a simulated month.
type Row struct {
	Index          int                `json:"index"`
	Date           calendar.YearMonth `json:"-"`
	DateString     string             `json:"date"`
	Payment        float64            `json:"payment"`
	Interest       float64            `json:"interest"`
	Principal      float64            `json:"principal"`
	Extra          float64            `json:"extra"`
	Forgiveness    float64            `json:"forgiveness"`
	TotalPaid      float64            `json:"totalPaid"`
	Balance        float64            `json:"balance"`
	CumInterest    float64            `json:"cumInterest"`
	CumPrincipal   float64            `json:"cumPrincipal"`
	CumForgiveness float64            `json:"cumForgiveness"`
	Recast         bool               `json:"recast,omitempty"`
	NewPayment     float64            `json:"newPayment,omitempty"`
}

// Segment is a contiguous run of months sharing one scheduled payment level.
type Segment struct {
	StartMonth int     `json:"startMonth"`
	Payment    float64 `json:"payment"`
}

// Result is the complete outcome of one simulation. It is built fresh by
// every Build call and never mutated afterwards.
type Result struct {
	Rows             []Row        `json:"rows"`
	TotalInterest    float64      `json:"totalInterest"`
	TotalPaid        float64      `json:"totalPaid"`
	TotalForgiveness float64      `json:"totalForgiveness"`
	PayoffMonth      int          `json:"payoffMonth"`
	Segments         []Segment    `json:"segments"`
	Chart            []ChartPoint `json:"chart"`
}

// Builder runs simulations. The zero value is not usable; construct with
// NewBuilder.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a schedule builder. A nil logger disables logging.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Build runs one simulation with logging disabled.
func Build(params Params) Result {
	return NewBuilder(nil).Build(params)
}

// Build simulates the repayment of the loan described by params and returns
// the full per-month ledger with aggregate totals. It is a total function:
// malformed inputs are normalized and a hard iteration ceiling bounds the
// loop, so it never panics and always terminates.
func (b *Builder) Build(params Params) Result {
	rate := payment.MonthlyRate(mathutil.Max(0, params.AnnualRatePct))
	balance := mathutil.Round(mathutil.Max(0, params.Principal))
	term := params.TermMonths

	level := payment.Calc(balance, rate, term)
	result := Result{
		Segments: []Segment{{StartMonth: 1, Payment: level}},
	}

	var cumInterest, cumPrincipal, cumForgiveness float64
	ceiling := term + constants.SafetyMarginMonths

	for m := 1; balance > constants.MinBalanceEpsilon && m <= ceiling; m++ {
		interest := payment.Interest(balance, rate)
		payoff := mathutil.Round(balance + interest)

		scheduled := mathutil.Min(level, payoff)
		principal := mathutil.Max(0, mathutil.Round(scheduled-interest))

		// Extra and forgiveness caps are each evaluated against the
		// pre-transaction balance; see the result invariants for why the
		// new balance is still clamped at zero.
		extra := mathutil.Clamp(params.Extra[m], 0, mathutil.Round(balance+interest-principal))
		forgiven := mathutil.Clamp(params.Forgiveness[m], 0, mathutil.Round(balance))

		newBalance := mathutil.Max(0, mathutil.Round(balance-principal-extra-forgiven))

		cumInterest = mathutil.Round(cumInterest + interest)
		cumPrincipal = mathutil.Round(cumPrincipal + principal + extra)
		cumForgiveness = mathutil.Round(cumForgiveness + forgiven)
		result.TotalInterest = cumInterest
		result.TotalPaid = mathutil.Round(result.TotalPaid + scheduled + extra)
		result.TotalForgiveness = cumForgiveness

		date := params.Start.AddMonths(m - 1)
		row := Row{
			Index:          m,
			Date:           date,
			DateString:     date.String(),
			Payment:        scheduled,
			Interest:       interest,
			Principal:      principal,
			Extra:          extra,
			Forgiveness:    forgiven,
			TotalPaid:      mathutil.Round(scheduled + extra),
			Balance:        newBalance,
			CumInterest:    cumInterest,
			CumPrincipal:   cumPrincipal,
			CumForgiveness: cumForgiveness,
		}

		if b.recastFires(params, m, extra, forgiven) && m < term && newBalance > 0 {
			candidate := payment.Calc(newBalance, rate, term-m)
			row.Recast = true
			if !mathutil.WithinTolerance(candidate, level, constants.RecastThreshold) {
				b.logger.Debug("recasting payment level",
					zap.Int("month", m),
					zap.Float64("balance", newBalance),
					zap.Float64("oldPayment", level),
					zap.Float64("newPayment", candidate),
				)
				level = candidate
				row.NewPayment = candidate
				result.Segments = append(result.Segments, Segment{StartMonth: m + 1, Payment: candidate})
			}
		}

		result.Rows = append(result.Rows, row)
		balance = newBalance

		if m == term && balance > constants.MinBalanceEpsilon {
			balance = b.reconcileMaturity(&result, params, rate, balance, m)
			break
		}
	}

	if balance > constants.MinBalanceEpsilon {
		b.logger.Debug("iteration ceiling reached with residual balance",
			zap.Float64("balance", balance),
			zap.Int("termMonths", term),
		)
	}

	aggregate(&result)
	return result
}

func (b *Builder) recastFires(params Params, m int, extra, forgiven float64) bool {
	if params.RecastMonths[m] {
		return true
	}
	return params.AutoRecastOnExtra && (extra > 0 || forgiven > 0)
}

// reconcileMaturity retires a residual balance left at the original term
// by rounding drift. A sub-unit residue is folded into the final row;
// anything larger gets exactly one additional payoff row with its own
// interest split. Returns the remaining balance (always zero).
func (b *Builder) reconcileMaturity(result *Result, params Params, rate, balance float64, m int) float64 {
	if balance < constants.ResidualPayoffLimit {
		last := &result.Rows[len(result.Rows)-1]
		last.Payment = mathutil.Round(last.Payment + balance)
		last.Principal = mathutil.Round(last.Principal + balance)
		last.TotalPaid = mathutil.Round(last.TotalPaid + balance)
		last.Balance = 0
		last.CumPrincipal = mathutil.Round(last.CumPrincipal + balance)
		result.TotalPaid = mathutil.Round(result.TotalPaid + balance)
		b.logger.Debug("folded maturity residue into final row",
			zap.Float64("residue", balance),
			zap.Int("month", m),
		)
		return 0
	}

	interest := payment.Interest(balance, rate)
	prev := result.Rows[len(result.Rows)-1]
	date := params.Start.AddMonths(m)
	row := Row{
		Index:          m + 1,
		Date:           date,
		DateString:     date.String(),
		Payment:        mathutil.Round(balance + interest),
		Interest:       interest,
		Principal:      balance,
		TotalPaid:      mathutil.Round(balance + interest),
		Balance:        0,
		CumInterest:    mathutil.Round(prev.CumInterest + interest),
		CumPrincipal:   mathutil.Round(prev.CumPrincipal + balance),
		CumForgiveness: prev.CumForgiveness,
	}
	result.TotalInterest = row.CumInterest
	result.TotalPaid = mathutil.Round(result.TotalPaid + row.Payment)
	result.Rows = append(result.Rows, row)
	b.logger.Debug("emitted maturity payoff row",
		zap.Float64("residue", balance),
		zap.Int("month", m+1),
	)
	return 0
}
