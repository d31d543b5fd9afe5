package comparison

import (
	"testing"

	"github.com/finsim/loan-recast/internal/schedule"
	"github.com/finsim/loan-recast/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	params := schedule.Params{
		Principal:     100000,
		AnnualRatePct: 6.0,
		TermMonths:    360,
		Start:         calendar.MustParse("2024-01"),
		Extra:         map[int]float64{1: 20000},
	}

	comp := Compare(nil, params)

	require.NotEmpty(t, comp.Baseline.Rows)
	require.NotEmpty(t, comp.Actual.Rows)

	assert.Equal(t, 360, comp.Baseline.PayoffMonth)
	assert.Less(t, comp.Actual.PayoffMonth, comp.Baseline.PayoffMonth)
	assert.Positive(t, comp.InterestSaved)
	assert.Positive(t, comp.MonthsSaved)
	assert.Equal(t, comp.Baseline.PayoffMonth-comp.Actual.PayoffMonth, comp.MonthsSaved)
	assert.Equal(t, "2053-12", comp.BaselinePayoffDate)
	assert.Zero(t, comp.TotalForgiveness)
}

func TestCompareIdenticalPlans(t *testing.T) {
	params := schedule.Params{
		Principal:     50000,
		AnnualRatePct: 4.5,
		TermMonths:    120,
		Start:         calendar.MustParse("2024-06"),
	}

	comp := Compare(nil, params)

	assert.Zero(t, comp.InterestSaved)
	assert.Zero(t, comp.MonthsSaved)
	assert.Zero(t, comp.TotalPaidDelta)
	assert.Equal(t, comp.BaselinePayoffDate, comp.ActualPayoffDate)
}

func TestCompareForgiveness(t *testing.T) {
	params := schedule.Params{
		Principal:     100000,
		AnnualRatePct: 6.0,
		TermMonths:    360,
		Start:         calendar.MustParse("2024-01"),
		Forgiveness:   map[int]float64{12: 15000},
	}

	comp := Compare(nil, params)

	assert.InDelta(t, 15000, comp.TotalForgiveness, 0.005)
	assert.Positive(t, comp.InterestSaved)
	// Forgiven principal is cash the borrower never pays.
	assert.Positive(t, comp.TotalPaidDelta)
}

func TestCompareEmptyLoan(t *testing.T) {
	comp := Compare(nil, schedule.Params{Start: calendar.MustParse("2024-01")})

	assert.Empty(t, comp.Baseline.Rows)
	assert.Empty(t, comp.Actual.Rows)
	assert.Empty(t, comp.BaselinePayoffDate)
	assert.Empty(t, comp.ActualPayoffDate)
	assert.Zero(t, comp.MonthsSaved)
}
