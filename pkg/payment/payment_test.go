package payment

import (
	"math"
	"testing"
)

func TestCalc(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		monthlyRate float64
		numMonths   int
		expected    float64
	}{
		{"Standard 30-year mortgage", 100000, 0.06 / 12, 360, 599.55},
		{"Zero interest loan", 100000, 0, 360, 277.78},
		{"Zero term", 100000, 0.005, 0, 0},
		{"Negative term", 100000, 0.005, -12, 0},
		{"Zero principal", 0, 0.005, 360, 0},
		{"Effectively zero rate", 12000, 1e-12, 60, 200.00},
		{"5-year car loan", 20000, 0.04 / 12, 60, 368.33},
		{"One month", 1000, 0.01, 1, 1010.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calc(tt.principal, tt.monthlyRate, tt.numMonths)
			if math.Abs(result-tt.expected) > 0.005 {
				t.Errorf("Calc(%v, %v, %d) = %.2f, expected %.2f",
					tt.principal, tt.monthlyRate, tt.numMonths, result, tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		name          string
		annualRatePct float64
		expected      float64
	}{
		{"Six percent", 6.0, 0.005},
		{"Zero", 0, 0},
		{"Twelve percent", 12.0, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyRate(tt.annualRatePct)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("MonthlyRate(%v) = %v, expected %v", tt.annualRatePct, result, tt.expected)
			}
		})
	}
}

func TestInterest(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		monthlyRate float64
		expected    float64
	}{
		{"Full balance", 100000, 0.005, 500.00},
		{"Rounded to cent", 99999.99, 0.005, 500.00},
		{"Zero rate", 100000, 0, 0},
		{"Zero balance", 0, 0.005, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Interest(tt.balance, tt.monthlyRate)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Interest(%v, %v) = %v, expected %v", tt.balance, tt.monthlyRate, result, tt.expected)
			}
		})
	}
}
