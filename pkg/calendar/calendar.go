// Package calendar provides whole-month date arithmetic on (year, month)
// pairs without any time-zone or locale dependency.
package calendar

import (
	"fmt"
	"time"

	"github.com/finsim/loan-recast/pkg/constants"
)

// YearMonth identifies a calendar month. Month is 1-12.
type YearMonth struct {
	Year  int
	Month int
}

// Parse parses a date string in the "2006-01" layout.
func Parse(date string) (YearMonth, error) {
	t, err := time.Parse(constants.DateTimeLayout, date)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// MustParse parses a date string and panics on error. Intended for tests
// where the date string is known to be valid.
func MustParse(date string) YearMonth {
	ym, err := Parse(date)
	if err != nil {
		panic(err)
	}
	return ym
}

// String formats the year-month in the "2006-01" layout.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// IsZero reports whether the value is the zero YearMonth.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// AddMonths returns the year-month offset by the given number of months,
// rolling over year boundaries in either direction.
func (ym YearMonth) AddMonths(delta int) YearMonth {
	months := ym.Year*constants.MonthsPerYear + (ym.Month - 1) + delta
	year := months / constants.MonthsPerYear
	month := months % constants.MonthsPerYear
	if month < 0 {
		month += constants.MonthsPerYear
		year--
	}
	return YearMonth{Year: year, Month: month + 1}
}

// Before reports whether ym is strictly before other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}
