// Package output provides utilities for formatting and displaying schedule
// results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/finsim/loan-recast/internal/comparison"
	"github.com/finsim/loan-recast/internal/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// csvHeader is the fixed, order-stable column set for schedule exports.
var csvHeader = []string{
	"Month", "Date", "Scheduled Payment", "Interest", "Principal",
	"Extra", "Total Paid", "Ending Balance", "Recast", "New Payment",
}

// CsvFormat writes the row sequence in comma-separated value format, every
// currency field with exactly two decimal places.
func CsvFormat(w io.Writer, result schedule.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range result.Rows {
		recast := ""
		if row.Recast {
			recast = "yes"
		}
		newPayment := ""
		if row.NewPayment > 0 {
			newPayment = fmt.Sprintf("%.2f", row.NewPayment)
		}
		record := []string{
			fmt.Sprintf("%d", row.Index),
			row.DateString,
			fmt.Sprintf("%.2f", row.Payment),
			fmt.Sprintf("%.2f", row.Interest),
			fmt.Sprintf("%.2f", row.Principal),
			fmt.Sprintf("%.2f", row.Extra),
			fmt.Sprintf("%.2f", row.TotalPaid),
			fmt.Sprintf("%.2f", row.Balance),
			recast,
			newPayment,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", row.Index, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result schedule.Result) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "Month | Date    | Payment      | Interest     | Principal    | Extra        | Balance\n")
	fmt.Fprintf(w, "_____ | ____    | _______      | ________     | _________    | _____        | _______\n")
	for _, row := range result.Rows {
		marker := ""
		if row.Recast {
			marker = " (recast)"
		}
		_, _ = p.Fprintf(w, "%5d | %s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f%s\n",
			row.Index, row.DateString, row.Payment, row.Interest, row.Principal,
			row.Extra, row.Balance, marker)
	}
	_, _ = p.Fprintf(w, "\nPayoff month: %d    Total interest: $%.2f    Total paid: $%.2f\n",
		result.PayoffMonth, result.TotalInterest, result.TotalPaid)
	if result.TotalForgiveness > 0 {
		_, _ = p.Fprintf(w, "Total forgiveness: $%.2f\n", result.TotalForgiveness)
	}
}

// PrettyComparison writes a summary of the savings between the baseline and
// the modified plan.
func PrettyComparison(w io.Writer, comp comparison.Comparison) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Plan comparison ---\n")
	_, _ = p.Fprintf(w, "Baseline payoff: %s (month %d), total interest $%.2f\n",
		comp.BaselinePayoffDate, comp.Baseline.PayoffMonth, comp.Baseline.TotalInterest)
	_, _ = p.Fprintf(w, "Modified payoff: %s (month %d), total interest $%.2f\n",
		comp.ActualPayoffDate, comp.Actual.PayoffMonth, comp.Actual.TotalInterest)
	_, _ = p.Fprintf(w, "Interest saved: $%.2f\n", comp.InterestSaved)
	_, _ = p.Fprintf(w, "Months saved: %d\n", comp.MonthsSaved)
	if comp.TotalForgiveness > 0 {
		_, _ = p.Fprintf(w, "Principal forgiven: $%.2f\n", comp.TotalForgiveness)
	}
	for _, seg := range comp.Actual.Segments {
		_, _ = p.Fprintf(w, "Payment from month %d: $%.2f\n", seg.StartMonth, seg.Payment)
	}
}
