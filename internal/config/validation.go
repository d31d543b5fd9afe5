package config

import (
	"fmt"

	"github.com/finsim/loan-recast/pkg/calendar"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. The simulation itself normalizes every input, so these
// are advisory only.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Loan.Principal < 0 {
		warnings = append(warnings, fmt.Sprintf("loan principal %.2f is negative and will be treated as zero", conf.Loan.Principal))
	}
	if conf.Loan.AnnualRatePct < 0 {
		warnings = append(warnings, fmt.Sprintf("annual rate %.4f is negative and will be treated as zero", conf.Loan.AnnualRatePct))
	}
	if conf.Loan.StartDate != "" {
		if _, err := calendar.Parse(conf.Loan.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("loan start date %q is not in the %s format", conf.Loan.StartDate, DateTimeLayout))
		}
	}

	warnings = append(warnings, validateIntents("extra payment", conf.ExtraPayments, conf.Loan.TermMonths)...)
	warnings = append(warnings, validateIntents("forgiveness", conf.Forgiveness, conf.Loan.TermMonths)...)

	return warnings
}

func validateIntents(kind string, list []PaymentIntent, termMonths int) []string {
	var warnings []string
	for _, intent := range list {
		name := intent.Name
		if name == "" {
			name = "(unnamed)"
		}
		if intent.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("%s %s has negative amount %.2f; it will be clamped to zero", kind, name, intent.Amount))
		}
		if intent.StartMonth < 1 {
			warnings = append(warnings, fmt.Sprintf("%s %s has start month %d before the loan begins; it will be dropped", kind, name, intent.StartMonth))
		} else if termMonths >= 1 && intent.StartMonth > termMonths {
			warnings = append(warnings, fmt.Sprintf("%s %s starts at month %d, past the %d-month term", kind, name, intent.StartMonth, termMonths))
		}
		if intent.Recurring && intent.EndMonth > 0 && intent.EndMonth < intent.StartMonth {
			warnings = append(warnings, fmt.Sprintf("%s %s ends at month %d before it starts", kind, name, intent.EndMonth))
		}
	}
	return warnings
}

// ValidateStrict rejects parameters the simulation would otherwise
// normalize away. It is an optional pre-check; the schedule builder itself
// never fails.
func (conf *Configuration) ValidateStrict() error {
	if conf.Loan.Principal <= 0 {
		return fmt.Errorf("loan principal must be positive, got %.2f", conf.Loan.Principal)
	}
	if conf.Loan.AnnualRatePct < 0 {
		return fmt.Errorf("annual rate must be non-negative, got %.4f", conf.Loan.AnnualRatePct)
	}
	if conf.Loan.TermMonths < 1 {
		return fmt.Errorf("loan term must be at least one month, got %d", conf.Loan.TermMonths)
	}
	return nil
}
