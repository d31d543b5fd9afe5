// Package constants provides shared constants for the loan-recast application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// RateEpsilon is the monthly rate below which a loan is treated as
	// zero-interest when computing the level payment
	RateEpsilon = 1e-9

	// DefaultFrequency is the frequency for monthly payment intents
	DefaultFrequency = 1

	// AnnualFrequency is the frequency for annual payment intents
	AnnualFrequency = 12
)

// Schedule simulation constants
const (
	// MinBalanceEpsilon is the balance below which a loan is considered paid off
	MinBalanceEpsilon = 0.005

	// RecastThreshold is the minimum payment change required for a recast to
	// open a new payment segment
	RecastThreshold = 0.005

	// SafetyMarginMonths bounds the simulation at termMonths plus this margin
	SafetyMarginMonths = 12

	// ResidualPayoffLimit is the largest maturity residue that is folded into
	// the final scheduled row rather than emitted as its own payoff row
	ResidualPayoffLimit = 1.00
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default plan file name
	DefaultConfigFile = "plan.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
