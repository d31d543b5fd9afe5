// Package config defines the data structures related to configuration and
// includes functions for loading and parsing plan files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/finsim/loan-recast/internal/schedule"
	"github.com/finsim/loan-recast/pkg/calendar"
	"github.com/finsim/loan-recast/pkg/constants"
	"github.com/finsim/loan-recast/pkg/intents"
	"github.com/finsim/loan-recast/pkg/monthlist"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds one complete repayment plan plus runtime options.
type Configuration struct {
	Loan              Loan
	ExtraPayments     []PaymentIntent
	Forgiveness       []PaymentIntent
	RecastMonths      string
	AutoRecastOnExtra bool
	Logging           LoggingConfig `yaml:"logging,omitempty"`
	Output            OutputConfig  `yaml:"output,omitempty"`
}

// Loan holds the fixed parameters of the simulated loan.
type Loan struct {
	Principal     float64
	AnnualRatePct float64
	TermMonths    int
	StartDate     string
}

// PaymentIntent is one user-editable extra-payment or forgiveness intent.
type PaymentIntent struct {
	Name        string
	Amount      float64
	StartMonth  int
	Recurring   bool
	Frequency   string // monthly or annually
	Occurrences int
	EndMonth    int
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ToParams converts the configuration into simulation parameters, expanding
// payment intents into month-indexed maps and parsing the recast month list.
func (conf *Configuration) ToParams() (schedule.Params, error) {
	return conf.ToParamsWithFixedTime(time.Now())
}

// ToParamsWithFixedTime is ToParams with an injectable current time used
// when the plan omits a start date.
func (conf *Configuration) ToParamsWithFixedTime(fixedTime time.Time) (schedule.Params, error) {
	var start calendar.YearMonth
	if conf.Loan.StartDate == "" {
		start = calendar.MustParse(fixedTime.Format(DateTimeLayout))
	} else {
		var err error
		start, err = calendar.Parse(conf.Loan.StartDate)
		if err != nil {
			return schedule.Params{}, err
		}
	}

	recastMonths := make(map[int]bool)
	for _, m := range monthlist.Parse(conf.RecastMonths) {
		recastMonths[m] = true
	}

	return schedule.Params{
		Principal:         conf.Loan.Principal,
		AnnualRatePct:     conf.Loan.AnnualRatePct,
		TermMonths:        conf.Loan.TermMonths,
		Start:             start,
		Extra:             intents.Expand(toIntents(conf.ExtraPayments), conf.Loan.TermMonths),
		Forgiveness:       intents.Expand(toIntents(conf.Forgiveness), conf.Loan.TermMonths),
		RecastMonths:      recastMonths,
		AutoRecastOnExtra: conf.AutoRecastOnExtra,
	}, nil
}

func toIntents(list []PaymentIntent) []intents.Intent {
	converted := make([]intents.Intent, len(list))
	for i, pi := range list {
		frequency := constants.DefaultFrequency
		if strings.EqualFold(pi.Frequency, "annually") {
			frequency = constants.AnnualFrequency
		}
		converted[i] = intents.Intent{
			Amount:      pi.Amount,
			StartMonth:  pi.StartMonth,
			Recurring:   pi.Recurring,
			Frequency:   frequency,
			Occurrences: pi.Occurrences,
			EndMonth:    pi.EndMonth,
		}
	}
	return converted
}
