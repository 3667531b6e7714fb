package paycheck

import (
	"strings"

	"github.com/iwvelando/take-home/pkg/constants"
)

// PayFrequency is the cadence of paychecks across a year.
type PayFrequency string

const (
	PayFrequencyWeekly      PayFrequency = "weekly"
	PayFrequencyBiweekly    PayFrequency = "biweekly"
	PayFrequencySemimonthly PayFrequency = "semimonthly"
	PayFrequencyMonthly     PayFrequency = "monthly"
)

// PayFrequencies lists the recognized frequencies, most frequent first.
var PayFrequencies = []PayFrequency{
	PayFrequencyWeekly,
	PayFrequencyBiweekly,
	PayFrequencySemimonthly,
	PayFrequencyMonthly,
}

// Periods returns the number of paychecks per year. Unrecognized values are
// treated as monthly.
func (f PayFrequency) Periods() float64 {
	switch f {
	case PayFrequencyWeekly:
		return constants.WeeklyPeriods
	case PayFrequencyBiweekly:
		return constants.BiweeklyPeriods
	case PayFrequencySemimonthly:
		return constants.SemimonthlyPeriods
	case PayFrequencyMonthly:
		return constants.MonthlyPeriods
	default:
		return constants.MonthlyPeriods
	}
}

// Valid reports whether f is one of the recognized frequencies.
func (f PayFrequency) Valid() bool {
	for _, known := range PayFrequencies {
		if f == known {
			return true
		}
	}
	return false
}

// ParsePayFrequency normalizes user input such as " Biweekly " into a
// PayFrequency. Unknown input returns monthly and false.
func ParsePayFrequency(s string) (PayFrequency, bool) {
	f := PayFrequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return PayFrequencyMonthly, false
	}
	return f, true
}

// GrossPay divides the annual salary across the pay periods implied by f.
// No rounding is applied.
func GrossPay(annualSalary float64, f PayFrequency) float64 {
	return annualSalary / f.Periods()
}

// AnnualizeTakeHome multiplies a per-paycheck amount back out to a yearly figure.
func AnnualizeTakeHome(perCheckTakeHome float64, f PayFrequency) float64 {
	return perCheckTakeHome * f.Periods()
}
