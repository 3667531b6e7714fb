package paycheck

import (
	"math"
	"sort"

	"github.com/iwvelando/take-home/pkg/constants"
)

// Band is one tier of the federal rate table. Salaries at or below Ceiling
// (and above the previous band's ceiling) pay Rate on their full gross pay.
type Band struct {
	Ceiling float64
	Rate    float64
}

// FederalBands is ordered from lowest to highest ceiling.
//
// This is a known approximation: the band's rate is applied to the entire
// paycheck rather than only to the income inside the band.
var FederalBands = []Band{
	{Ceiling: constants.FederalBand1Ceiling, Rate: constants.FederalBand1Rate},
	{Ceiling: constants.FederalBand2Ceiling, Rate: constants.FederalBand2Rate},
	{Ceiling: constants.FederalBand3Ceiling, Rate: constants.FederalBand3Rate},
	{Ceiling: math.Inf(1), Rate: constants.FederalBand4Rate},
}

// FederalRate returns the flat federal rate for an annual salary. Values that
// match no band (NaN) get the top rate.
func FederalRate(annualSalary float64) float64 {
	for _, band := range FederalBands {
		if annualSalary <= band.Ceiling {
			return band.Rate
		}
	}
	return FederalBands[len(FederalBands)-1].Rate
}

// FederalTax applies the salary's band rate to one paycheck.
func FederalTax(grossPay, annualSalary float64) float64 {
	return grossPay * FederalRate(annualSalary)
}

// stateRates holds approximate flat income tax rates keyed by full state name.
// Keys are matched exactly.
var stateRates = map[string]float64{
	"Alabama":              0.05,
	"Alaska":               0,
	"Arizona":              0.025,
	"Arkansas":             0.044,
	"California":           0.09,
	"Colorado":             0.044,
	"Connecticut":          0.05,
	"Delaware":             0.055,
	"District of Columbia": 0.065,
	"Florida":              0,
	"Georgia":              0.0549,
	"Hawaii":               0.0825,
	"Idaho":                0.058,
	"Illinois":             0.0495,
	"Indiana":              0.0305,
	"Iowa":                 0.057,
	"Kansas":               0.057,
	"Kentucky":             0.04,
	"Louisiana":            0.0425,
	"Maine":                0.0675,
	"Maryland":             0.0475,
	"Massachusetts":        0.05,
	"Michigan":             0.0425,
	"Minnesota":            0.068,
	"Mississippi":          0.047,
	"Missouri":             0.048,
	"Montana":              0.059,
	"Nebraska":             0.0584,
	"Nevada":               0,
	"New Hampshire":        0,
	"New Jersey":           0.0637,
	"New Mexico":           0.049,
	"New York":             0.0685,
	"North Carolina":       0.045,
	"North Dakota":         0.025,
	"Ohio":                 0.035,
	"Oklahoma":             0.0475,
	"Oregon":               0.0875,
	"Pennsylvania":         0.0307,
	"Rhode Island":         0.0475,
	"South Carolina":       0.064,
	"South Dakota":         0,
	"Tennessee":            0,
	"Texas":                0,
	"Utah":                 0.0465,
	"Vermont":              0.066,
	"Virginia":             0.0575,
	"Washington":           0,
	"West Virginia":        0.0512,
	"Wisconsin":            0.053,
	"Wyoming":              0,
}

// StateRate looks up the flat rate for state. known is false when the
// default rate was used.
func StateRate(state string) (rate float64, known bool) {
	rate, known = stateRates[state]
	if !known {
		return constants.DefaultStateTaxRate, false
	}
	return rate, true
}

// StateTax applies the state's flat rate to one paycheck.
func StateTax(grossPay float64, state string) float64 {
	rate, _ := StateRate(state)
	return grossPay * rate
}

// States returns the recognized state names in alphabetical order.
func States() []string {
	names := make([]string, 0, len(stateRates))
	for name := range stateRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FICA returns Medicare plus Social Security for one paycheck. Social
// Security is skipped entirely once the annual salary exceeds the wage base.
func FICA(grossPay, annualSalary float64) float64 {
	medicare := grossPay * constants.MedicareRate
	socialSecurity := 0.0
	if annualSalary <= constants.SocialSecurityWageBase {
		socialSecurity = grossPay * constants.SocialSecurityRate
	}
	return medicare + socialSecurity
}
