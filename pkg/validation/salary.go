package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/take-home/pkg/mathutil"
	"github.com/iwvelando/take-home/pkg/paycheck"
)

// ValidateSalaryInput returns warnings for input the estimator will accept
// but probably not as the user intended. An empty result means the input is
// clean.
func ValidateSalaryInput(in paycheck.SalaryInput) []string {
	var warnings []string

	switch {
	case math.IsNaN(in.AnnualSalary) || math.IsInf(in.AnnualSalary, 0):
		warnings = append(warnings, fmt.Sprintf("annual salary %v is not a finite number", in.AnnualSalary))
	case !mathutil.IsPositive(in.AnnualSalary):
		warnings = append(warnings, fmt.Sprintf("annual salary %.2f should be greater than zero", in.AnnualSalary))
	}

	if !in.PayFrequency.Valid() {
		msg := fmt.Sprintf("pay frequency %q is not recognized; estimating as monthly", in.PayFrequency)
		if parsed, ok := paycheck.ParsePayFrequency(string(in.PayFrequency)); ok {
			msg = fmt.Sprintf("pay frequency %q is not recognized; did you mean %q? estimating as monthly", in.PayFrequency, parsed)
		}
		warnings = append(warnings, msg)
	}

	if strings.TrimSpace(in.State) == "" {
		warnings = append(warnings, "state is empty; using the default state tax rate")
	} else if _, known := paycheck.StateRate(in.State); !known {
		msg := fmt.Sprintf("state %q is not recognized; using the default state tax rate", in.State)
		if suggestion := SuggestState(in.State); suggestion != "" {
			msg = fmt.Sprintf("state %q is not recognized; did you mean %q? using the default state tax rate", in.State, suggestion)
		}
		warnings = append(warnings, msg)
	}

	return warnings
}

// SuggestState finds a recognized state that matches s ignoring case and
// surrounding whitespace, or returns "".
func SuggestState(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, state := range paycheck.States() {
		if strings.EqualFold(state, trimmed) {
			return state
		}
	}
	return ""
}
