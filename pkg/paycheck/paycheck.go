// Package paycheck estimates per-paycheck take-home pay from an annual salary,
// a pay frequency, and a U.S. state.
//
// Every function in this package is pure. Out-of-range input never produces an
// error: unknown frequencies are treated as monthly and unknown states pay the
// default state rate. Callers that need strict input checking should use the
// validation package before estimating.
package paycheck

import (
	"github.com/iwvelando/take-home/pkg/constants"
)

// SalaryInput is the information collected during onboarding.
type SalaryInput struct {
	AnnualSalary float64      `json:"annualSalary" yaml:"annualSalary" mapstructure:"annualSalary"`
	PayFrequency PayFrequency `json:"payFrequency" yaml:"payFrequency" mapstructure:"payFrequency"`
	State        string       `json:"state" yaml:"state" mapstructure:"state"`
}

// Taxes holds the per-paycheck tax withholdings.
type Taxes struct {
	Federal float64 `json:"federal" yaml:"federal"`
	State   float64 `json:"state" yaml:"state"`
	FICA    float64 `json:"fica" yaml:"fica"`
	Total   float64 `json:"total" yaml:"total"`
}

// Benefits holds the per-paycheck benefit deductions.
type Benefits struct {
	HealthInsurance float64 `json:"healthInsurance" yaml:"healthInsurance"`
	Retirement      float64 `json:"retirement" yaml:"retirement"`
	Other           float64 `json:"other" yaml:"other"`
	Total           float64 `json:"total" yaml:"total"`
}

// Breakdown is the full estimate for a single paycheck.
type Breakdown struct {
	GrossPay    float64  `json:"grossPay" yaml:"grossPay"`
	Taxes       Taxes    `json:"taxes" yaml:"taxes"`
	Benefits    Benefits `json:"benefits" yaml:"benefits"`
	TakeHomePay float64  `json:"takeHomePay" yaml:"takeHomePay"`
}

// ComputeBenefits applies the fixed health insurance and retirement rates.
// Other is reserved and always zero.
func ComputeBenefits(grossPay float64) Benefits {
	b := Benefits{
		HealthInsurance: grossPay * constants.HealthInsuranceRate,
		Retirement:      grossPay * constants.RetirementRate,
	}
	b.Total = b.HealthInsurance + b.Retirement + b.Other
	return b
}

// EstimateTakeHome computes the gross pay, taxes, benefits, and take-home pay
// for one paycheck.
func EstimateTakeHome(in SalaryInput) Breakdown {
	gross := GrossPay(in.AnnualSalary, in.PayFrequency)

	taxes := Taxes{
		Federal: FederalTax(gross, in.AnnualSalary),
		State:   StateTax(gross, in.State),
		FICA:    FICA(gross, in.AnnualSalary),
	}
	taxes.Total = taxes.Federal + taxes.State + taxes.FICA

	benefits := ComputeBenefits(gross)

	return Breakdown{
		GrossPay:    gross,
		Taxes:       taxes,
		Benefits:    benefits,
		TakeHomePay: gross - taxes.Total - benefits.Total,
	}
}
