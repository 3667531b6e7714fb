package paycheck

// Section is one labelled row of a breakdown, ready for display.
type Section struct {
	Label       string  `json:"label"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// Sections flattens a breakdown into display rows. Deductions are reported as
// positive amounts.
func Sections(b Breakdown) []Section {
	return []Section{
		{Label: "Gross Pay", Amount: b.GrossPay, Description: "Before taxes and deductions"},
		{Label: "Federal Tax", Amount: b.Taxes.Federal},
		{Label: "State Tax", Amount: b.Taxes.State},
		{Label: "FICA", Amount: b.Taxes.FICA, Description: "Social Security and Medicare"},
		{Label: "Health Insurance", Amount: b.Benefits.HealthInsurance},
		{Label: "Retirement", Amount: b.Benefits.Retirement, Description: "401(k) contribution"},
		{Label: "Take-Home Pay", Amount: b.TakeHomePay},
	}
}
