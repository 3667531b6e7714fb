// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/take-home/internal/estimate"
	"github.com/iwvelando/take-home/pkg/format"
	"github.com/iwvelando/take-home/pkg/mathutil"
	"github.com/iwvelando/take-home/pkg/paycheck"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []estimate.Estimate) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		in := result.Input
		_, _ = fmt.Fprintf(w, "--- Estimate for profile %s ---\n", result.Name)
		_, _ = p.Fprintf(w, "Salary: $%.2f per year, paid %s, in %s\n", in.AnnualSalary, in.PayFrequency, in.State)
		_, _ = fmt.Fprintf(w, "%-16s | %14s | %s\n", "Item", "Per Paycheck", "Notes")
		_, _ = fmt.Fprintf(w, "%-16s | %14s | %s\n", strings.Repeat("_", 16), strings.Repeat("_", 14), "_____")
		for _, section := range result.Sections {
			_, _ = fmt.Fprintf(w, "%-16s | %14s | %s\n", section.Label, format.Currency(section.Amount), notesFor(result, section))
		}
		_, _ = fmt.Fprintf(w, "Effective tax rate: %.2f%%\n", mathutil.EffectiveRate(result.Breakdown.Taxes.Total, result.Breakdown.GrossPay))
		_, _ = fmt.Fprintf(w, "Annual take-home: %s (%s per month)\n", format.Currency(result.AnnualTakeHome), format.Currency(result.MonthlyTakeHome))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

func notesFor(result estimate.Estimate, section paycheck.Section) string {
	switch section.Label {
	case "Federal Tax":
		return format.Rate(result.FederalRate) + " of gross"
	case "State Tax":
		return format.Rate(result.StateRate) + " of gross"
	}
	return section.Description
}

var csvHeader = []string{
	"profile", "annual salary", "pay frequency", "state",
	"gross pay", "federal tax", "state tax", "fica", "total taxes",
	"health insurance", "retirement", "other benefits", "total benefits",
	"take-home pay", "annual take-home",
}

// CsvFormat writes one comma-separated row per estimate.
func CsvFormat(w io.Writer, results []estimate.Estimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, result := range results {
		b := result.Breakdown
		row := []string{
			result.Name,
			money(result.Input.AnnualSalary),
			string(result.Input.PayFrequency),
			result.Input.State,
			money(b.GrossPay),
			money(b.Taxes.Federal),
			money(b.Taxes.State),
			money(b.Taxes.FICA),
			money(b.Taxes.Total),
			money(b.Benefits.HealthInsurance),
			money(b.Benefits.Retirement),
			money(b.Benefits.Other),
			money(b.Benefits.Total),
			money(b.TakeHomePay),
			money(result.AnnualTakeHome),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV output as a string.
func CsvString(results []estimate.Estimate) string {
	var sb strings.Builder
	if err := CsvFormat(&sb, results); err != nil {
		return ""
	}
	return sb.String()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
