package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/take-home/internal/estimate"
	"github.com/iwvelando/take-home/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

// PDF renders one paystub-style page per estimate.
func PDF(w io.Writer, results []estimate.Estimate) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Take-Home Pay Estimate", false)

	for _, result := range results {
		in := result.Input
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, "Take-Home Pay Estimate")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Profile: %s", result.Name))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Salary: %s per year, paid %s", format.Currency(in.AnnualSalary), in.PayFrequency))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("State: %s", in.State))
		pdf.Ln(12)

		for _, section := range result.Sections {
			style := ""
			if section.Label == "Gross Pay" || section.Label == "Take-Home Pay" {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 12)
			pdf.CellFormat(90, 8, section.Label, "B", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, format.Currency(section.Amount), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Annual take-home: %s", format.Currency(result.AnnualTakeHome)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Monthly take-home: %s", format.Currency(result.MonthlyTakeHome)))
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "This is an estimate. Your actual take-home may vary based on your specific deductions.", "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
