package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ProjectReportPDF renders the one-page cost/schedule report for a project.
func (s *Service) ProjectReportPDF(ctx context.Context, projectID string, asOf time.Time) ([]byte, error) {
	result, diags, err := s.ProjectPerformance(ctx, projectID, asOf)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Project Performance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Project: %s", result.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("As of: %s", reportAsOf(asOf).Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Effort and cost")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Realized hours: %.1f (%.1f%% of budget)", result.RealizedHours, result.HoursPercent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Realized cost: %.2f (%.1f%% of budget)", result.RealizedCost, result.CostPercent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Planned cost to date: %.2f", result.PlannedCost))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Schedule elapsed: %.1f%%", result.TimePercent))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Forecast")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("CPI: %.2f", result.CPI))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Estimate at completion: %.2f", result.EAC))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Variance at completion: %.2f", result.VAC))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Risk level: %s", result.Risk))
	if result.AheadOfSchedule {
		pdf.Ln(7)
		pdf.Cell(0, 8, "Note: effort is running well behind the elapsed schedule.")
	}

	if len(diags) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%d row(s) with data-quality issues were skipped:", len(diags)))
		for _, diag := range diags {
			pdf.Ln(5)
			pdf.Cell(0, 6, "- "+diag.String())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func reportAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return time.Now()
	}
	return asOf
}
