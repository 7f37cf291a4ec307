package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"horas/internal/domain/metrics"
)

// OccupancyWorkbook renders the occupancy table as an xlsx workbook.
func (s *Service) OccupancyWorkbook(ctx context.Context, period metrics.Period, groupBy metrics.GroupBy) ([]byte, error) {
	rows, diags, err := s.Occupancy(ctx, period, groupBy)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Occupancy"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"Group", "Members", "Total hours", "Billable hours", "Overtime hours",
		"Absence days", "Absence %", "Available hours", "Occupancy %", "Billable %", "Overtime %",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i, row := range rows {
		values := []any{
			row.Group, row.Members, row.TotalHours, row.BillableHours, row.OvertimeHours,
			row.AbsenceDays, row.AbsencePercent, row.AvailableHours,
			row.OccupancyPercent, row.BillablePercent, row.OvertimePercent,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if len(diags) > 0 {
		writeDiagnosticsSheet(f, diags)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PerformanceWorkbook renders the project performance table as xlsx.
func (s *Service) PerformanceWorkbook(ctx context.Context, status string, asOf time.Time) ([]byte, error) {
	results, diags, err := s.PortfolioPerformance(ctx, status, asOf)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Projects"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Project", "Realized hours", "Hours %", "Realized cost", "Cost %",
		"Time %", "CPI", "EAC", "VAC", "Risk",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for i, result := range results {
		values := []any{
			result.Name, result.RealizedHours, result.HoursPercent,
			result.RealizedCost, result.CostPercent, result.TimePercent,
			result.CPI, result.EAC, result.VAC, string(result.Risk),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if len(diags) > 0 {
		writeDiagnosticsSheet(f, diags)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDiagnosticsSheet(f *excelize.File, diags []metrics.Diagnostic) {
	sheet := "Diagnostics"
	_, err := f.NewSheet(sheet)
	if err != nil {
		return
	}
	_ = f.SetCellValue(sheet, "A1", "Kind")
	_ = f.SetCellValue(sheet, "B1", "Row")
	_ = f.SetCellValue(sheet, "C1", "Detail")
	for i, diag := range diags {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), diag.Kind)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), diag.Row)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), diag.Detail)
	}
}
