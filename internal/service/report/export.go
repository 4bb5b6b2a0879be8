package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/talenthive/hr-assistant-go/internal/domain/report"
)

// Format selects the report export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat normalizes a format string, defaulting to JSON when empty.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", report.ErrUnknownFormat
}

// ExportXLSX renders the full summary as a spreadsheet with an overview
// sheet and one row per company.
func (s *Service) ExportXLSX(summary report.FullSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance Report"
	f.SetSheetName("Sheet1", sheet)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	overview := [][]any{
		{"Period", summary.DateRange.StartDate + " to " + summary.DateRange.EndDate},
		{"Companies", summary.TotalCompanies},
		{"Branches", summary.TotalBranches},
		{"Departments", summary.TotalDepartments},
		{"Employees", summary.TotalEmployees},
		{"Present", summary.AttendanceStatus.Present},
		{"Absent", summary.AttendanceStatus.Absent},
		{"Half Day", summary.AttendanceStatus.HalfDay},
		{"Leave", summary.AttendanceStatus.Leave},
		{"Weekend", summary.AttendanceStatus.Weekend},
		{"Holiday", summary.AttendanceStatus.Holiday},
		{"Late", summary.AttendanceStatus.Late},
		{"Total Working Hours", summary.TotalWorkingHours},
		{"Average Working Hours", summary.AverageWorkingHours},
	}
	for i, row := range overview {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
	_ = f.SetCellStyle(sheet, "A1", "A"+strconv.Itoa(len(overview)), bold)

	headerRow := len(overview) + 2
	headers := []any{"Company", "Branches", "Employees", "Present", "Absent", "Late", "Attendance Rate %", "Late %"}
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	_ = f.SetSheetRow(sheet, cell, &headers)
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	_ = f.SetCellStyle(sheet, cell, endHeader, bold)

	for i, company := range summary.Companies {
		row := []any{
			company.Name,
			company.TotalBranches,
			company.TotalEmployees,
			company.PresentCount,
			company.AbsentCount,
			company.LateCount,
			company.AttendanceRate,
			company.LatePercentage,
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	_ = f.SetColWidth(sheet, "A", "A", 30)
	_ = f.SetColWidth(sheet, "B", "H", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the full summary as a compact one-page document.
func (s *Service) ExportPDF(summary report.FullSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", summary.DateRange.StartDate, summary.DateRange.EndDate))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Companies: %d   Branches: %d   Departments: %d   Employees: %d",
		summary.TotalCompanies, summary.TotalBranches, summary.TotalDepartments, summary.TotalEmployees))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Status Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	t := summary.AttendanceStatus
	pdf.Cell(0, 7, fmt.Sprintf("Present: %d   Absent: %d   Half Day: %d   Leave: %d", t.Present, t.Absent, t.HalfDay, t.Leave))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Weekend: %d   Holiday: %d   Late: %d", t.Weekend, t.Holiday, t.Late))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Working hours: %.2f total, %.2f average", summary.TotalWorkingHours, summary.AverageWorkingHours))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Companies")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, company := range summary.Companies {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d employees, %d present, %d absent, %d late (rate %.2f%%, late %.2f%%)",
			company.Name, company.TotalEmployees, company.PresentCount, company.AbsentCount,
			company.LateCount, company.AttendanceRate, company.LatePercentage))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
