package grid

import (
	"context"
	"fmt"

	"github.com/timedesk/timekeeper-backend-go/internal/domain/grid"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

// ExportMonthlyGrid implements grid.GridService: the monthly matrix rendered
// as an .xlsx workbook, one column per day plus the weighted totals.
func (s *service) ExportMonthlyGrid(ctx context.Context, req grid.BuildRequest) ([]byte, string, error) {
	monthly, err := s.BuildMonthlyGrid(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create header style: %w", err)
	}

	// One header row; each day cell carries the number and the weekday.
	headers := []interface{}{"Code", "Last Name", "First Name", "Position"}
	for _, day := range monthly.Days {
		headers = append(headers, fmt.Sprintf("%d %s", day.Day, day.Weekday))
	}
	headers = append(headers, "Total")

	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, "", fmt.Errorf("write header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, "", fmt.Errorf("resolve last column: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, "", fmt.Errorf("style header row: %w", err)
	}

	for i, row := range monthly.Rows {
		values := []interface{}{row.EmployeeCode, row.LastName, row.FirstName, ""}
		if row.Position != nil {
			values[3] = *row.Position
		}
		for _, cell := range row.Cells {
			values = append(values, cell.Symbol)
		}
		values = append(values, row.Total)

		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("resolve row cell: %w", err)
		}
		if err := f.SetSheetRow(exportSheet, cellRef, &values); err != nil {
			return nil, "", fmt.Errorf("write employee row: %w", err)
		}
	}

	// Trailing totals row: per-day weighted sums plus the grand total.
	totals := []interface{}{"Total", "", "", ""}
	for _, dayTotal := range monthly.DayTotals {
		totals = append(totals, dayTotal)
	}
	totals = append(totals, monthly.GrandTotal)

	totalsRef, err := excelize.CoordinatesToCellName(1, len(monthly.Rows)+2)
	if err != nil {
		return nil, "", fmt.Errorf("resolve totals cell: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, totalsRef, &totals); err != nil {
		return nil, "", fmt.Errorf("write totals row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", monthly.Year, monthly.Month)
	return buf.Bytes(), filename, nil
}
