package infra

// excel.go — sales report export using excelize. One sheet, a header row,
// one row per (date, product) aggregate, and a totals row.

import (
	"bytes"
	"fmt"

	"lavkapos/internal/dto"

	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

// ExportSalesReport renders the sales report as an .xlsx workbook and
// returns the raw file bytes for streaming as an attachment.
func ExportSalesReport(report *dto.SalesReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(salesSheet)
	if err != nil {
		return nil, fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: drop default sheet: %w", err)
	}

	// Headers
	f.SetCellValue(salesSheet, "A1", "Date")
	f.SetCellValue(salesSheet, "B1", "Product")
	f.SetCellValue(salesSheet, "C1", "Quantity (kg)")
	f.SetCellValue(salesSheet, "D1", "Revenue")
	f.SetCellValue(salesSheet, "E1", "Profit share")
	f.SetCellValue(salesSheet, "F1", "Expense share")

	// Data
	for i, row := range report.Rows {
		n := i + 2
		f.SetCellValue(salesSheet, "A"+fmt.Sprint(n), row.Date)
		f.SetCellValue(salesSheet, "B"+fmt.Sprint(n), row.Product)
		f.SetCellValue(salesSheet, "C"+fmt.Sprint(n), row.Quantity)
		f.SetCellValue(salesSheet, "D"+fmt.Sprint(n), row.Revenue)
		f.SetCellValue(salesSheet, "E"+fmt.Sprint(n), row.ProfitShare)
		f.SetCellValue(salesSheet, "F"+fmt.Sprint(n), row.ExpenseShare)
	}

	// Totals row
	n := len(report.Rows) + 2
	f.SetCellValue(salesSheet, "A"+fmt.Sprint(n), "TOTAL")
	f.SetCellValue(salesSheet, "C"+fmt.Sprint(n), report.Totals.Quantity)
	f.SetCellValue(salesSheet, "D"+fmt.Sprint(n), report.Totals.Revenue)
	f.SetCellValue(salesSheet, "E"+fmt.Sprint(n), report.Totals.ProfitShare)
	f.SetCellValue(salesSheet, "F"+fmt.Sprint(n), report.Totals.ExpenseShare)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
