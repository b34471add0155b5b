package reports

import (
	"fmt"

	"homeservices_crm/internal/domain/analytics"
	"homeservices_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetCommissions     = "Commissions"
	SheetRevenueBySource = "RevenueBySource"
	SheetRevenueByMonth  = "RevenueByMonth"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExcelExporter renders an analytics report as an .xlsx workbook with one
// sheet per rollup.
type ExcelExporter struct{}

var _ interfaces.IWorkbookExporter = (*ExcelExporter)(nil)

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (x *ExcelExporter) Export(r analytics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCommissions); err != nil {
		return nil, err
	}

	commissionRows := make([][]any, 0, len(r.Commissions))
	for _, user := range analytics.SortedKeys(r.Commissions) {
		t := r.Commissions[user]
		commissionRows = append(commissionRows, []any{user, money(t.Frontend), money(t.Backend), money(t.Total)})
	}
	if err := writeSheet(f, SheetCommissions, []any{"UserID", "Frontend", "Backend", "Total"}, commissionRows); err != nil {
		return nil, err
	}

	if err := writeSheet(f, SheetRevenueBySource, []any{"LeadSource", "Revenue"}, amountRows(r.RevenueBySource)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetRevenueByMonth, []any{"Month", "Revenue"}, amountRows(r.RevenueByMonth)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func amountRows(m map[string]decimal.Decimal) [][]any {
	rows := make([][]any, 0, len(m))
	for _, k := range analytics.SortedKeys(m) {
		rows = append(rows, []any{k, money(m[k])})
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// money rounds to cents before the float64 conversion cells require.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
