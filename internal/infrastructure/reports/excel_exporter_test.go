package reports

import (
	"bytes"
	"testing"

	"homeservices_crm/internal/domain/analytics"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Export(t *testing.T) {
	report := analytics.Report{
		Month: "2026-04",
		Commissions: map[string]analytics.CommissionTotals{
			"u2": {Frontend: decimal.NewFromInt(10), Backend: decimal.Zero, Total: decimal.NewFromInt(10)},
			"u1": {Frontend: decimal.NewFromInt(200), Backend: decimal.NewFromInt(100), Total: decimal.NewFromInt(300)},
		},
		RevenueBySource: map[string]decimal.Decimal{
			"website":  decimal.Zero,
			"referral": decimal.RequireFromString("5000.50"),
		},
		RevenueByMonth: map[string]decimal.Decimal{
			"2026-04": decimal.RequireFromString("5000.50"),
		},
	}

	raw, err := NewExcelExporter().Export(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCommissions, SheetRevenueBySource, SheetRevenueByMonth}, f.GetSheetList())

	rows, err := f.GetRows(SheetCommissions)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"UserID", "Frontend", "Backend", "Total"}, rows[0])
	assert.Equal(t, []string{"u1", "200", "100", "300"}, rows[1])
	assert.Equal(t, "u2", rows[2][0])

	rows, err = f.GetRows(SheetRevenueBySource)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"referral", "5000.5"}, rows[1])
	assert.Equal(t, []string{"website", "0"}, rows[2])
}

func TestExcelExporter_EmptyReport(t *testing.T) {
	raw, err := NewExcelExporter().Export(analytics.Report{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetRevenueByMonth)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Month", "Revenue"}}, rows)
}
