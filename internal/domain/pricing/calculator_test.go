package pricing

import (
	"errors"
	"testing"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func measurement(h, w string, it entities.InsulationType) entities.Measurement {
	m := entities.Measurement{
		ID:             "m-1",
		RoomName:       "Living Room",
		SurfaceType:    entities.SurfaceWall,
		AreaType:       entities.AreaExteriorWalls,
		HeightFt:       dec(h),
		WidthFt:        dec(w),
		InsulationType: it,
	}
	m.Recompute()
	return m
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *entities.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, verr.Field)
}

func TestPriceLineItem_SingleType(t *testing.T) {
	table := DefaultTable()

	t.Run("closed cell 10x12", func(t *testing.T) {
		item, err := PriceLineItem(measurement("10", "12", entities.InsulationClosedCell), table)
		require.NoError(t, err)
		assert.Equal(t, "120.00", item.Quantity.StringFixed(2))
		assert.Equal(t, "2.50", item.UnitPrice.StringFixed(2))
		assert.Equal(t, "300.00", item.Total.StringFixed(2))
		assert.Equal(t, "R-21", item.RValue)
		assert.Equal(t, entities.LineItemInsulation, item.Kind)
		assert.Equal(t, "m-1", item.SourceID)
	})

	t.Run("explicit thickness drives r-value", func(t *testing.T) {
		m := measurement("8", "10", entities.InsulationOpenCell)
		m.ThicknessInches = dec("5")
		item, err := PriceLineItem(m, table)
		require.NoError(t, err)
		assert.Equal(t, "R-19", item.RValue)
		assert.Equal(t, "100.00", item.Total.StringFixed(2))
	})

	t.Run("thickness above cap is rejected", func(t *testing.T) {
		m := measurement("8", "10", entities.InsulationClosedCell)
		m.ThicknessInches = dec("6.5")
		_, err := PriceLineItem(m, table)
		requireField(t, err, "thickness_inches")
	})

	t.Run("missing insulation type", func(t *testing.T) {
		_, err := PriceLineItem(measurement("8", "10", ""), table)
		requireField(t, err, "insulation_type")
	})
}

func TestPriceLineItem_Hybrid(t *testing.T) {
	table := DefaultTable()

	t.Run("weighted layers with multiplier", func(t *testing.T) {
		m := measurement("10", "10", entities.InsulationHybrid)
		m.ClosedCellInches = dec("1.5")
		m.OpenCellInches = dec("2.3")

		item, err := PriceLineItem(m, table)
		require.NoError(t, err)
		// (1.5*0.90 + 2.3*0.25) * 1.15 = 2.21375 per sqft
		assert.True(t, dec("2.21375").Equal(item.UnitPrice), "unit price %s", item.UnitPrice)
		assert.Equal(t, "221.38", item.Total.StringFixed(2))
		assert.Equal(t, "R-19 (hybrid)", item.RValue)
	})

	t.Run("never equals the naive sum", func(t *testing.T) {
		layers := [][2]string{{"1", "1"}, {"2", "3.5"}, {"0.5", "6"}, {"4", "0.25"}}
		for _, l := range layers {
			m := measurement("9", "14", entities.InsulationHybrid)
			m.ClosedCellInches = dec(l[0])
			m.OpenCellInches = dec(l[1])
			item, err := PriceLineItem(m, table)
			require.NoError(t, err)

			naive := HybridUnitPrice(m.ClosedCellInches, m.OpenCellInches, HybridPricing{
				ClosedCellBasePerInch: table.Insulation.Hybrid.ClosedCellBasePerInch,
				OpenCellBasePerInch:   table.Insulation.Hybrid.OpenCellBasePerInch,
				ComplexityMultiplier:  1,
			}).Mul(m.SquareFeet).Round(2)
			assert.False(t, naive.Equal(item.Total), "layers %v priced at naive sum %s", l, naive)
		}
	})

	t.Run("zero layer is rejected", func(t *testing.T) {
		m := measurement("10", "10", entities.InsulationHybrid)
		m.ClosedCellInches = dec("2")
		_, err := PriceLineItem(m, table)
		requireField(t, err, "open_cell_inches")

		m.ClosedCellInches = decimal.Zero
		m.OpenCellInches = dec("3")
		_, err = PriceLineItem(m, table)
		requireField(t, err, "closed_cell_inches")
	})

	t.Run("layer above cap is rejected", func(t *testing.T) {
		m := measurement("10", "10", entities.InsulationHybrid)
		m.ClosedCellInches = dec("7")
		m.OpenCellInches = dec("2")
		_, err := PriceLineItem(m, table)
		requireField(t, err, "closed_cell_inches")
	})
}

func TestPriceHVAC(t *testing.T) {
	table := DefaultTable()

	items, err := PriceHVAC(HVACEntry{SourceID: "hvac-1", Tons: dec("3"), DuctworkLinearFt: dec("120"), VentCount: 8}, table)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, entities.LineItemHVACUnit, items[0].Kind)
	assert.Equal(t, "5400.00", items[0].Total.StringFixed(2))
	assert.Equal(t, entities.LineItemDuctwork, items[1].Kind)
	assert.Equal(t, "1500.00", items[1].Total.StringFixed(2))
	assert.Equal(t, entities.LineItemVents, items[2].Kind)
	assert.Equal(t, "680.00", items[2].Total.StringFixed(2))
	for _, it := range items {
		assert.Equal(t, "hvac-1", it.SourceID)
	}

	items, err = PriceHVAC(HVACEntry{Tons: dec("2.5")}, table)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "4500.00", items[0].Total.StringFixed(2))

	_, err = PriceHVAC(HVACEntry{Tons: dec("30")}, table)
	requireField(t, err, "tons")
	_, err = PriceHVAC(HVACEntry{Tons: decimal.Zero}, table)
	requireField(t, err, "tons")
	_, err = PriceHVAC(HVACEntry{Tons: dec("2"), VentCount: -1}, table)
	requireField(t, err, "vent_count")
}

func TestPricePlaster(t *testing.T) {
	table := DefaultTable()

	items, err := PricePlaster(PlasterEntry{RoomName: "Hall", Surface: entities.SurfaceWall, Condition: PlasterFair, SquareFeet: dec("200"), PrepHours: dec("4")}, table)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "950.00", items[0].Total.StringFixed(2))
	assert.Equal(t, entities.LineItemPrepWork, items[1].Kind)
	assert.Equal(t, "260.00", items[1].Total.StringFixed(2))

	m := measurement("10", "10", "")
	m.SurfaceType = entities.SurfaceCeiling
	items, err = PricePlaster(PlasterEntryFromMeasurement(m, PlasterPoor, decimal.Zero), table)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "725.00", items[0].Total.StringFixed(2))

	_, err = PricePlaster(PlasterEntry{Surface: entities.SurfaceWall, Condition: "rough", SquareFeet: dec("10")}, table)
	requireField(t, err, "condition")
}

func TestParsePlasterCondition(t *testing.T) {
	c, err := ParsePlasterCondition(" Poor ")
	require.NoError(t, err)
	assert.Equal(t, PlasterPoor, c)

	_, err = ParsePlasterCondition("")
	requireField(t, err, "condition")
	_, err = ParsePlasterCondition("excellent")
	requireField(t, err, "condition")
}
