package pricing

import (
	"testing"

	"homeservices_crm/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Validate(t *testing.T) {
	require.NoError(t, DefaultTable().Validate())

	tests := []struct {
		name    string
		mutate  func(*Table)
		wantMsg string
	}{
		{
			name:    "missing material",
			mutate:  func(tb *Table) { delete(tb.Insulation.Materials, entities.InsulationBatt) },
			wantMsg: "insulation.materials.batt",
		},
		{
			name: "tier outside bounds",
			mutate: func(tb *Table) {
				tier := tb.Markup.Tiers[entities.BuildingCommercial]
				tier.Premium = 55
				tb.Markup.Tiers[entities.BuildingCommercial] = tier
			},
			wantMsg: "markup.tiers.commercial.premium",
		},
		{
			name:    "missing building type",
			mutate:  func(tb *Table) { delete(tb.Markup.Tiers, entities.BuildingMultiFamily) },
			wantMsg: "markup.tiers.multi_family",
		},
		{
			name:    "missing minimum",
			mutate:  func(tb *Table) { delete(tb.MinimumJobValues, entities.ServiceHVAC) },
			wantMsg: "minimum_job_values.hvac",
		},
		{
			name:    "inverted height limits",
			mutate:  func(tb *Table) { tb.Limits.MaxHeightFeet = 0.5 },
			wantMsg: "MaxHeightFeet",
		},
		{
			name:    "commission rate out of range",
			mutate:  func(tb *Table) { tb.Commission.FrontendRate = 2 },
			wantMsg: "FrontendRate",
		},
		{
			name:    "no lead sources",
			mutate:  func(tb *Table) { tb.LeadSources = nil },
			wantMsg: "LeadSources",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb := DefaultTable()
			tc.mutate(tb)
			err := tb.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestTable_MarkupFor(t *testing.T) {
	tb := DefaultTable()

	got, err := tb.MarkupFor(entities.BuildingResidential, entities.TierDefault)
	require.NoError(t, err)
	assert.Equal(t, "25", got.String())

	got, err = tb.MarkupFor(entities.BuildingCommercial, entities.TierVolume)
	require.NoError(t, err)
	assert.Equal(t, "12", got.String())

	_, err = tb.MarkupFor("warehouse", entities.TierDefault)
	requireField(t, err, "building_type")
	_, err = tb.MarkupFor(entities.BuildingResidential, "loyalty")
	requireField(t, err, "tier_flag")
}
