package pricing

import (
	"errors"
	"testing"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMeasurement(t *testing.T) {
	limits := DefaultTable().Limits

	t.Run("computes square feet", func(t *testing.T) {
		m, err := NormalizeMeasurement(RawMeasurement{
			RoomName:       " Living Room ",
			SurfaceType:    "Wall",
			Height:         "10",
			Width:          "12",
			InsulationType: "Closed-Cell",
		}, limits)
		require.NoError(t, err)
		assert.Equal(t, "Living Room", m.RoomName)
		assert.Equal(t, entities.SurfaceWall, m.SurfaceType)
		assert.Equal(t, entities.AreaExteriorWalls, m.AreaType)
		assert.Equal(t, entities.InsulationClosedCell, m.InsulationType)
		assert.Equal(t, "120.00", m.SquareFeet.StringFixed(2))
	})

	t.Run("ceiling defaults area type", func(t *testing.T) {
		m, err := NormalizeMeasurement(RawMeasurement{RoomName: "Attic", SurfaceType: "ceiling", Height: "20", Width: "30"}, limits)
		require.NoError(t, err)
		assert.Equal(t, entities.AreaCeiling, m.AreaType)
		assert.Equal(t, entities.InsulationType(""), m.InsulationType)
	})

	t.Run("square feet matches height times width", func(t *testing.T) {
		dims := [][2]string{{"8.5", "11.25"}, {"9", "13.333"}, {"12.75", "14.2"}, {"1", "1"}, {"40", "200"}}
		for _, d := range dims {
			m, err := NormalizeMeasurement(RawMeasurement{RoomName: "Room", SurfaceType: "wall", Height: d[0], Width: d[1]}, limits)
			require.NoError(t, err, "dims %v", d)
			h, _ := decimal.NewFromString(d[0])
			w, _ := decimal.NewFromString(d[1])
			assert.True(t, h.Mul(w).Round(2).Equal(m.SquareFeet), "dims %v got %s", d, m.SquareFeet)
		}
	})

	tests := []struct {
		name   string
		raw    RawMeasurement
		limits *Limits
		field  string
	}{
		{name: "blank room", raw: RawMeasurement{RoomName: "  ", SurfaceType: "wall", Height: "10", Width: "10"}, field: "room_name"},
		{name: "missing surface", raw: RawMeasurement{RoomName: "Den", Height: "10", Width: "10"}, field: "surface_type"},
		{name: "unknown surface", raw: RawMeasurement{RoomName: "Den", SurfaceType: "floor", Height: "10", Width: "10"}, field: "surface_type"},
		{name: "unknown area", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", AreaType: "basement", Height: "10", Width: "10"}, field: "area_type"},
		{name: "missing height", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Width: "10"}, field: "height_ft"},
		{name: "missing width", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: " "}, field: "width_ft"},
		{name: "non numeric height", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "ten", Width: "10"}, field: "height_ft"},
		{name: "zero width", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: "0"}, field: "width_ft"},
		{name: "height above max", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "45", Width: "10"}, field: "height_ft"},
		{name: "width below min", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: "0.5"}, field: "width_ft"},
		{name: "unknown insulation", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: "10", InsulationType: "cork"}, field: "insulation_type"},
		{name: "negative thickness", raw: RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: "10", Thickness: "-1"}, field: "thickness_inches"},
		{
			name:   "room too large",
			raw:    RawMeasurement{RoomName: "Den", SurfaceType: "wall", Height: "10", Width: "12"},
			limits: &Limits{MinHeightFeet: 1, MaxHeightFeet: 40, MinWidthFeet: 1, MaxWidthFeet: 200, MinRoomSizeSqft: 1, MaxRoomSizeSqft: 100},
			field:  "square_feet",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := limits
			if tc.limits != nil {
				l = *tc.limits
			}
			_, err := NormalizeMeasurement(tc.raw, l)
			var verr *entities.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}
