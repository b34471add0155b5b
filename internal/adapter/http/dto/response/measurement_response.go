package response

import (
	"time"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MeasurementResponse struct {
	ID               string           `json:"id"`
	JobID            string           `json:"job_id"`
	RoomName         string           `json:"room_name"`
	SurfaceType      string           `json:"surface_type"`
	AreaType         string           `json:"area_type"`
	HeightFt         decimal.Decimal  `json:"height_ft"`
	WidthFt          decimal.Decimal  `json:"width_ft"`
	SquareFeet       decimal.Decimal  `json:"square_feet"`
	InsulationType   string           `json:"insulation_type,omitempty"`
	ThicknessInches  *decimal.Decimal `json:"thickness_inches,omitempty"`
	ClosedCellInches *decimal.Decimal `json:"closed_cell_inches,omitempty"`
	OpenCellInches   *decimal.Decimal `json:"open_cell_inches,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

func FromMeasurement(m entities.Measurement) MeasurementResponse {
	return MeasurementResponse{
		ID:               m.ID,
		JobID:            m.JobID,
		RoomName:         m.RoomName,
		SurfaceType:      string(m.SurfaceType),
		AreaType:         string(m.AreaType),
		HeightFt:         m.HeightFt,
		WidthFt:          m.WidthFt,
		SquareFeet:       m.SquareFeet,
		InsulationType:   string(m.InsulationType),
		ThicknessInches:  nonZero(m.ThicknessInches),
		ClosedCellInches: nonZero(m.ClosedCellInches),
		OpenCellInches:   nonZero(m.OpenCellInches),
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}

func FromMeasurements(ms []entities.Measurement) []MeasurementResponse {
	out := make([]MeasurementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMeasurement(m))
	}
	return out
}

func nonZero(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}
