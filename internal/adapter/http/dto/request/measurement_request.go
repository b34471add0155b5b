package request

import (
	"encoding/json"

	"homeservices_crm/internal/domain/pricing"
)

// MeasurementRequest carries a room as entered on site. Dimensions accept
// either JSON numbers or numeric strings so no precision is lost before the
// decimal parse.
type MeasurementRequest struct {
	RoomName         string      `json:"room_name" binding:"required"`
	SurfaceType      string      `json:"surface_type" binding:"required"`
	AreaType         string      `json:"area_type"`
	Height           json.Number `json:"height" binding:"required"`
	Width            json.Number `json:"width" binding:"required"`
	InsulationType   string      `json:"insulation_type"`
	Thickness        json.Number `json:"thickness"`
	ClosedCellInches json.Number `json:"closed_cell_inches"`
	OpenCellInches   json.Number `json:"open_cell_inches"`
	Notes            string      `json:"notes"`
}

func (r MeasurementRequest) ToRaw() pricing.RawMeasurement {
	return pricing.RawMeasurement{
		RoomName:         r.RoomName,
		SurfaceType:      r.SurfaceType,
		AreaType:         r.AreaType,
		Height:           r.Height.String(),
		Width:            r.Width.String(),
		InsulationType:   r.InsulationType,
		Thickness:        r.Thickness.String(),
		ClosedCellInches: r.ClosedCellInches.String(),
		OpenCellInches:   r.OpenCellInches.String(),
		Notes:            r.Notes,
	}
}
