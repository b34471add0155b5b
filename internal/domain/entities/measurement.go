package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SurfaceType string

const (
	SurfaceWall    SurfaceType = "wall"
	SurfaceCeiling SurfaceType = "ceiling"
)

type AreaType string

const (
	AreaExteriorWalls AreaType = "exterior_walls"
	AreaInteriorWalls AreaType = "interior_walls"
	AreaCeiling       AreaType = "ceiling"
	AreaGable         AreaType = "gable"
	AreaRoof          AreaType = "roof"
	AreaConcrete      AreaType = "concrete"
)

type InsulationType string

const (
	InsulationClosedCell InsulationType = "closed_cell"
	InsulationOpenCell   InsulationType = "open_cell"
	InsulationBatt       InsulationType = "batt"
	InsulationBlownIn    InsulationType = "blown_in"
	InsulationHybrid     InsulationType = "hybrid"
)

var (
	SurfaceTypes    = []SurfaceType{SurfaceWall, SurfaceCeiling}
	AreaTypes       = []AreaType{AreaExteriorWalls, AreaInteriorWalls, AreaCeiling, AreaGable, AreaRoof, AreaConcrete}
	InsulationTypes = []InsulationType{InsulationClosedCell, InsulationOpenCell, InsulationBatt, InsulationBlownIn, InsulationHybrid}
)

// Measurement is a normalized room measurement captured in the field.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// SquareFeet is derived from HeightFt and WidthFt and is never set on its own;
// use Recompute after changing either dimension.
type Measurement struct {
	ID               string          `json:"id"`
	JobID            string          `json:"job_id"`
	RoomName         string          `json:"room_name"`
	SurfaceType      SurfaceType     `json:"surface_type"`
	AreaType         AreaType        `json:"area_type"`
	HeightFt         decimal.Decimal `json:"height_ft"`
	WidthFt          decimal.Decimal `json:"width_ft"`
	SquareFeet       decimal.Decimal `json:"square_feet"`
	InsulationType   InsulationType  `json:"insulation_type,omitempty"`
	ThicknessInches  decimal.Decimal `json:"thickness_inches"`
	ClosedCellInches decimal.Decimal `json:"closed_cell_inches"`
	OpenCellInches   decimal.Decimal `json:"open_cell_inches"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Recompute derives SquareFeet from the current dimensions, rounded to 2 places.
func (m *Measurement) Recompute() {
	m.SquareFeet = m.HeightFt.Mul(m.WidthFt).Round(2)
}

func (m Measurement) IsHybrid() bool {
	return m.InsulationType == InsulationHybrid
}
