package pricing

import (
	"strings"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RawMeasurement is a measurement as captured in the field, before parsing.
type RawMeasurement struct {
	RoomName         string
	SurfaceType      string
	AreaType         string
	Height           string
	Width            string
	InsulationType   string
	Thickness        string
	ClosedCellInches string
	OpenCellInches   string
	Notes            string
}

// NormalizeMeasurement parses and bounds-checks raw input and returns a
// measurement with SquareFeet computed. Identity fields (ID, JobID, CreatedAt)
// are left for the caller.
func NormalizeMeasurement(raw RawMeasurement, limits Limits) (entities.Measurement, error) {
	roomName := strings.TrimSpace(raw.RoomName)
	if roomName == "" {
		return entities.Measurement{}, entities.NewValidationError("room_name", "is required")
	}

	surface, err := parseSurfaceType(raw.SurfaceType)
	if err != nil {
		return entities.Measurement{}, err
	}
	area, err := parseAreaType(raw.AreaType, surface)
	if err != nil {
		return entities.Measurement{}, err
	}

	height, err := parseRequiredDecimal("height_ft", raw.Height)
	if err != nil {
		return entities.Measurement{}, err
	}
	width, err := parseRequiredDecimal("width_ft", raw.Width)
	if err != nil {
		return entities.Measurement{}, err
	}
	if err := checkRange("height_ft", height, limits.MinHeightFeet, limits.MaxHeightFeet); err != nil {
		return entities.Measurement{}, err
	}
	if err := checkRange("width_ft", width, limits.MinWidthFeet, limits.MaxWidthFeet); err != nil {
		return entities.Measurement{}, err
	}

	insulation, err := parseInsulationType(raw.InsulationType)
	if err != nil {
		return entities.Measurement{}, err
	}
	thickness, err := parseOptionalDecimal("thickness_inches", raw.Thickness)
	if err != nil {
		return entities.Measurement{}, err
	}
	closedCell, err := parseOptionalDecimal("closed_cell_inches", raw.ClosedCellInches)
	if err != nil {
		return entities.Measurement{}, err
	}
	openCell, err := parseOptionalDecimal("open_cell_inches", raw.OpenCellInches)
	if err != nil {
		return entities.Measurement{}, err
	}

	m := entities.Measurement{
		RoomName:         roomName,
		SurfaceType:      surface,
		AreaType:         area,
		HeightFt:         height,
		WidthFt:          width,
		InsulationType:   insulation,
		ThicknessInches:  thickness,
		ClosedCellInches: closedCell,
		OpenCellInches:   openCell,
		Notes:            strings.TrimSpace(raw.Notes),
	}
	m.Recompute()

	if err := checkRange("square_feet", m.SquareFeet, limits.MinRoomSizeSqft, limits.MaxRoomSizeSqft); err != nil {
		return entities.Measurement{}, err
	}
	return m, nil
}

func parseSurfaceType(v string) (entities.SurfaceType, error) {
	v = normalizeEnum(v)
	if v == "" {
		return "", entities.NewValidationError("surface_type", "is required")
	}
	for _, s := range entities.SurfaceTypes {
		if string(s) == v {
			return s, nil
		}
	}
	return "", entities.NewValidationError("surface_type", "unknown surface type %q", v)
}

func parseAreaType(v string, surface entities.SurfaceType) (entities.AreaType, error) {
	v = normalizeEnum(v)
	if v == "" {
		if surface == entities.SurfaceCeiling {
			return entities.AreaCeiling, nil
		}
		return entities.AreaExteriorWalls, nil
	}
	for _, a := range entities.AreaTypes {
		if string(a) == v {
			return a, nil
		}
	}
	return "", entities.NewValidationError("area_type", "unknown area type %q", v)
}

func parseInsulationType(v string) (entities.InsulationType, error) {
	v = normalizeEnum(v)
	if v == "" {
		return "", nil
	}
	for _, it := range entities.InsulationTypes {
		if string(it) == v {
			return it, nil
		}
	}
	return "", entities.NewValidationError("insulation_type", "unknown insulation type %q", v)
}

func normalizeEnum(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer("-", "_", " ", "_").Replace(v)
}

func parseRequiredDecimal(field, v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, entities.NewValidationError(field, "is required")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, entities.NewValidationError(field, "must be a number, got %q", v)
	}
	if !d.IsPositive() {
		return decimal.Zero, entities.NewValidationError(field, "must be greater than zero")
	}
	return d, nil
}

func parseOptionalDecimal(field, v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, entities.NewValidationError(field, "must be a number, got %q", v)
	}
	if d.IsNegative() {
		return decimal.Zero, entities.NewValidationError(field, "must not be negative")
	}
	return d, nil
}

func checkRange(field string, v decimal.Decimal, lo, hi float64) error {
	if v.LessThan(decimal.NewFromFloat(lo)) || v.GreaterThan(decimal.NewFromFloat(hi)) {
		return entities.NewValidationError(field, "%s outside [%v, %v]", v.String(), lo, hi)
	}
	return nil
}
