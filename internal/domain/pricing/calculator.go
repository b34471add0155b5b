package pricing

import (
	"fmt"
	"strings"

	"homeservices_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PriceLineItem prices an insulation measurement. The result carries the
// raw total only; job minimums are the aggregator's concern.
func PriceLineItem(m entities.Measurement, t *Table) (entities.LineItem, error) {
	switch m.InsulationType {
	case "":
		return entities.LineItem{}, entities.NewValidationError("insulation_type", "is required to price insulation")
	case entities.InsulationHybrid:
		return priceHybrid(m, t)
	}

	material, ok := t.Insulation.Materials[m.InsulationType]
	if !ok {
		return entities.LineItem{}, entities.NewValidationError("insulation_type", "no pricing for %q", m.InsulationType)
	}

	thickness := m.ThicknessInches
	if thickness.IsZero() {
		thickness = decimal.NewFromFloat(material.DefaultThicknessInches)
	}
	if err := checkThickness("thickness_inches", thickness, material); err != nil {
		return entities.LineItem{}, err
	}
	rValue := thickness.Mul(decimal.NewFromFloat(material.RValuePerInch))

	desc := fmt.Sprintf("%s insulation, %s in - %s (%s, %s sqft)",
		humanize(string(m.InsulationType)), thickness.String(), m.RoomName, m.SurfaceType, m.SquareFeet.StringFixed(2))
	item := entities.NewLineItem(m.ID, entities.LineItemInsulation, desc, m.SquareFeet, decimal.NewFromFloat(material.BasePricePerSqft))
	item.RValue = rValueLabel(rValue, "")
	return item, nil
}

// HybridUnitPrice is the per-square-foot price of a closed-cell/open-cell system.
func HybridUnitPrice(closedCellInches, openCellInches decimal.Decimal, h HybridPricing) decimal.Decimal {
	closed := closedCellInches.Mul(decimal.NewFromFloat(h.ClosedCellBasePerInch))
	open := openCellInches.Mul(decimal.NewFromFloat(h.OpenCellBasePerInch))
	return closed.Add(open).Mul(decimal.NewFromFloat(h.ComplexityMultiplier))
}

func priceHybrid(m entities.Measurement, t *Table) (entities.LineItem, error) {
	// A zero layer is a single-type job filed under the wrong category.
	if !m.ClosedCellInches.IsPositive() {
		return entities.LineItem{}, entities.NewValidationError("closed_cell_inches", "hybrid systems need a closed-cell layer greater than zero")
	}
	if !m.OpenCellInches.IsPositive() {
		return entities.LineItem{}, entities.NewValidationError("open_cell_inches", "hybrid systems need an open-cell layer greater than zero")
	}

	closedMat := t.Insulation.Materials[entities.InsulationClosedCell]
	openMat := t.Insulation.Materials[entities.InsulationOpenCell]
	if err := checkThickness("closed_cell_inches", m.ClosedCellInches, closedMat); err != nil {
		return entities.LineItem{}, err
	}
	if err := checkThickness("open_cell_inches", m.OpenCellInches, openMat); err != nil {
		return entities.LineItem{}, err
	}

	rValue := m.ClosedCellInches.Mul(decimal.NewFromFloat(closedMat.RValuePerInch)).
		Add(m.OpenCellInches.Mul(decimal.NewFromFloat(openMat.RValuePerInch)))

	desc := fmt.Sprintf("Hybrid insulation, %s in closed + %s in open - %s (%s, %s sqft)",
		m.ClosedCellInches.String(), m.OpenCellInches.String(), m.RoomName, m.SurfaceType, m.SquareFeet.StringFixed(2))
	unit := HybridUnitPrice(m.ClosedCellInches, m.OpenCellInches, t.Insulation.Hybrid)
	item := entities.NewLineItem(m.ID, entities.LineItemInsulation, desc, m.SquareFeet, unit)
	item.RValue = rValueLabel(rValue, "hybrid")
	return item, nil
}

func checkThickness(field string, inches decimal.Decimal, material InsulationMaterial) error {
	limit := decimal.NewFromFloat(material.MaxThicknessInches)
	if inches.GreaterThan(limit) {
		return entities.NewValidationError(field, "%s in exceeds the %s in maximum", inches.String(), limit.String())
	}
	return nil
}

func rValueLabel(r decimal.Decimal, suffix string) string {
	label := "R-" + r.Round(0).String()
	if suffix != "" {
		label += " (" + suffix + ")"
	}
	return label
}

// HVACEntry is one system install: the unit by tonnage plus its ductwork and vents.
type HVACEntry struct {
	SourceID         string
	Tons             decimal.Decimal
	DuctworkLinearFt decimal.Decimal
	VentCount        int
}

// PriceHVAC returns the unit line item followed by ductwork and vents when present.
func PriceHVAC(e HVACEntry, t *Table) ([]entities.LineItem, error) {
	if !e.Tons.IsPositive() {
		return nil, entities.NewValidationError("tons", "must be greater than zero")
	}
	if e.Tons.GreaterThan(decimal.NewFromFloat(t.HVAC.MaxTons)) {
		return nil, entities.NewValidationError("tons", "%s exceeds the %v ton maximum", e.Tons.String(), t.HVAC.MaxTons)
	}
	if e.DuctworkLinearFt.IsNegative() {
		return nil, entities.NewValidationError("ductwork_linear_ft", "must not be negative")
	}
	if e.VentCount < 0 {
		return nil, entities.NewValidationError("vent_count", "must not be negative")
	}

	items := []entities.LineItem{
		entities.NewLineItem(e.SourceID, entities.LineItemHVACUnit,
			fmt.Sprintf("HVAC system, %s ton", e.Tons.String()),
			e.Tons, decimal.NewFromFloat(t.HVAC.BasePricePerTon)),
	}
	if e.DuctworkLinearFt.IsPositive() {
		items = append(items, entities.NewLineItem(e.SourceID, entities.LineItemDuctwork,
			fmt.Sprintf("Ductwork, %s linear ft", e.DuctworkLinearFt.String()),
			e.DuctworkLinearFt, decimal.NewFromFloat(t.HVAC.DuctworkPricePerLinearFt)))
	}
	if e.VentCount > 0 {
		items = append(items, entities.NewLineItem(e.SourceID, entities.LineItemVents,
			fmt.Sprintf("Vents x%d", e.VentCount),
			decimal.NewFromInt(int64(e.VentCount)), decimal.NewFromFloat(t.HVAC.VentPriceEach)))
	}
	return items, nil
}

type PlasterCondition string

const (
	PlasterGood PlasterCondition = "good"
	PlasterFair PlasterCondition = "fair"
	PlasterPoor PlasterCondition = "poor"
)

func ParsePlasterCondition(v string) (PlasterCondition, error) {
	switch c := PlasterCondition(normalizeEnum(v)); c {
	case PlasterGood, PlasterFair, PlasterPoor:
		return c, nil
	case "":
		return "", entities.NewValidationError("condition", "is required")
	default:
		return "", entities.NewValidationError("condition", "unknown plaster condition %q", v)
	}
}

// PlasterEntry is a plaster repair over a measured surface.
type PlasterEntry struct {
	SourceID   string
	RoomName   string
	Surface    entities.SurfaceType
	Condition  PlasterCondition
	SquareFeet decimal.Decimal
	PrepHours  decimal.Decimal
}

// PlasterEntryFromMeasurement builds an entry from a normalized measurement.
func PlasterEntryFromMeasurement(m entities.Measurement, condition PlasterCondition, prepHours decimal.Decimal) PlasterEntry {
	return PlasterEntry{
		SourceID:   m.ID,
		RoomName:   m.RoomName,
		Surface:    m.SurfaceType,
		Condition:  condition,
		SquareFeet: m.SquareFeet,
		PrepHours:  prepHours,
	}
}

// PricePlaster returns the repair line item and, when hours are given, a prep-work item.
func PricePlaster(e PlasterEntry, t *Table) ([]entities.LineItem, error) {
	if !e.SquareFeet.IsPositive() {
		return nil, entities.NewValidationError("square_feet", "must be greater than zero")
	}
	if e.PrepHours.IsNegative() {
		return nil, entities.NewValidationError("prep_hours", "must not be negative")
	}

	var rates PlasterRates
	switch e.Surface {
	case entities.SurfaceWall:
		rates = t.Plaster.Wall
	case entities.SurfaceCeiling:
		rates = t.Plaster.Ceiling
	default:
		return nil, entities.NewValidationError("surface_type", "unknown surface type %q", e.Surface)
	}

	var rate float64
	switch e.Condition {
	case PlasterGood:
		rate = rates.Good
	case PlasterFair:
		rate = rates.Fair
	case PlasterPoor:
		rate = rates.Poor
	default:
		return nil, entities.NewValidationError("condition", "unknown plaster condition %q", e.Condition)
	}

	items := []entities.LineItem{
		entities.NewLineItem(e.SourceID, entities.LineItemPlaster,
			fmt.Sprintf("Plaster repair (%s %s) - %s", e.Condition, e.Surface, strings.TrimSpace(e.RoomName)),
			e.SquareFeet, decimal.NewFromFloat(rate)),
	}
	if e.PrepHours.IsPositive() {
		items = append(items, entities.NewLineItem(e.SourceID, entities.LineItemPrepWork,
			fmt.Sprintf("Prep work, %s h", e.PrepHours.String()),
			e.PrepHours, decimal.NewFromFloat(t.Plaster.PrepWorkHourly)))
	}
	return items, nil
}

func humanize(v string) string {
	v = strings.ReplaceAll(v, "_", " ")
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
