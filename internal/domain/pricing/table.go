package pricing

import (
	"errors"
	"fmt"

	"homeservices_crm/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Table is the full pricing and markup configuration. It is decoded from the
// pricing file by the config source and must pass Validate before use, so the
// calculators can index it without checking for missing keys.
type Table struct {
	Limits           Limits                           `mapstructure:"limits" yaml:"limits"`
	Insulation       InsulationPricing                `mapstructure:"insulation" yaml:"insulation"`
	HVAC             HVACPricing                      `mapstructure:"hvac" yaml:"hvac"`
	Plaster          PlasterPricing                   `mapstructure:"plaster" yaml:"plaster"`
	Markup           MarkupConfig                     `mapstructure:"markup" yaml:"markup"`
	Approval         ApprovalConfig                   `mapstructure:"approval" yaml:"approval"`
	MinimumJobValues map[entities.ServiceType]float64 `mapstructure:"minimum_job_values" yaml:"minimum_job_values" validate:"required,dive,gte=0"`
	Commission       CommissionConfig                 `mapstructure:"commission" yaml:"commission"`
	LeadSources      []string                         `mapstructure:"lead_sources" yaml:"lead_sources" validate:"required,min=1,dive,required"`
}

// Limits bound a single room measurement.
type Limits struct {
	MinHeightFeet   float64 `mapstructure:"min_height_feet" yaml:"min_height_feet" validate:"gt=0"`
	MaxHeightFeet   float64 `mapstructure:"max_height_feet" yaml:"max_height_feet" validate:"gtfield=MinHeightFeet"`
	MinWidthFeet    float64 `mapstructure:"min_width_feet" yaml:"min_width_feet" validate:"gt=0"`
	MaxWidthFeet    float64 `mapstructure:"max_width_feet" yaml:"max_width_feet" validate:"gtfield=MinWidthFeet"`
	MinRoomSizeSqft float64 `mapstructure:"min_room_size_sqft" yaml:"min_room_size_sqft" validate:"gt=0"`
	MaxRoomSizeSqft float64 `mapstructure:"max_room_size_sqft" yaml:"max_room_size_sqft" validate:"gtfield=MinRoomSizeSqft"`
}

type InsulationMaterial struct {
	BasePricePerSqft       float64 `mapstructure:"base_price_per_sqft" yaml:"base_price_per_sqft" validate:"gt=0"`
	RValuePerInch          float64 `mapstructure:"r_value_per_inch" yaml:"r_value_per_inch" validate:"gt=0"`
	MaxThicknessInches     float64 `mapstructure:"max_thickness_inches" yaml:"max_thickness_inches" validate:"gt=0"`
	DefaultThicknessInches float64 `mapstructure:"default_thickness_inches" yaml:"default_thickness_inches" validate:"gt=0,ltefield=MaxThicknessInches"`
}

// HybridPricing prices a closed-cell + open-cell system. Bases are per square
// foot per inch of each layer.
type HybridPricing struct {
	ClosedCellBasePerInch float64 `mapstructure:"closed_cell_base_per_inch" yaml:"closed_cell_base_per_inch" validate:"gt=0"`
	OpenCellBasePerInch   float64 `mapstructure:"open_cell_base_per_inch" yaml:"open_cell_base_per_inch" validate:"gt=0"`
	ComplexityMultiplier  float64 `mapstructure:"complexity_multiplier" yaml:"complexity_multiplier" validate:"gt=0"`
}

type InsulationPricing struct {
	Materials map[entities.InsulationType]InsulationMaterial `mapstructure:"materials" yaml:"materials" validate:"required,dive"`
	Hybrid    HybridPricing                                  `mapstructure:"hybrid" yaml:"hybrid"`
}

type HVACPricing struct {
	BasePricePerTon          float64 `mapstructure:"base_price_per_ton" yaml:"base_price_per_ton" validate:"gt=0"`
	DuctworkPricePerLinearFt float64 `mapstructure:"ductwork_price_per_linear_ft" yaml:"ductwork_price_per_linear_ft" validate:"gt=0"`
	VentPriceEach            float64 `mapstructure:"vent_price_each" yaml:"vent_price_each" validate:"gt=0"`
	MaxTons                  float64 `mapstructure:"max_tons" yaml:"max_tons" validate:"gt=0"`
}

// PlasterRates are per-square-foot prices by surface condition.
type PlasterRates struct {
	Good float64 `mapstructure:"good" yaml:"good" validate:"gt=0"`
	Fair float64 `mapstructure:"fair" yaml:"fair" validate:"gt=0"`
	Poor float64 `mapstructure:"poor" yaml:"poor" validate:"gt=0"`
}

type PlasterPricing struct {
	Wall           PlasterRates `mapstructure:"wall" yaml:"wall"`
	Ceiling        PlasterRates `mapstructure:"ceiling" yaml:"ceiling"`
	PrepWorkHourly float64      `mapstructure:"prep_work_hourly" yaml:"prep_work_hourly" validate:"gt=0"`
}

type MarkupTier struct {
	Default     float64 `mapstructure:"default" yaml:"default"`
	Premium     float64 `mapstructure:"premium" yaml:"premium"`
	Volume      float64 `mapstructure:"volume" yaml:"volume"`
	Specialized float64 `mapstructure:"specialized" yaml:"specialized"`
}

type MarkupConfig struct {
	PercentageMin float64                              `mapstructure:"percentage_min" yaml:"percentage_min" validate:"gte=0"`
	PercentageMax float64                              `mapstructure:"percentage_max" yaml:"percentage_max" validate:"gtfield=PercentageMin"`
	Tiers         map[entities.BuildingType]MarkupTier `mapstructure:"tiers" yaml:"tiers" validate:"required"`
}

type ApprovalConfig struct {
	AutoApprovalThreshold float64 `mapstructure:"auto_approval_threshold" yaml:"auto_approval_threshold" validate:"gt=0"`
}

type CommissionConfig struct {
	FrontendRate float64 `mapstructure:"frontend_rate" yaml:"frontend_rate" validate:"gt=0,lt=1"`
	BackendRate  float64 `mapstructure:"backend_rate" yaml:"backend_rate" validate:"gt=0,lt=1"`
	MinJobValue  float64 `mapstructure:"min_job_value" yaml:"min_job_value" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks field ranges and that every closed enumeration the
// calculators index has an entry.
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("pricing table is nil")
	}
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("pricing table: %w", err)
	}

	var errs []error
	for _, it := range entities.InsulationTypes {
		if it == entities.InsulationHybrid {
			continue
		}
		if _, ok := t.Insulation.Materials[it]; !ok {
			errs = append(errs, fmt.Errorf("insulation.materials.%s is missing", it))
		}
	}
	for _, bt := range entities.BuildingTypes {
		tier, ok := t.Markup.Tiers[bt]
		if !ok {
			errs = append(errs, fmt.Errorf("markup.tiers.%s is missing", bt))
			continue
		}
		for name, pct := range map[string]float64{
			"default": tier.Default, "premium": tier.Premium, "volume": tier.Volume, "specialized": tier.Specialized,
		} {
			if pct < t.Markup.PercentageMin || pct > t.Markup.PercentageMax {
				errs = append(errs, fmt.Errorf("markup.tiers.%s.%s=%v outside [%v, %v]", bt, name, pct, t.Markup.PercentageMin, t.Markup.PercentageMax))
			}
		}
	}
	for _, st := range entities.ServiceTypes {
		if _, ok := t.MinimumJobValues[st]; !ok {
			errs = append(errs, fmt.Errorf("minimum_job_values.%s is missing", st))
		}
	}
	if t.Limits.MinHeightFeet*t.Limits.MinWidthFeet > t.Limits.MaxRoomSizeSqft {
		errs = append(errs, errors.New("limits: smallest allowed room exceeds max_room_size_sqft"))
	}
	return errors.Join(errs...)
}

// MarkupFor resolves the tier percentage for a building type and flag.
func (t *Table) MarkupFor(bt entities.BuildingType, flag entities.TierFlag) (decimal.Decimal, error) {
	tier, ok := t.Markup.Tiers[bt]
	if !ok {
		return decimal.Zero, entities.NewValidationError("building_type", "unknown building type %q", bt)
	}
	switch flag {
	case entities.TierDefault:
		return decimal.NewFromFloat(tier.Default), nil
	case entities.TierPremium:
		return decimal.NewFromFloat(tier.Premium), nil
	case entities.TierVolume:
		return decimal.NewFromFloat(tier.Volume), nil
	case entities.TierSpecialized:
		return decimal.NewFromFloat(tier.Specialized), nil
	}
	return decimal.Zero, entities.NewValidationError("tier_flag", "unknown tier flag %q", flag)
}

// MinimumJobValue returns the floor for a service type.
func (t *Table) MinimumJobValue(st entities.ServiceType) decimal.Decimal {
	return decimal.NewFromFloat(t.MinimumJobValues[st])
}

func (t *Table) AutoApprovalThreshold() decimal.Decimal {
	return decimal.NewFromFloat(t.Approval.AutoApprovalThreshold)
}

// DefaultTable is the built-in table used when no pricing file is configured.
func DefaultTable() *Table {
	return &Table{
		Limits: Limits{
			MinHeightFeet:   1,
			MaxHeightFeet:   40,
			MinWidthFeet:    1,
			MaxWidthFeet:    200,
			MinRoomSizeSqft: 1,
			MaxRoomSizeSqft: 10000,
		},
		Insulation: InsulationPricing{
			Materials: map[entities.InsulationType]InsulationMaterial{
				entities.InsulationClosedCell: {BasePricePerSqft: 2.50, RValuePerInch: 7.0, MaxThicknessInches: 6, DefaultThicknessInches: 3},
				entities.InsulationOpenCell:   {BasePricePerSqft: 1.25, RValuePerInch: 3.7, MaxThicknessInches: 12, DefaultThicknessInches: 5.5},
				entities.InsulationBatt:       {BasePricePerSqft: 0.95, RValuePerInch: 3.2, MaxThicknessInches: 10, DefaultThicknessInches: 3.5},
				entities.InsulationBlownIn:    {BasePricePerSqft: 1.10, RValuePerInch: 2.8, MaxThicknessInches: 16, DefaultThicknessInches: 10},
			},
			Hybrid: HybridPricing{
				ClosedCellBasePerInch: 0.90,
				OpenCellBasePerInch:   0.25,
				ComplexityMultiplier:  1.15,
			},
		},
		HVAC: HVACPricing{
			BasePricePerTon:          1800,
			DuctworkPricePerLinearFt: 12.50,
			VentPriceEach:            85,
			MaxTons:                  25,
		},
		Plaster: PlasterPricing{
			Wall:           PlasterRates{Good: 3.25, Fair: 4.75, Poor: 6.50},
			Ceiling:        PlasterRates{Good: 3.75, Fair: 5.25, Poor: 7.25},
			PrepWorkHourly: 65,
		},
		Markup: MarkupConfig{
			PercentageMin: 10,
			PercentageMax: 50,
			Tiers: map[entities.BuildingType]MarkupTier{
				entities.BuildingResidential: {Default: 25, Premium: 35, Volume: 15, Specialized: 40},
				entities.BuildingCommercial:  {Default: 20, Premium: 30, Volume: 12, Specialized: 35},
				entities.BuildingMultiFamily: {Default: 18, Premium: 28, Volume: 10, Specialized: 32},
			},
		},
		Approval: ApprovalConfig{AutoApprovalThreshold: 5000},
		MinimumJobValues: map[entities.ServiceType]float64{
			entities.ServiceInsulation: 1000,
			entities.ServiceHVAC:       2500,
			entities.ServicePlaster:    500,
		},
		Commission: CommissionConfig{
			FrontendRate: 0.02,
			BackendRate:  0.01,
			MinJobValue:  500,
		},
		LeadSources: []string{"referral", "drive_by", "website", "google_ads", "facebook", "door_hanger", "repeat_customer"},
	}
}
