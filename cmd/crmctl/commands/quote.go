package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"homeservices_crm/cmd/crmctl/output"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/domain/estimating"
	"homeservices_crm/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	room         string
	surface      string
	area         string
	height       string
	width        string
	insulation   string
	thickness    string
	closedCell   string
	openCell     string
	buildingType string
	tier         string
	markup       string
}

type quoteResult struct {
	Measurement entities.Measurement `json:"measurement"`
	LineItem    entities.LineItem    `json:"line_item"`
	Estimate    entities.Estimate    `json:"estimate"`
}

func newQuoteCommand(root *rootOptions) *cobra.Command {
	opts := &quoteOptions{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a single insulation measurement",
		Long: `Price one room without touching the database.

Examples:
  crmctl quote --height 10 --width 12 --insulation closed_cell
  crmctl quote --height 8 --width 20 --insulation hybrid --closed-cell 2 --open-cell 3 --tier premium`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := root.table()
			if err != nil {
				return err
			}
			res, err := quote(opts, t)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if root.jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printQuote(cmd, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.room, "room", "Room", "Room name")
	f.StringVar(&opts.surface, "surface", "wall", "Surface type (wall, ceiling)")
	f.StringVar(&opts.area, "area", "", "Area type (exterior_walls, interior_walls, ceiling, gable, roof, concrete)")
	f.StringVar(&opts.height, "height", "", "Height in feet (required)")
	f.StringVar(&opts.width, "width", "", "Width in feet (required)")
	f.StringVar(&opts.insulation, "insulation", "", "Insulation type (required)")
	f.StringVar(&opts.thickness, "thickness", "", "Thickness in inches (default: material default)")
	f.StringVar(&opts.closedCell, "closed-cell", "", "Closed-cell inches for hybrid systems")
	f.StringVar(&opts.openCell, "open-cell", "", "Open-cell inches for hybrid systems")
	f.StringVar(&opts.buildingType, "building-type", string(entities.BuildingResidential), "Building type")
	f.StringVar(&opts.tier, "tier", "", "Tier flag (premium, volume, specialized)")
	f.StringVar(&opts.markup, "markup", "", "Markup override percentage")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("insulation")
	return cmd
}

func quote(opts *quoteOptions, t *pricing.Table) (quoteResult, error) {
	m, err := pricing.NormalizeMeasurement(pricing.RawMeasurement{
		RoomName:         opts.room,
		SurfaceType:      opts.surface,
		AreaType:         opts.area,
		Height:           opts.height,
		Width:            opts.width,
		InsulationType:   opts.insulation,
		Thickness:        opts.thickness,
		ClosedCellInches: opts.closedCell,
		OpenCellInches:   opts.openCell,
	}, t.Limits)
	if err != nil {
		return quoteResult{}, err
	}
	m.ID = "quote"

	li, err := pricing.PriceLineItem(m, t)
	if err != nil {
		return quoteResult{}, err
	}

	in := estimating.Input{
		JobID:          "quote",
		ServiceType:    entities.ServiceInsulation,
		BuildingType:   entities.BuildingType(strings.ToLower(strings.TrimSpace(opts.buildingType))),
		TierFlag:       entities.TierFlag(strings.ToLower(strings.TrimSpace(opts.tier))),
		LineItems:      []entities.LineItem{li},
		MeasurementIDs: []string{m.ID},
	}
	if v := strings.TrimSpace(opts.markup); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return quoteResult{}, entities.NewValidationError("markup", "not a number: %q", v)
		}
		in.MarkupOverride = &d
	}
	est, err := estimating.AggregateEstimate(in, t)
	if err != nil {
		return quoteResult{}, err
	}
	return quoteResult{Measurement: m, LineItem: li, Estimate: est}, nil
}

func printQuote(cmd *cobra.Command, r quoteResult) {
	w := cmd.OutOrStdout()

	output.Section(w, "Line item")
	output.KeyValue(w, "description", r.LineItem.Description)
	output.KeyValue(w, "square feet", r.Measurement.SquareFeet.StringFixed(2))
	output.KeyValue(w, "unit price", r.LineItem.UnitPrice.String())
	if r.LineItem.RValue != "" {
		output.KeyValue(w, "r-value", r.LineItem.RValue)
	}
	output.KeyValue(w, "total", money(r.LineItem.Total))

	output.Section(w, "Estimate")
	output.KeyValue(w, "subtotal", money(r.Estimate.Subtotal))
	output.KeyValue(w, "markup", r.Estimate.MarkupPercentage.String()+"%")
	output.KeyValue(w, "total", money(r.Estimate.TotalAmount))
	fmt.Fprintln(w)

	if r.Estimate.BelowMinimum {
		output.Warning(w, "subtotal is below the %s minimum of %s", r.Estimate.ServiceType, money(r.Estimate.MinimumJobValue))
	}
	if r.Estimate.RequiresApproval {
		output.Warning(w, "%s", r.Estimate.ApprovalMessage)
	} else if r.Estimate.ApprovalMessage != "" {
		output.Info(w, "%s", r.Estimate.ApprovalMessage)
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatRange(lo, hi float64) string {
	return fmt.Sprintf("%g%% - %g%%", lo, hi)
}
