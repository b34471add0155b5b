package entities

import "github.com/shopspring/decimal"

type LineItemKind string

const (
	LineItemInsulation LineItemKind = "insulation"
	LineItemHVACUnit   LineItemKind = "hvac_unit"
	LineItemDuctwork   LineItemKind = "ductwork"
	LineItemVents      LineItemKind = "vents"
	LineItemPlaster    LineItemKind = "plaster"
	LineItemPrepWork   LineItemKind = "prep_work"
)

// LineItem is a priced entry on an estimate. Total is always Quantity*UnitPrice
// rounded to cents; build one with NewLineItem.
type LineItem struct {
	SourceID    string          `json:"source_id"`
	Kind        LineItemKind    `json:"kind"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	RValue      string          `json:"r_value,omitempty"`
}

func NewLineItem(sourceID string, kind LineItemKind, description string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		SourceID:    sourceID,
		Kind:        kind,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       quantity.Mul(unitPrice).Round(2),
	}
}

// SumLineItems returns the sum of the line totals.
func SumLineItems(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}
