package interfaces

import "homeservices_crm/internal/domain/pricing"

// IPricingSource returns the pricing table currently in effect. The table may
// be swapped between calls, so callers read it once per operation.
type IPricingSource interface {
	Current() *pricing.Table
}
