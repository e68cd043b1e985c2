// Package types - Cost breakdown types
package types

import (
	"github.com/shopspring/decimal"
)

// CostLine is the evaluated cost of one billable dimension.
// Money is decimal.Decimal throughout; float64 is never used for
// calculation, only for display by the presentation layer.
type CostLine struct {
	// Dimension identifies the billable dimension
	Dimension Dimension `json:"dimension"`

	// RawUsage is the projected monthly volume in raw units
	RawUsage decimal.Decimal `json:"raw_usage"`

	// FreeTier is the provider's flat monthly allowance
	FreeTier decimal.Decimal `json:"free_tier"`

	// Billable is max(0, RawUsage - FreeTier)
	Billable decimal.Decimal `json:"billable"`

	// UnitPrice is the price per pricing unit for this dimension
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Cost is Billable / unit_scale * UnitPrice
	Cost decimal.Decimal `json:"cost"`

	// Supported distinguishes "free" from "provider does not offer this
	// service"; it mirrors the accuracy sentinel in the pricing profile.
	Supported bool `json:"supported"`
}

// CostBreakdown is the evaluated monthly cost of one provider for a
// fixed set of usage volumes.
type CostBreakdown struct {
	// Text is the translation cost line
	Text CostLine `json:"text"`

	// Speech is the speech-to-text cost line
	Speech CostLine `json:"speech"`

	// OCR is the image OCR cost line
	OCR CostLine `json:"ocr"`

	// TotalMonthlyCost is the sum of the three cost lines
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`

	// TotalAnnualCost is exactly TotalMonthlyCost * 12
	TotalAnnualCost decimal.Decimal `json:"total_annual_cost"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`
}

// Lines returns the cost lines in canonical dimension order
func (b CostBreakdown) Lines() []CostLine {
	return []CostLine{b.Text, b.Speech, b.OCR}
}

// Line returns the cost line for a dimension
func (b CostBreakdown) Line(d Dimension) CostLine {
	switch d {
	case DimensionText:
		return b.Text
	case DimensionSpeech:
		return b.Speech
	case DimensionOCR:
		return b.OCR
	default:
		return CostLine{Dimension: d}
	}
}

// ProviderCost pairs a provider with its evaluated breakdown in a
// comparison result.
type ProviderCost struct {
	Provider  ProviderPricing `json:"provider"`
	Breakdown CostBreakdown   `json:"breakdown"`
}

// GrowthPoint is one point of a user-growth cost sweep
type GrowthPoint struct {
	// Users is the monthly active user count for this point
	Users int `json:"users"`

	// MonthlyCost is the projected total monthly cost at that count
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
}
