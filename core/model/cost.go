// Package model - Cost evaluation
package model

import (
	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
)

// EvaluateCost prices a set of usage volumes against one provider.
// Each dimension follows the same two-step rule:
//
//	billable = max(0, raw - free_tier)
//	cost     = billable / unit_scale * unit_price
//
// The free tier is a flat monthly allowance per service. A dimension the
// provider does not support (accuracy sentinel zero) yields zero cost
// and zero billable usage; the Supported flag on the line keeps that
// distinguishable from "within free tier".
func EvaluateCost(provider types.ProviderPricing, volumes types.UsageVolumes) types.CostBreakdown {
	text := evaluateLine(types.DimensionText, provider, volumes)
	speech := evaluateLine(types.DimensionSpeech, provider, volumes)
	ocr := evaluateLine(types.DimensionOCR, provider, volumes)

	monthly := text.Cost.Add(speech.Cost).Add(ocr.Cost)

	return types.CostBreakdown{
		Text:             text,
		Speech:           speech,
		OCR:              ocr,
		TotalMonthlyCost: monthly,
		TotalAnnualCost:  monthly.Mul(monthsPerYear),
		Currency:         types.CurrencyUSD,
	}
}

func evaluateLine(d types.Dimension, provider types.ProviderPricing, volumes types.UsageVolumes) types.CostLine {
	service := provider.Service(d)

	line := types.CostLine{
		Dimension: d,
		RawUsage:  volumes.Raw(provider, d),
		FreeTier:  service.FreeTier,
		UnitPrice: service.UnitPrice,
		Supported: service.Supported(),
	}

	if !line.Supported {
		line.Billable = decimal.Zero
		line.Cost = decimal.Zero
		return line
	}

	billable := line.RawUsage.Sub(service.FreeTier)
	if billable.IsNegative() {
		billable = decimal.Zero
	}

	line.Billable = billable
	line.Cost = billable.Div(d.UnitScale()).Mul(service.UnitPrice)
	return line
}
