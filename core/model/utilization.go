// Package model - Free-tier utilization
package model

import (
	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
)

// FreeTierUtilization reports, per dimension, how much of the provider's
// free monthly allowance the projected volumes consume, as a percentage
// (raw / capacity * 100). A zero-capacity dimension — no allowance or an
// unsupported service — is defined as exactly 100, never a division
// error: a service with no allowance is always at or over its limit.
func FreeTierUtilization(provider types.ProviderPricing, volumes types.UsageVolumes) map[types.Dimension]decimal.Decimal {
	utilization := make(map[types.Dimension]decimal.Decimal, 3)

	for _, d := range types.Dimensions() {
		capacity := provider.Service(d).FreeTier
		if capacity.IsZero() {
			utilization[d] = hundred
			continue
		}
		utilization[d] = volumes.Raw(provider, d).Div(capacity).Mul(hundred)
	}

	return utilization
}
