// Package model - Provider comparison
package model

import (
	"sort"

	"github.com/Epherum/translation-app/core/catalog"
	"github.com/Epherum/translation-app/core/types"
)

// CompareProviders evaluates every provider in the catalog against the
// same volumes and returns the results sorted ascending by total monthly
// cost. The sort is stable: ties keep catalog insertion order. Volumes
// are never mutated.
func CompareProviders(cat *catalog.Catalog, volumes types.UsageVolumes) []types.ProviderCost {
	providers := cat.List()
	results := make([]types.ProviderCost, 0, len(providers))

	for _, provider := range providers {
		results = append(results, types.ProviderCost{
			Provider:  provider,
			Breakdown: EvaluateCost(provider, volumes),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Breakdown.TotalMonthlyCost.LessThan(results[j].Breakdown.TotalMonthlyCost)
	})

	return results
}
