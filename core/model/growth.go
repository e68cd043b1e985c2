// Package model - User-growth cost sweep
package model

import (
	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// ProjectGrowth re-runs projection and cost evaluation for each user
// count while holding every other assumption fixed, and returns one
// point per count in input order. The sweep policy (bounds, number of
// points) belongs to the caller; any ordered sequence of non-negative
// integers is accepted.
func ProjectGrowth(a types.UsageAssumptions, provider types.ProviderPricing, userCounts []int) ([]types.GrowthPoint, error) {
	points := make([]types.GrowthPoint, 0, len(userCounts))

	for _, users := range userCounts {
		if users < 0 {
			return nil, errors.InvalidField("user_counts", users, "must not be negative")
		}

		volumes, err := ProjectUsage(a.WithUsers(users))
		if err != nil {
			return nil, err
		}

		points = append(points, types.GrowthPoint{
			Users:       users,
			MonthlyCost: EvaluateCost(provider, volumes).TotalMonthlyCost,
		})
	}

	return points, nil
}

// LinearSweep produces an evenly spaced sequence of user counts from lo
// to hi inclusive. It mirrors the presentation default of sweeping from
// a low bound to a multiple of the current user base; points < 2
// degenerates to the single value lo.
func LinearSweep(lo, hi, points int) []int {
	if points < 2 || hi <= lo {
		return []int{lo}
	}

	counts := make([]int, points)
	step := float64(hi-lo) / float64(points-1)
	for i := range counts {
		counts[i] = lo + int(step*float64(i))
	}
	counts[points-1] = hi
	return counts
}
