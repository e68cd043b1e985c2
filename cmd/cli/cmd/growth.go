// Package cmd - growth command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/core/model"
	"github.com/Epherum/translation-app/core/output"
	"github.com/Epherum/translation-app/internal/config"
)

var (
	growthFlags    assumptionFlags
	growthProvider string
	growthFrom     int
	growthTo       int
	growthPoints   int
)

// growthCmd represents the growth command
var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Sweep monthly cost over a user-count range",
	Long: `Re-run the projection for a range of monthly active user counts
while holding every other assumption fixed.

By default the sweep runs from 100 users to twice the current user
count in 10 points.

Examples:
  transcost growth --provider google --users 5000
  transcost growth --from 1000 --to 50000 --points 20`,
	RunE: runGrowth,
}

func init() {
	growthFlags.register(growthCmd)
	growthCmd.Flags().StringVarP(&growthProvider, "provider", "p", "", "provider to evaluate (default from config)")
	growthCmd.Flags().IntVar(&growthFrom, "from", 100, "sweep lower bound (users)")
	growthCmd.Flags().IntVar(&growthTo, "to", 0, "sweep upper bound (users, default 2x current users)")
	growthCmd.Flags().IntVar(&growthPoints, "points", 10, "number of sweep points")
}

func runGrowth(cmd *cobra.Command, args []string) error {
	assumptions, err := growthFlags.resolve(cmd)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	name := growthProvider
	if name == "" {
		name = config.Get().DefaultProvider
	}
	provider, err := cat.Get(name)
	if err != nil {
		return err
	}

	to := growthTo
	if to == 0 {
		to = assumptions.MonthlyActiveUsers * 2
	}

	points, err := model.ProjectGrowth(assumptions, provider, model.LinearSweep(growthFrom, to, growthPoints))
	if err != nil {
		return err
	}

	report := &output.GrowthReport{
		Provider: provider,
		Points:   points,
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	return f.RenderGrowth(os.Stdout, report)
}
