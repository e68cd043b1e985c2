// Package cmd - compare command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/core/model"
	"github.com/Epherum/translation-app/core/output"
)

var compareFlags assumptionFlags

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all providers for the same usage",
	Long: `Project usage once and price it against every provider in the
catalog, cheapest first.

Examples:
  transcost compare
  transcost compare --users 10000 --format json
  transcost compare --catalog pricing.hcl --scenario usage.yml`,
	RunE: runCompare,
}

func init() {
	compareFlags.register(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	assumptions, err := compareFlags.resolve(cmd)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	volumes, err := model.ProjectUsage(assumptions)
	if err != nil {
		return err
	}

	report := &output.ComparisonReport{
		Assumptions: assumptions,
		Results:     model.CompareProviders(cat, volumes),
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	return f.RenderComparison(os.Stdout, report)
}
