// Package cmd - estimate command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/core/model"
	"github.com/Epherum/translation-app/core/output"
	"github.com/Epherum/translation-app/internal/config"
	"github.com/Epherum/translation-app/internal/logging"
)

var (
	estimateFlags    assumptionFlags
	estimateProvider string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Project monthly costs for one provider",
	Long: `Project monthly usage volumes from the given assumptions and
price them against a single provider, including the per-service
breakdown and free-tier utilization.

Examples:
  transcost estimate
  transcost estimate --provider azure --users 5000 --days 10
  transcost estimate --scenario usage.yml --format json`,
	RunE: runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd)
	estimateCmd.Flags().StringVarP(&estimateProvider, "provider", "p", "", "provider to evaluate (default from config)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	assumptions, err := estimateFlags.resolve(cmd)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	name := estimateProvider
	if name == "" {
		name = config.Get().DefaultProvider
	}
	provider, err := cat.Get(name)
	if err != nil {
		return err
	}

	volumes, err := model.ProjectUsage(assumptions)
	if err != nil {
		return err
	}

	logging.Sugar.Debugw("projected usage",
		"provider", provider.Name,
		"total_actions", volumes.TotalActions.String())

	report := &output.EstimateReport{
		Provider:    provider,
		Assumptions: assumptions,
		Volumes:     volumes,
		Breakdown:   model.EvaluateCost(provider, volumes),
		Utilization: model.FreeTierUtilization(provider, volumes),
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	return f.RenderEstimate(os.Stdout, report)
}
