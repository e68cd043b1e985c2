// Package output - Human-readable CLI rendering
package output

import (
	"fmt"
	"io"

	"github.com/Epherum/translation-app/core/types"
)

// CLIFormatter renders reports as aligned text tables
type CLIFormatter struct {
	// ShowDetails includes the per-service usage breakdown table
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderEstimate renders a single-provider estimate
func (f *CLIFormatter) RenderEstimate(w io.Writer, report *EstimateReport) error {
	fmt.Fprintf(w, "Provider: %s\n", report.Provider.Label())
	fmt.Fprintf(w, "Total actions/month: %s\n\n", report.Volumes.TotalActions.StringFixed(0))

	if f.ShowDetails {
		fmt.Fprintf(w, "%-16s %20s %16s %16s %12s %8s\n",
			"Service", "Monthly Usage", "Free Tier", "Billable", "Cost (USD)", "Tier %")
		for _, line := range report.Breakdown.Lines() {
			if !line.Supported {
				fmt.Fprintf(w, "%-16s %20s\n", line.Dimension.Label(), "not offered")
				continue
			}
			fmt.Fprintf(w, "%-16s %20s %16s %16s %12s %7s%%\n",
				line.Dimension.Label(),
				line.RawUsage.StringFixed(2)+" "+shortUnit(line.Dimension),
				line.FreeTier.StringFixed(0),
				line.Billable.StringFixed(2),
				"$"+line.Cost.StringFixed(2),
				report.Utilization[line.Dimension].StringFixed(0))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total monthly cost: $%s\n", report.Breakdown.TotalMonthlyCost.StringFixed(2))
	fmt.Fprintf(w, "Total annual cost:  $%s\n", report.Breakdown.TotalAnnualCost.StringFixed(2))
	return nil
}

// RenderComparison renders a provider comparison, cheapest first
func (f *CLIFormatter) RenderComparison(w io.Writer, report *ComparisonReport) error {
	fmt.Fprintf(w, "%-24s %14s %14s %12s %12s %12s\n",
		"Provider", "Monthly (USD)", "Annual (USD)", "Text", "Speech", "OCR")

	for _, result := range report.Results {
		fmt.Fprintf(w, "%-24s %14s %14s %12s %12s %12s\n",
			result.Provider.Label(),
			"$"+result.Breakdown.TotalMonthlyCost.StringFixed(2),
			"$"+result.Breakdown.TotalAnnualCost.StringFixed(2),
			costOrDash(result.Breakdown.Text),
			costOrDash(result.Breakdown.Speech),
			costOrDash(result.Breakdown.OCR))
	}
	return nil
}

// RenderGrowth renders a growth sweep as a (users, cost) table
func (f *CLIFormatter) RenderGrowth(w io.Writer, report *GrowthReport) error {
	fmt.Fprintf(w, "Cost growth for %s\n\n", report.Provider.Label())
	fmt.Fprintf(w, "%12s %16s\n", "Users", "Monthly (USD)")
	for _, point := range report.Points {
		fmt.Fprintf(w, "%12d %16s\n", point.Users, "$"+point.MonthlyCost.StringFixed(2))
	}
	return nil
}

func costOrDash(line types.CostLine) string {
	if !line.Supported {
		return "-"
	}
	return "$" + line.Cost.StringFixed(2)
}

func shortUnit(d types.Dimension) string {
	switch d {
	case types.DimensionText:
		return "chars"
	case types.DimensionSpeech:
		return "min"
	case types.DimensionOCR:
		return "images"
	default:
		return ""
	}
}
