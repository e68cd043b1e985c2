// Package output provides output formatting for projection results.
// Formatting (currency symbols, separators, percent signs) lives here,
// after the pure model calls return; the model itself emits only plain
// structured values.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// EstimateReport is the complete single-provider estimation output
type EstimateReport struct {
	// Provider is the pricing profile that was evaluated
	Provider types.ProviderPricing `json:"provider"`

	// Assumptions is the input parameter set
	Assumptions types.UsageAssumptions `json:"assumptions"`

	// Volumes is the projected monthly usage
	Volumes types.UsageVolumes `json:"volumes"`

	// Breakdown is the evaluated cost
	Breakdown types.CostBreakdown `json:"breakdown"`

	// Utilization is free-tier consumption per dimension, in percent
	Utilization map[types.Dimension]decimal.Decimal `json:"free_tier_utilization"`
}

// ComparisonReport is the multi-provider comparison output, already
// sorted ascending by total monthly cost.
type ComparisonReport struct {
	// Assumptions is the input parameter set
	Assumptions types.UsageAssumptions `json:"assumptions"`

	// Results holds one evaluated breakdown per provider
	Results []types.ProviderCost `json:"results"`
}

// GrowthReport is the user-growth sweep output
type GrowthReport struct {
	// Provider is the pricing profile used for the sweep
	Provider types.ProviderPricing `json:"provider"`

	// Points are (user count, monthly cost) pairs in sweep order
	Points []types.GrowthPoint `json:"points"`
}

// Formatter renders reports in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderEstimate renders a single-provider estimate
	RenderEstimate(w io.Writer, report *EstimateReport) error

	// RenderComparison renders a provider comparison
	RenderComparison(w io.Writer, report *ComparisonReport) error

	// RenderGrowth renders a growth sweep
	RenderGrowth(w io.Writer, report *GrowthReport) error
}

// New returns the formatter for a format name
func New(format Format, showDetails bool) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}
