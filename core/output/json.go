// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders reports as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderEstimate renders a single-provider estimate
func (f *JSONFormatter) RenderEstimate(w io.Writer, report *EstimateReport) error {
	return renderJSON(w, report)
}

// RenderComparison renders a provider comparison
func (f *JSONFormatter) RenderComparison(w io.Writer, report *ComparisonReport) error {
	return renderJSON(w, report)
}

// RenderGrowth renders a growth sweep
func (f *JSONFormatter) RenderGrowth(w io.Writer, report *GrowthReport) error {
	return renderJSON(w, report)
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
