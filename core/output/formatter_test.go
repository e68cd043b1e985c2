// Package output - Formatter tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/catalog"
	"github.com/Epherum/translation-app/core/model"
	"github.com/Epherum/translation-app/core/types"
)

func sampleEstimate(t *testing.T) *EstimateReport {
	t.Helper()
	assumptions := types.DefaultAssumptions()
	volumes, err := model.ProjectUsage(assumptions)
	if err != nil {
		t.Fatalf("project usage: %v", err)
	}
	provider, err := catalog.Builtins().Get("google")
	if err != nil {
		t.Fatalf("get provider: %v", err)
	}
	return &EstimateReport{
		Provider:    provider,
		Assumptions: assumptions,
		Volumes:     volumes,
		Breakdown:   model.EvaluateCost(provider, volumes),
		Utilization: model.FreeTierUtilization(provider, volumes),
	}
}

func TestNewFormatter(t *testing.T) {
	if _, err := New(FormatCLI, true); err != nil {
		t.Errorf("cli formatter: %v", err)
	}
	if _, err := New(FormatJSON, true); err != nil {
		t.Errorf("json formatter: %v", err)
	}
	if _, err := New("xml", true); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCLIFormatterRendersEstimate(t *testing.T) {
	report := sampleEstimate(t)
	var buf bytes.Buffer

	f := &CLIFormatter{ShowDetails: true}
	if err := f.RenderEstimate(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Google Cloud", "Translation", "Speech-to-Text", "Total monthly cost", "Total annual cost"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIFormatterMarksUnsupportedServices(t *testing.T) {
	provider, err := catalog.Builtins().Get("deepl")
	if err != nil {
		t.Fatalf("get provider: %v", err)
	}
	volumes := types.UsageVolumes{TextChars: decimal.NewFromInt(1_000_000)}

	report := &EstimateReport{
		Provider:    provider,
		Volumes:     volumes,
		Breakdown:   model.EvaluateCost(provider, volumes),
		Utilization: model.FreeTierUtilization(provider, volumes),
	}

	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true}
	if err := f.RenderEstimate(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "not offered") {
		t.Errorf("unsupported services should read as not offered:\n%s", buf.String())
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	report := sampleEstimate(t)
	var buf bytes.Buffer

	f := &JSONFormatter{}
	if err := f.RenderEstimate(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"provider", "volumes", "breakdown", "free_tier_utilization"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}

func TestCLIFormatterRendersComparisonSortedOutput(t *testing.T) {
	cat := catalog.Builtins()
	volumes, err := model.ProjectUsage(types.DefaultAssumptions())
	if err != nil {
		t.Fatalf("project usage: %v", err)
	}

	report := &ComparisonReport{
		Assumptions: types.DefaultAssumptions(),
		Results:     model.CompareProviders(cat, volumes),
	}

	var buf bytes.Buffer
	f := &CLIFormatter{}
	if err := f.RenderComparison(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != cat.Len()+1 { // header + one row per provider
		t.Errorf("expected %d lines, got %d:\n%s", cat.Len()+1, len(lines), buf.String())
	}
}

func TestCLIFormatterRendersGrowth(t *testing.T) {
	provider, err := catalog.Builtins().Get("google")
	if err != nil {
		t.Fatalf("get provider: %v", err)
	}
	points, err := model.ProjectGrowth(types.DefaultAssumptions(), provider, model.LinearSweep(100, 2000, 10))
	if err != nil {
		t.Fatalf("project growth: %v", err)
	}

	var buf bytes.Buffer
	f := &CLIFormatter{}
	if err := f.RenderGrowth(&buf, &GrowthReport{Provider: provider, Points: points}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "2000") {
		t.Errorf("growth table missing final sweep point:\n%s", buf.String())
	}
}
