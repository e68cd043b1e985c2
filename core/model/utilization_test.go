// Package model - Free-tier utilization tests
package model

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
)

func TestFreeTierUtilizationPercentages(t *testing.T) {
	provider := googleLikeProvider()
	volumes := types.UsageVolumes{
		TextChars:     decimal.NewFromInt(250_000), // 50% of 500k
		SpeechMinutes: decimal.NewFromInt(120),     // 200% of 60
		OCRImages:     decimal.NewFromInt(1_000),   // 100% of 1000
	}

	utilization := FreeTierUtilization(provider, volumes)

	if !utilization[types.DimensionText].Equal(decimal.NewFromInt(50)) {
		t.Errorf("text: expected 50, got %s", utilization[types.DimensionText])
	}
	if !utilization[types.DimensionSpeech].Equal(decimal.NewFromInt(200)) {
		t.Errorf("speech: expected 200, got %s", utilization[types.DimensionSpeech])
	}
	if !utilization[types.DimensionOCR].Equal(decimal.NewFromInt(100)) {
		t.Errorf("ocr: expected 100, got %s", utilization[types.DimensionOCR])
	}
}

// TestFreeTierUtilizationZeroCapacityIsHundred proves the division
// guard: a dimension with no allowance reads as exactly 100, even at
// zero raw volume.
func TestFreeTierUtilizationZeroCapacityIsHundred(t *testing.T) {
	provider := googleLikeProvider()
	provider.Speech.FreeTier = decimal.Zero
	provider.OCR = types.ServicePricing{} // unsupported: also zero capacity

	for _, volumes := range []types.UsageVolumes{
		{}, // zero raw volume
		{SpeechMinutes: decimal.NewFromInt(10_000), OCRImages: decimal.NewFromInt(1)},
	} {
		utilization := FreeTierUtilization(provider, volumes)
		if !utilization[types.DimensionSpeech].Equal(decimal.NewFromInt(100)) {
			t.Errorf("speech: expected exactly 100, got %s", utilization[types.DimensionSpeech])
		}
		if !utilization[types.DimensionOCR].Equal(decimal.NewFromInt(100)) {
			t.Errorf("ocr: expected exactly 100, got %s", utilization[types.DimensionOCR])
		}
	}
}

func TestFreeTierUtilizationCoversAllDimensions(t *testing.T) {
	utilization := FreeTierUtilization(googleLikeProvider(), types.UsageVolumes{})
	for _, d := range types.Dimensions() {
		if _, ok := utilization[d]; !ok {
			t.Errorf("missing dimension %s", d)
		}
	}
}
