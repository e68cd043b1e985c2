// Package model - Projection invariant tests
package model

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// referenceAssumptions is the documented baseline scenario:
// 1000 users x 5 days x 4 actions, 70/20/10 mix, 250 chars, 5 seconds.
func referenceAssumptions() types.UsageAssumptions {
	return types.UsageAssumptions{
		MonthlyActiveUsers:    1000,
		ActiveDaysPerMonth:    5,
		ActionsPerDay:         4,
		Mix:                   types.FeatureMix{TextPct: 70, VoicePct: 20, OCRPct: 10},
		CharsPerTextAction:    250,
		SecondsPerVoiceAction: 5,
	}
}

func TestProjectUsageReferenceScenario(t *testing.T) {
	volumes, err := ProjectUsage(referenceAssumptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !volumes.TotalActions.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("total actions: expected 20000, got %s", volumes.TotalActions)
	}
	if !volumes.TextChars.Equal(decimal.NewFromInt(3_500_000)) {
		t.Errorf("text chars: expected 3500000, got %s", volumes.TextChars)
	}
	if !volumes.OCRImages.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("ocr images: expected 2000, got %s", volumes.OCRImages)
	}

	// 4000 voice actions * 5s / 60 = 333.33... minutes
	expectedMinutes := decimal.NewFromInt(20000).Div(decimal.NewFromInt(60))
	if !volumes.SpeechMinutes.Equal(expectedMinutes) {
		t.Errorf("speech minutes: expected %s, got %s", expectedMinutes, volumes.SpeechMinutes)
	}
}

// TestProjectUsageScalesLinearlyWithUsers proves doubling users doubles
// every projected volume, all other assumptions fixed.
func TestProjectUsageScalesLinearlyWithUsers(t *testing.T) {
	base := referenceAssumptions()
	base.CharsPerVoiceAction = 80
	base.CharsPerOCRAction = 400

	small, err := ProjectUsage(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := ProjectUsage(base.WithUsers(base.MonthlyActiveUsers * 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	two := decimal.NewFromInt(2)
	checks := []struct {
		name         string
		small, large decimal.Decimal
	}{
		{"total_actions", small.TotalActions, large.TotalActions},
		{"text_chars", small.TextChars, large.TextChars},
		{"voice_chars", small.VoiceChars, large.VoiceChars},
		{"ocr_chars", small.OCRChars, large.OCRChars},
		{"speech_minutes", small.SpeechMinutes, large.SpeechMinutes},
		{"ocr_images", small.OCRImages, large.OCRImages},
	}
	for _, c := range checks {
		if !c.large.Equal(c.small.Mul(two)) {
			t.Errorf("%s not linear: %s * 2 != %s", c.name, c.small, c.large)
		}
	}
}

func TestProjectUsageRejectsBadMix(t *testing.T) {
	a := referenceAssumptions()
	a.Mix = types.FeatureMix{TextPct: 70, VoicePct: 20, OCRPct: 20}

	_, err := ProjectUsage(a)
	if err == nil {
		t.Fatal("expected validation error for mix summing to 110")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error, got %v", err)
	}
	t.Logf("correctly rejected: %v", err)
}

func TestProjectUsageRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.UsageAssumptions)
	}{
		{"negative users", func(a *types.UsageAssumptions) { a.MonthlyActiveUsers = -1 }},
		{"days over 31", func(a *types.UsageAssumptions) { a.ActiveDaysPerMonth = 32 }},
		{"negative actions", func(a *types.UsageAssumptions) { a.ActionsPerDay = -0.5 }},
		{"NaN chars", func(a *types.UsageAssumptions) { a.CharsPerTextAction = math.NaN() }},
		{"infinite seconds", func(a *types.UsageAssumptions) { a.SecondsPerVoiceAction = math.Inf(1) }},
		{"mix over 100", func(a *types.UsageAssumptions) { a.Mix.TextPct = 150 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := referenceAssumptions()
			tc.mutate(&a)
			if _, err := ProjectUsage(a); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

// TestProjectUsageRemainsCallableAfterFailure proves a failed invocation
// does not poison subsequent calls.
func TestProjectUsageRemainsCallableAfterFailure(t *testing.T) {
	bad := referenceAssumptions()
	bad.MonthlyActiveUsers = -5
	if _, err := ProjectUsage(bad); err == nil {
		t.Fatal("expected validation error")
	}

	if _, err := ProjectUsage(referenceAssumptions()); err != nil {
		t.Fatalf("model not callable after failed invocation: %v", err)
	}
}

func TestProjectUsageIsDeterministic(t *testing.T) {
	a := referenceAssumptions()
	first, err := ProjectUsage(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ProjectUsage(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.TotalActions.Equal(second.TotalActions) ||
		!first.TextChars.Equal(second.TextChars) ||
		!first.SpeechMinutes.Equal(second.SpeechMinutes) ||
		!first.OCRImages.Equal(second.OCRImages) {
		t.Error("repeated calls with identical inputs produced different volumes")
	}
}
