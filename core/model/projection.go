// Package model implements the pure usage/cost projection core.
// Every function here is synchronous, side-effect-free and idempotent:
// identical inputs always produce identical outputs. Shared state and
// I/O belong to the callers, never here.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
)

var (
	hundred          = decimal.NewFromInt(100)
	secondsPerMinute = decimal.NewFromInt(60)
	monthsPerYear    = decimal.NewFromInt(12)
)

// ProjectUsage derives monthly usage volumes from a set of assumptions.
//
//	total_actions = users * active_days * actions_per_day
//
// split across the three channels by the feature mix. Invalid
// assumptions (negative values, non-finite numbers, mix not summing to
// 100) fail with a field-identifying input error; nothing is clamped
// silently.
func ProjectUsage(a types.UsageAssumptions) (types.UsageVolumes, error) {
	if err := a.Validate(); err != nil {
		return types.UsageVolumes{}, err
	}

	totalActions := decimal.NewFromInt(int64(a.MonthlyActiveUsers)).
		Mul(decimal.NewFromInt(int64(a.ActiveDaysPerMonth))).
		Mul(decimal.NewFromFloat(a.ActionsPerDay))

	textActions := totalActions.Mul(decimal.NewFromFloat(a.Mix.TextPct)).Div(hundred)
	voiceActions := totalActions.Mul(decimal.NewFromFloat(a.Mix.VoicePct)).Div(hundred)
	ocrActions := totalActions.Mul(decimal.NewFromFloat(a.Mix.OCRPct)).Div(hundred)

	// One image per OCR action.
	return types.UsageVolumes{
		TotalActions:  totalActions,
		TextChars:     textActions.Mul(decimal.NewFromFloat(a.CharsPerTextAction)),
		VoiceChars:    voiceActions.Mul(decimal.NewFromFloat(a.CharsPerVoiceAction)),
		OCRChars:      ocrActions.Mul(decimal.NewFromFloat(a.CharsPerOCRAction)),
		SpeechMinutes: voiceActions.Mul(decimal.NewFromFloat(a.SecondsPerVoiceAction)).Div(secondsPerMinute),
		OCRImages:     ocrActions,
	}, nil
}
