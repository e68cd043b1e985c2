// Package types defines the domain model for usage and cost projection.
package types

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Dimension identifies a billable service dimension
type Dimension string

const (
	// DimensionText is translation characters
	DimensionText Dimension = "translation_chars"

	// DimensionSpeech is speech-to-text minutes
	DimensionSpeech Dimension = "speech_minutes"

	// DimensionOCR is OCR images
	DimensionOCR Dimension = "ocr_images"
)

// Dimensions lists all billable dimensions in canonical order
func Dimensions() []Dimension {
	return []Dimension{DimensionText, DimensionSpeech, DimensionOCR}
}

// UnitScale returns the quantity of raw units covered by one unit price:
// 1,000,000 for characters, 1 for minutes, 1,000 for images.
func (d Dimension) UnitScale() decimal.Decimal {
	switch d {
	case DimensionText:
		return decimal.NewFromInt(1_000_000)
	case DimensionOCR:
		return decimal.NewFromInt(1_000)
	default:
		return decimal.NewFromInt(1)
	}
}

// Label returns a human-readable service label
func (d Dimension) Label() string {
	switch d {
	case DimensionText:
		return "Translation"
	case DimensionSpeech:
		return "Speech-to-Text"
	case DimensionOCR:
		return "Vision (OCR)"
	default:
		return string(d)
	}
}

// Unit returns the raw usage unit name
func (d Dimension) Unit() string {
	switch d {
	case DimensionText:
		return "characters"
	case DimensionSpeech:
		return "minutes"
	case DimensionOCR:
		return "images"
	default:
		return "units"
	}
}

// FeatureMix splits total usage across the three feature channels.
// The percentages must sum to exactly 100; violation is a validation
// error, never silently normalized.
type FeatureMix struct {
	TextPct  float64 `json:"text_pct" yaml:"text_pct"`
	VoicePct float64 `json:"voice_pct" yaml:"voice_pct"`
	OCRPct   float64 `json:"ocr_pct" yaml:"ocr_pct"`
}

// Validate checks the mix invariants
func (m FeatureMix) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"feature_mix.text_pct", m.TextPct},
		{"feature_mix.voice_pct", m.VoicePct},
		{"feature_mix.ocr_pct", m.OCRPct},
	} {
		if err := checkPercentage(f.name, f.value); err != nil {
			return err
		}
	}
	if sum := m.TextPct + m.VoicePct + m.OCRPct; sum != 100 {
		return errors.InvalidField("feature_mix", sum, "percentages must sum to exactly 100")
	}
	return nil
}

// UsageAssumptions is the immutable input parameter set for a projection.
// The presentation layer owns mutable state; this struct is passed by value
// into the pure cost-model functions and never mutated by them.
type UsageAssumptions struct {
	// MonthlyActiveUsers is the number of users performing at least one
	// action in a given month.
	MonthlyActiveUsers int `json:"monthly_active_users" yaml:"monthly_active_users"`

	// ActiveDaysPerMonth is how many days per month each user is active
	ActiveDaysPerMonth int `json:"active_days_per_month" yaml:"active_days_per_month"`

	// ActionsPerDay is the number of actions per active day. An action is
	// a translation, a voice recording, or a camera scan.
	ActionsPerDay float64 `json:"actions_per_day" yaml:"actions_per_day"`

	// Mix partitions actions across the three feature channels
	Mix FeatureMix `json:"feature_mix" yaml:"feature_mix"`

	// CharsPerTextAction is the average length of a text translation
	CharsPerTextAction float64 `json:"chars_per_text_action" yaml:"chars_per_text_action"`

	// CharsPerVoiceAction is the average transcript length of a voice input
	CharsPerVoiceAction float64 `json:"chars_per_voice_action" yaml:"chars_per_voice_action"`

	// SecondsPerVoiceAction is the average duration of a voice input
	SecondsPerVoiceAction float64 `json:"seconds_per_voice_action" yaml:"seconds_per_voice_action"`

	// CharsPerOCRAction is the average text extracted from a camera scan
	CharsPerOCRAction float64 `json:"chars_per_ocr_action" yaml:"chars_per_ocr_action"`
}

// DefaultAssumptions returns the baseline modeling scenario
func DefaultAssumptions() UsageAssumptions {
	return UsageAssumptions{
		MonthlyActiveUsers: 1000,
		ActiveDaysPerMonth: 5,
		ActionsPerDay:      4,
		Mix: FeatureMix{
			TextPct:  70,
			VoicePct: 20,
			OCRPct:   10,
		},
		CharsPerTextAction:    250,
		CharsPerVoiceAction:   0,
		SecondsPerVoiceAction: 5,
		CharsPerOCRAction:     0,
	}
}

// Validate checks all assumption invariants. Errors identify the
// offending field so the caller can re-prompt for it.
func (a UsageAssumptions) Validate() error {
	if a.MonthlyActiveUsers < 0 {
		return errors.InvalidField("monthly_active_users", a.MonthlyActiveUsers, "must not be negative")
	}
	if a.ActiveDaysPerMonth < 0 || a.ActiveDaysPerMonth > 31 {
		return errors.InvalidField("active_days_per_month", a.ActiveDaysPerMonth, "must be between 0 and 31")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"actions_per_day", a.ActionsPerDay},
		{"chars_per_text_action", a.CharsPerTextAction},
		{"chars_per_voice_action", a.CharsPerVoiceAction},
		{"seconds_per_voice_action", a.SecondsPerVoiceAction},
		{"chars_per_ocr_action", a.CharsPerOCRAction},
	} {
		if err := checkNonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	return a.Mix.Validate()
}

// WithUsers returns a copy with a different user count, holding every
// other assumption fixed. Used by growth sweeps.
func (a UsageAssumptions) WithUsers(users int) UsageAssumptions {
	a.MonthlyActiveUsers = users
	return a
}

func checkNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.InvalidField(field, value, "must be a finite number")
	}
	if value < 0 {
		return errors.InvalidField(field, value, "must not be negative")
	}
	return nil
}

func checkPercentage(field string, value float64) error {
	if err := checkNonNegative(field, value); err != nil {
		return err
	}
	if value > 100 {
		return errors.InvalidField(field, value, "must not exceed 100")
	}
	return nil
}
