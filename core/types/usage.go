// Package types - Derived usage volumes
package types

import (
	"github.com/shopspring/decimal"
)

// UsageVolumes is the derived monthly usage produced by a projection.
// It is recomputed on every input change and never stored.
//
// Character volumes are kept per channel because providers differ in
// whether voice transcripts and OCR-extracted text also consume the
// translation character budget.
type UsageVolumes struct {
	// TotalActions is the total number of user actions per month
	TotalActions decimal.Decimal `json:"total_actions"`

	// TextChars is characters from the text translation channel
	TextChars decimal.Decimal `json:"text_chars"`

	// VoiceChars is transcript characters from the voice channel
	VoiceChars decimal.Decimal `json:"voice_chars"`

	// OCRChars is extracted characters from the OCR channel
	OCRChars decimal.Decimal `json:"ocr_chars"`

	// SpeechMinutes is audio minutes from the voice channel
	SpeechMinutes decimal.Decimal `json:"speech_minutes"`

	// OCRImages is the number of scanned images
	OCRImages decimal.Decimal `json:"ocr_images"`
}

// TranslationChars returns the characters billed under the provider's
// translation budget: text channel characters always, voice and OCR
// characters only when the provider's profile says they apply.
func (v UsageVolumes) TranslationChars(p ProviderPricing) decimal.Decimal {
	chars := v.TextChars
	if p.BillsVoiceCharsAsTranslation {
		chars = chars.Add(v.VoiceChars)
	}
	if p.BillsOCRCharsAsTranslation {
		chars = chars.Add(v.OCRChars)
	}
	return chars
}

// Raw returns the raw monthly volume for a dimension under a provider's
// billing rules.
func (v UsageVolumes) Raw(p ProviderPricing, d Dimension) decimal.Decimal {
	switch d {
	case DimensionText:
		return v.TranslationChars(p)
	case DimensionSpeech:
		return v.SpeechMinutes
	case DimensionOCR:
		return v.OCRImages
	default:
		return decimal.Zero
	}
}
