// Package types - Provider pricing types
package types

import (
	"github.com/shopspring/decimal"
)

// ServicePricing is the pricing profile of one billable dimension.
// Accuracy == 0 is the explicit "service unsupported" sentinel; callers
// must check Supported() rather than inferring support from a zero cost.
type ServicePricing struct {
	// FreeTier is the flat monthly allowance in the dimension's raw unit
	// (characters, minutes, images). It is not consumed proportionally
	// across services.
	FreeTier decimal.Decimal `json:"free_tier"`

	// UnitPrice is the price per pricing unit: 1M characters, 1 minute,
	// or 1k images depending on the dimension.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Accuracy is the advertised accuracy percentage in [0,100].
	// Zero marks the service as unsupported by this provider.
	Accuracy float64 `json:"accuracy"`
}

// Supported reports whether the provider offers this service at all
func (s ServicePricing) Supported() bool {
	return s.Accuracy > 0
}

// ProviderPricing is the immutable pricing profile of one provider.
// Instances are reference data from the catalog and are never mutated
// by the model.
type ProviderPricing struct {
	// Name is the catalog lookup key (e.g. "google")
	Name string `json:"name"`

	// DisplayName is the human-readable provider name
	DisplayName string `json:"display_name"`

	// Text is translation pricing (per 1M characters)
	Text ServicePricing `json:"text"`

	// Speech is speech-to-text pricing (per minute)
	Speech ServicePricing `json:"speech"`

	// OCR is image text extraction pricing (per 1k images)
	OCR ServicePricing `json:"ocr"`

	// SupportedLanguages is the number of languages the provider covers
	SupportedLanguages int `json:"supported_languages"`

	// Strengths is a free-text description of what the provider is good at
	Strengths string `json:"strengths,omitempty"`

	// BillsVoiceCharsAsTranslation indicates transcripts of voice input
	// are billed against the translation character budget as well.
	BillsVoiceCharsAsTranslation bool `json:"bills_voice_chars_as_translation"`

	// BillsOCRCharsAsTranslation indicates text extracted by OCR is
	// billed against the translation character budget as well.
	BillsOCRCharsAsTranslation bool `json:"bills_ocr_chars_as_translation"`
}

// Service returns the pricing profile for a dimension
func (p ProviderPricing) Service(d Dimension) ServicePricing {
	switch d {
	case DimensionText:
		return p.Text
	case DimensionSpeech:
		return p.Speech
	case DimensionOCR:
		return p.OCR
	default:
		return ServicePricing{}
	}
}

// Label returns the display name, falling back to the lookup name
func (p ProviderPricing) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
