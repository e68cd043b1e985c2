// Package catalog - Pricing profile validation
package catalog

import (
	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// ValidateProvider checks a pricing profile for internal consistency:
// non-negative free tiers and prices, accuracies within [0,100], and a
// non-empty name. Profiles failing validation never enter a catalog.
func ValidateProvider(p types.ProviderPricing) error {
	if p.Name == "" {
		return errors.InvalidField("name", p.Name, "must not be empty")
	}
	if p.SupportedLanguages < 0 {
		return errors.InvalidField("supported_languages", p.SupportedLanguages, "must not be negative").
			WithContext("provider", p.Name)
	}

	for _, s := range []struct {
		dimension types.Dimension
		pricing   types.ServicePricing
	}{
		{types.DimensionText, p.Text},
		{types.DimensionSpeech, p.Speech},
		{types.DimensionOCR, p.OCR},
	} {
		if err := validateService(p.Name, s.dimension, s.pricing); err != nil {
			return err
		}
	}
	return nil
}

func validateService(provider string, d types.Dimension, s types.ServicePricing) error {
	if s.FreeTier.IsNegative() {
		return errors.InvalidField(string(d)+".free_tier", s.FreeTier.String(), "must not be negative").
			WithContext("provider", provider)
	}
	if s.UnitPrice.IsNegative() {
		return errors.InvalidField(string(d)+".unit_price", s.UnitPrice.String(), "must not be negative").
			WithContext("provider", provider)
	}
	if s.Accuracy < 0 || s.Accuracy > 100 {
		return errors.InvalidField(string(d)+".accuracy", s.Accuracy, "must be between 0 and 100").
			WithContext("provider", provider)
	}
	return nil
}
