// Package catalog - Built-in provider pricing tables
// List prices (USD) for the pay-as-you-go tiers of the major cloud
// translation / speech / OCR offerings. Accuracy 0 marks a service the
// provider does not offer.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/types"
)

func svc(freeTier int64, unitPrice string, accuracy float64) types.ServicePricing {
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		panic("catalog: bad built-in unit price: " + unitPrice)
	}
	return types.ServicePricing{
		FreeTier:  decimal.NewFromInt(freeTier),
		UnitPrice: price,
		Accuracy:  accuracy,
	}
}

// builtins is the default provider table, in catalog order.
var builtins = []types.ProviderPricing{
	{
		Name:               "google",
		DisplayName:        "Google Cloud",
		Text:               svc(500_000, "20.00", 95),
		Speech:             svc(60, "0.024", 92),
		OCR:                svc(1_000, "1.50", 90),
		SupportedLanguages: 135,
		Strengths:          "Widest language coverage; one vendor for all three services",
	},
	{
		Name:               "aws",
		DisplayName:        "Amazon Web Services",
		Text:               svc(2_000_000, "15.00", 93),
		Speech:             svc(60, "0.024", 90),
		OCR:                svc(1_000, "1.50", 88),
		SupportedLanguages: 75,
		Strengths:          "Generous first-year translation free tier; deep ecosystem integration",
	},
	{
		Name:               "azure",
		DisplayName:        "Microsoft Azure",
		Text:               svc(2_000_000, "10.00", 92),
		Speech:             svc(300, "0.0167", 91),
		OCR:                svc(5_000, "1.00", 89),
		SupportedLanguages: 100,
		Strengths:          "Lowest unit prices and the largest free allowances",
	},
	{
		Name:               "deepl",
		DisplayName:        "DeepL",
		Text:               svc(500_000, "25.00", 97),
		Speech:             svc(0, "0", 0),
		OCR:                svc(0, "0", 0),
		SupportedLanguages: 31,
		Strengths:          "Best-in-class translation quality; text only",
	},
}

// Builtins returns a catalog seeded with the built-in provider table
func Builtins() *Catalog {
	c := New()
	for _, p := range builtins {
		if err := c.Register(p); err != nil {
			panic("catalog: invalid built-in provider " + p.Name + ": " + err.Error())
		}
	}
	return c
}
