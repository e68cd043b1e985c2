// Package pricing loads external provider pricing catalogs from HCL
// files, keeping pricing data versionable and decoupled from the
// calculation functions.
//
// A catalog file holds one provider block per profile:
//
//	provider "google" {
//	  display_name        = "Google Cloud"
//	  supported_languages = 135
//
//	  text {
//	    free_tier  = 500000
//	    unit_price = "20.00"
//	    accuracy   = 95
//	  }
//	  speech { ... }
//	  ocr { ... }
//	}
//
// Unit prices are quoted strings so they survive as exact decimals.
package pricing

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/core/catalog"
	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

type catalogFile struct {
	Providers []providerBlock `hcl:"provider,block"`
}

type providerBlock struct {
	Name               string        `hcl:"name,label"`
	DisplayName        string        `hcl:"display_name,optional"`
	SupportedLanguages int           `hcl:"supported_languages,optional"`
	Strengths          string        `hcl:"strengths,optional"`
	BillsVoiceChars    bool          `hcl:"bills_voice_chars_as_translation,optional"`
	BillsOCRChars      bool          `hcl:"bills_ocr_chars_as_translation,optional"`
	Text               *serviceBlock `hcl:"text,block"`
	Speech             *serviceBlock `hcl:"speech,block"`
	OCR                *serviceBlock `hcl:"ocr,block"`
}

type serviceBlock struct {
	FreeTier  float64 `hcl:"free_tier,optional"`
	UnitPrice string  `hcl:"unit_price,optional"`
	Accuracy  float64 `hcl:"accuracy,optional"`
}

// Load parses an HCL catalog file into a validated catalog.
// Providers keep the order they appear in the file.
func Load(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read pricing catalog", err).
			WithContext("path", path)
	}
	return Parse(src, path)
}

// Parse decodes HCL catalog source. The filename is used only for
// diagnostics.
func Parse(src []byte, filename string) (*catalog.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse pricing catalog", diags).
			WithContext("file", filename)
	}

	var cf catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode pricing catalog", diags).
			WithContext("file", filename)
	}

	cat := catalog.New()
	for _, block := range cf.Providers {
		provider, err := block.toProvider()
		if err != nil {
			return nil, err
		}
		if err := cat.Register(provider); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (b providerBlock) toProvider() (types.ProviderPricing, error) {
	text, err := decodeService(b.Name, types.DimensionText, b.Text)
	if err != nil {
		return types.ProviderPricing{}, err
	}
	speech, err := decodeService(b.Name, types.DimensionSpeech, b.Speech)
	if err != nil {
		return types.ProviderPricing{}, err
	}
	ocr, err := decodeService(b.Name, types.DimensionOCR, b.OCR)
	if err != nil {
		return types.ProviderPricing{}, err
	}

	return types.ProviderPricing{
		Name:                         b.Name,
		DisplayName:                  b.DisplayName,
		Text:                         text,
		Speech:                       speech,
		OCR:                          ocr,
		SupportedLanguages:           b.SupportedLanguages,
		Strengths:                    b.Strengths,
		BillsVoiceCharsAsTranslation: b.BillsVoiceChars,
		BillsOCRCharsAsTranslation:   b.BillsOCRChars,
	}, nil
}

func decodeService(provider string, d types.Dimension, block *serviceBlock) (types.ServicePricing, error) {
	// A missing service block means the provider does not offer the
	// service: zero allowance, zero price, accuracy sentinel zero.
	if block == nil {
		return types.ServicePricing{}, nil
	}

	price := decimal.Zero
	if block.UnitPrice != "" {
		var err error
		price, err = decimal.NewFromString(block.UnitPrice)
		if err != nil {
			return types.ServicePricing{}, errors.Parsing("invalid unit_price", err).
				WithContext("provider", provider).
				WithContext("dimension", string(d))
		}
	}

	return types.ServicePricing{
		FreeTier:  decimal.NewFromFloat(block.FreeTier),
		UnitPrice: price,
		Accuracy:  block.Accuracy,
	}, nil
}
