// Package pricing - HCL catalog loader tests
package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Epherum/translation-app/internal/errors"
)

const sampleCatalog = `
provider "acme" {
  display_name        = "Acme Translate"
  supported_languages = 40
  strengths           = "cheap and cheerful"

  bills_ocr_chars_as_translation = true

  text {
    free_tier  = 250000
    unit_price = "12.50"
    accuracy   = 91
  }

  speech {
    free_tier  = 30
    unit_price = "0.03"
    accuracy   = 88
  }
}

provider "textcorp" {
  text {
    unit_price = "18.00"
    accuracy   = 94
  }
}
`

func TestParseCatalog(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog), "pricing.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("expected 2 providers, got %d", cat.Len())
	}

	// File order is catalog order.
	names := cat.Names()
	if names[0] != "acme" || names[1] != "textcorp" {
		t.Errorf("unexpected order: %v", names)
	}

	acme, err := cat.Get("acme")
	if err != nil {
		t.Fatalf("get acme: %v", err)
	}
	if acme.DisplayName != "Acme Translate" {
		t.Errorf("display name: got %q", acme.DisplayName)
	}
	if !acme.Text.FreeTier.Equal(decimal.NewFromInt(250_000)) {
		t.Errorf("text free tier: got %s", acme.Text.FreeTier)
	}
	if !acme.Text.UnitPrice.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("text unit price: got %s", acme.Text.UnitPrice)
	}
	if !acme.BillsOCRCharsAsTranslation {
		t.Error("expected OCR char billing flag")
	}

	// A missing service block reads as unsupported.
	if acme.OCR.Supported() {
		t.Error("acme should not support OCR")
	}

	textcorp, err := cat.Get("textcorp")
	if err != nil {
		t.Fatalf("get textcorp: %v", err)
	}
	if textcorp.Speech.Supported() || textcorp.OCR.Supported() {
		t.Error("textcorp should support text only")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.hcl")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("expected 2 providers, got %d", cat.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestParseRejectsMalformedHCL(t *testing.T) {
	_, err := Parse([]byte(`provider "x" {`), "broken.hcl")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected parsing error, got %v", err)
	}
}

func TestParseRejectsBadUnitPrice(t *testing.T) {
	src := `
provider "x" {
  text {
    unit_price = "not-a-number"
    accuracy   = 90
  }
}
`
	_, err := Parse([]byte(src), "pricing.hcl")
	if err == nil {
		t.Fatal("expected error for bad unit price")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected parsing error, got %v", err)
	}
}

func TestParseRejectsInvalidProfile(t *testing.T) {
	src := `
provider "x" {
  text {
    free_tier = -5
    accuracy  = 90
  }
}
`
	_, err := Parse([]byte(src), "pricing.hcl")
	if err == nil {
		t.Fatal("expected validation error for negative free tier")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error, got %v", err)
	}
}
