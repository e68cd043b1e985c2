// Package cmd - providers command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/core/types"
)

// providersCmd lists the pricing catalog
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the provider pricing catalog",
	RunE:  runProviders,
}

func runProviders(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-24s %10s %8s %8s %8s  %s\n",
		"Name", "Provider", "Languages", "Text", "Speech", "OCR", "Strengths")

	for _, p := range cat.List() {
		fmt.Printf("%-12s %-24s %10d %8s %8s %8s  %s\n",
			p.Name,
			p.Label(),
			p.SupportedLanguages,
			accuracyOrDash(p.Text),
			accuracyOrDash(p.Speech),
			accuracyOrDash(p.OCR),
			p.Strengths)
	}
	return nil
}

func accuracyOrDash(s types.ServicePricing) string {
	if !s.Supported() {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", s.Accuracy)
}
