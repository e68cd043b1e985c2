// transcost is the CLI entry point for the translation API cost model.
package main

import (
	"os"

	"github.com/Epherum/translation-app/cmd/cli/cmd"
	"github.com/Epherum/translation-app/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
