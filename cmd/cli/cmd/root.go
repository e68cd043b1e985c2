// Package cmd provides the CLI commands for transcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Epherum/translation-app/adapters/pricing"
	"github.com/Epherum/translation-app/core/catalog"
	"github.com/Epherum/translation-app/core/output"
	"github.com/Epherum/translation-app/internal/config"
	"github.com/Epherum/translation-app/internal/logging"
)

var (
	cfgFile      string
	catalogPath  string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "transcost",
	Short: "Estimate cloud translation API costs",
	Long: `transcost projects monthly and annual spend for cloud-based
translation, speech-to-text and OCR APIs from usage assumptions
(active users, session frequency, feature mix, content size).

Examples:
  transcost estimate --provider google --users 1000
  transcost compare --scenario usage.yml
  transcost growth --provider google --users 5000
  transcost providers`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.transcost.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "HCL pricing catalog file (default is the built-in catalog)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog returns the pricing catalog selected by flags and config:
// an explicit HCL file when given, the built-in table otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = config.Get().CatalogPath
	}
	if path == "" {
		return catalog.Builtins(), nil
	}

	logging.Sugar.Debugw("loading pricing catalog", "path", path)
	return pricing.Load(path)
}

// formatter returns the output formatter selected by flags and config
func formatter() (output.Formatter, error) {
	cfg := config.Get()
	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}
	return output.New(output.Format(format), cfg.Output.ShowDetails)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("transcost version 0.1.0")
	},
}
