// Package cmd provides the CLI commands for paint-quote.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paint-quote/core/ratecard"
	"paint-quote/core/types"
	"paint-quote/internal/config"
	"paint-quote/internal/logging"
)

// Version is set at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paint-quote",
	Short: "Conversational quoting for painting contractors",
	Long: `paint-quote turns a conversation about a painting job into structured
quote data and prices it against a company rate card.

Examples:
  paint-quote chat --company acme
  paint-quote parse extraction.json
  paint-quote price quote.json --rate-card acme.hcl
  paint-quote ratecard show --company acme`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.paint-quote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
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

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// resolveRateCard picks the rate card for a command: an explicit file wins,
// then the company's card from the configured directory, then the configured
// default file, then the built-in defaults.
func resolveRateCard(file, companyID string) (*types.RateCard, error) {
	if file != "" {
		return ratecard.LoadFile(file)
	}
	cfg := config.Get()
	if companyID != "" {
		store, err := ratecard.NewStore(cfg.Pricing.RateCardDir, cfg.Pricing.CacheSize)
		if err != nil {
			return nil, err
		}
		return store.GetOrDefault(companyID)
	}
	if cfg.Pricing.RateCardFile != "" {
		return ratecard.LoadFile(cfg.Pricing.RateCardFile)
	}
	return ratecard.Default(), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paint-quote version %s\n", Version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (API key redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *config.Get()
		if cfg.Completion.APIKey != "" {
			cfg.Completion.APIKey = "********"
		}
		return printJSON(&cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.Default().Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
