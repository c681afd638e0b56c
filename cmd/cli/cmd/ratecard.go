// Package cmd - ratecard commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paint-quote/core/ratecard"
	"paint-quote/internal/config"
)

var (
	ratecardFile    string
	ratecardCompany string
	ratecardFormat  string
)

var ratecardCmd = &cobra.Command{
	Use:   "ratecard",
	Short: "Inspect and create company rate cards",
}

var ratecardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective rate card",
	Long: `Print the rate card that chat and price would use.

Examples:
  paint-quote ratecard show
  paint-quote ratecard show --company acme
  paint-quote ratecard show --file acme.hcl --format hcl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := resolveRateCard(ratecardFile, ratecardCompany)
		if err != nil {
			return err
		}
		switch ratecardFormat {
		case "json":
			return printJSON(rc)
		case "hcl":
			_, err := os.Stdout.Write(ratecard.EncodeHCL(rc))
			return err
		default:
			fmt.Println(ratecard.Summary(rc))
			return nil
		}
	},
}

var ratecardInitCmd = &cobra.Command{
	Use:   "init <company-id>",
	Short: "Write the default rate card for a company into the rate card directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		store, err := ratecard.NewStore(cfg.Pricing.RateCardDir, cfg.Pricing.CacheSize)
		if err != nil {
			return err
		}
		if _, err := store.Get(args[0]); err == nil {
			return fmt.Errorf("rate card for %s already exists in %s", args[0], cfg.Pricing.RateCardDir)
		}

		rc := ratecard.Default()
		rc.CompanyID = args[0]
		if err := store.Put(rc); err != nil {
			return err
		}
		fmt.Printf("Wrote rate card for %s to %s\n", args[0], cfg.Pricing.RateCardDir)
		return nil
	},
}

func init() {
	ratecardShowCmd.Flags().StringVar(&ratecardFile, "file", "", "rate card file (.hcl or .json)")
	ratecardShowCmd.Flags().StringVar(&ratecardCompany, "company", "", "company id")
	ratecardShowCmd.Flags().StringVarP(&ratecardFormat, "format", "f", "summary", "output format (summary, json, hcl)")

	ratecardCmd.AddCommand(ratecardShowCmd)
	ratecardCmd.AddCommand(ratecardInitCmd)
	rootCmd.AddCommand(ratecardCmd)
}
