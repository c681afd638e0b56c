// Package cmd - price command
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"paint-quote/core/confidence"
	"paint-quote/core/output"
	"paint-quote/core/pricing"
	"paint-quote/core/ratecard"
	"paint-quote/core/types"
	"paint-quote/internal/config"
	"paint-quote/internal/logging"
)

var (
	priceRateCard    string
	priceCompany     string
	priceFormat      string
	priceDetails     bool
	priceConcurrency int
)

// priceCmd prices one or more quote files
var priceCmd = &cobra.Command{
	Use:   "price <quote.json>...",
	Short: "Price quote files against a rate card",
	Long: `Price one or more quote files.

A quote file is JSON with either explicit surfaces or gathered quote
information (or both; explicit surfaces win). A companyId selects that
company's rate card from the rate card directory unless --rate-card is set:

  {
    "companyId": "acme",
    "surfaces": [{"type": "wall", "area": 200, "coats": 2}],
    "info": {"customerName": "Jane Doe", "measurements": {"wallSqft": 200}}
  }

Examples:
  paint-quote price quote.json
  paint-quote price --rate-card acme.hcl quotes/*.json
  paint-quote price --company acme --format json quote.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&priceRateCard, "rate-card", "", "rate card file (.hcl or .json)")
	priceCmd.Flags().StringVar(&priceCompany, "company", "", "company id whose rate card is used")
	priceCmd.Flags().StringVarP(&priceFormat, "format", "f", "", "output format (cli, json, markdown)")
	priceCmd.Flags().BoolVarP(&priceDetails, "details", "d", true, "show line item breakdown")
	priceCmd.Flags().IntVar(&priceConcurrency, "concurrency", 4, "number of files priced in parallel")
	rootCmd.AddCommand(priceCmd)
}

// quoteFile is the input format of the price command
type quoteFile struct {
	CompanyID string                  `json:"companyId,omitempty"`
	Surfaces  []types.Surface         `json:"surfaces,omitempty"`
	Info      *types.QuoteInformation `json:"info,omitempty"`
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	formatFlag := priceFormat
	if formatFlag == "" {
		formatFlag = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	rc, err := resolveRateCard(priceRateCard, priceCompany)
	if err != nil {
		return fmt.Errorf("failed to load rate card: %w", err)
	}
	cards := rateCards{fallback: rc}
	if priceRateCard == "" {
		if cards.store, err = ratecard.NewStore(cfg.Pricing.RateCardDir, cfg.Pricing.CacheSize); err != nil {
			return err
		}
	}

	results, err := priceFiles(cmd.Context(), args, cards, priceConcurrency)
	if err != nil {
		return err
	}

	opts := output.Options{ShowDetails: priceDetails}
	for i, res := range results {
		if i > 0 && format != output.FormatJSON {
			fmt.Println()
		}
		if err := output.Render(os.Stdout, format, res, opts); err != nil {
			return err
		}
	}
	return nil
}

// rateCards picks the rate card for each quote file. A nil store pins
// every file to fallback.
type rateCards struct {
	fallback *types.RateCard
	store    *ratecard.Store
}

func (r rateCards) forCompany(companyID string) (*types.RateCard, error) {
	if companyID == "" || r.store == nil {
		return r.fallback, nil
	}
	return r.store.Get(companyID)
}

// priceFiles prices every file concurrently. Results keep the argument
// order; the first failure cancels the rest.
func priceFiles(ctx context.Context, paths []string, cards rateCards, limit int) ([]*output.QuoteResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 1
	}

	results := make([]*output.QuoteResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := priceFile(path, cards)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func priceFile(path string, cards rateCards) (*output.QuoteResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var qf quoteFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&qf); err != nil {
		return nil, fmt.Errorf("invalid quote file: %w", err)
	}
	rc, err := cards.forCompany(qf.CompanyID)
	if err != nil {
		return nil, err
	}

	surfaces := qf.Surfaces
	var assumptions []string
	if len(surfaces) == 0 && qf.Info != nil {
		surfaces = pricing.SurfacesFromInfo(*qf.Info)
		assumptions = surfaceAssumptions(*qf.Info)
	}

	quote, err := pricing.Price(surfaces, rc)
	if err != nil {
		return nil, err
	}
	inputHash, err := pricing.Fingerprint(surfaces, rc)
	if err != nil {
		return nil, err
	}

	res := &output.QuoteResult{
		ID:          uuid.NewString(),
		Source:      filepath.Base(path),
		Info:        qf.Info,
		Quote:       quote,
		Assumptions: assumptions,
		Metadata: output.QuoteMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			CompanyID: rc.CompanyID,
			InputHash: inputHash,
			Version:   Version,
		},
	}
	if qf.Info != nil {
		res.Confidence = confidence.Score(*qf.Info).Confidence
	}

	logging.Debug("quote priced",
		zap.String("file", path),
		zap.Int("line_items", len(quote.LineItems)),
		zap.String("total", quote.TotalCost.String()))
	return res, nil
}
