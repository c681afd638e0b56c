// Package ratecard loads company rate cards from HCL or JSON files.
//
// A rate card file in HCL looks like:
//
//	company_id            = "acme"
//	currency              = "USD"
//	overhead_percent      = 15
//	profit_margin_percent = 30
//	tax_rate_percent      = 8.25
//	hourly_labor_rate     = 50
//
//	rate "wall" {
//	  unit_price = 1.75
//	}
package ratecard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

// hclFile is the on-disk HCL shape of a rate card
type hclFile struct {
	CompanyID           string    `hcl:"company_id,optional"`
	Currency            string    `hcl:"currency,optional"`
	OverheadPercent     float64   `hcl:"overhead_percent,optional"`
	ProfitMarginPercent float64   `hcl:"profit_margin_percent,optional"`
	TaxRatePercent      float64   `hcl:"tax_rate_percent,optional"`
	HourlyLaborRate     float64   `hcl:"hourly_labor_rate,optional"`
	LaborPercent        float64   `hcl:"labor_percent,optional"`
	Rates               []hclRate `hcl:"rate,block"`
}

type hclRate struct {
	Surface   string  `hcl:"surface,label"`
	UnitPrice float64 `hcl:"unit_price"`
}

// Default returns a rate card with typical residential prices
func Default() *types.RateCard {
	return &types.RateCard{
		CompanyID: "default",
		Currency:  types.CurrencyUSD,
		Rates: map[types.SurfaceType]decimal.Decimal{
			types.SurfaceWall:           decimal.RequireFromString("1.75"),
			types.SurfaceCeiling:        decimal.RequireFromString("2.00"),
			types.SurfaceBaseboard:      decimal.RequireFromString("1.50"),
			types.SurfaceCrownMolding:   decimal.RequireFromString("2.50"),
			types.SurfaceDoor:           decimal.RequireFromString("125"),
			types.SurfaceWindow:         decimal.RequireFromString("75"),
			types.SurfaceExteriorWall:   decimal.RequireFromString("2.25"),
			types.SurfaceFascia:         decimal.RequireFromString("3.00"),
			types.SurfaceSoffit:         decimal.RequireFromString("2.50"),
			types.SurfaceExteriorDoor:   decimal.RequireFromString("150"),
			types.SurfaceExteriorWindow: decimal.RequireFromString("95"),
		},
		OverheadPercent:     decimal.NewFromInt(15),
		ProfitMarginPercent: decimal.NewFromInt(30),
		TaxRatePercent:      decimal.Zero,
		HourlyLaborRate:     decimal.NewFromInt(50),
		LaborPercent:        decimal.Zero,
	}
}

// LoadFile reads a rate card from a .hcl or .json file
func LoadFile(path string) (*types.RateCard, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("rate card", path)
		}
		return nil, errors.Config("failed to read rate card", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".json":
		return ParseJSON(src)
	default:
		return nil, errors.Newf(errors.TypeConfig, "unsupported rate card format: %s", path)
	}
}

// ParseHCL decodes an HCL rate card. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*types.RateCard, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Config("invalid rate card HCL", diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Config("invalid rate card HCL", diags)
	}

	rc := &types.RateCard{
		CompanyID:           raw.CompanyID,
		Currency:            types.Currency(strings.ToUpper(raw.Currency)),
		Rates:               make(map[types.SurfaceType]decimal.Decimal, len(raw.Rates)),
		OverheadPercent:     decimal.NewFromFloat(raw.OverheadPercent),
		ProfitMarginPercent: decimal.NewFromFloat(raw.ProfitMarginPercent),
		TaxRatePercent:      decimal.NewFromFloat(raw.TaxRatePercent),
		HourlyLaborRate:     decimal.NewFromFloat(raw.HourlyLaborRate),
		LaborPercent:        decimal.NewFromFloat(raw.LaborPercent),
	}
	for _, r := range raw.Rates {
		t := types.SurfaceType(r.Surface)
		if !t.IsValid() {
			return nil, errors.Newf(errors.TypeConfig, "%s: unknown surface type %q", filename, r.Surface)
		}
		if _, dup := rc.Rates[t]; dup {
			return nil, errors.Newf(errors.TypeConfig, "%s: duplicate rate for %q", filename, r.Surface)
		}
		rc.Rates[t] = decimal.NewFromFloat(r.UnitPrice)
	}
	return rc, nil
}

// ParseJSON decodes a JSON rate card
func ParseJSON(src []byte) (*types.RateCard, error) {
	var rc types.RateCard
	if err := json.Unmarshal(src, &rc); err != nil {
		return nil, errors.Config("invalid rate card JSON", err)
	}
	for t := range rc.Rates {
		if !t.IsValid() {
			return nil, errors.Newf(errors.TypeConfig, "unknown surface type %q", t)
		}
	}
	if rc.Rates == nil {
		rc.Rates = map[types.SurfaceType]decimal.Decimal{}
	}
	return &rc, nil
}

// EncodeHCL renders rc in the format ParseHCL reads
func EncodeHCL(rc *types.RateCard) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if rc.CompanyID != "" {
		body.SetAttributeValue("company_id", cty.StringVal(rc.CompanyID))
	}
	body.SetAttributeValue("currency", cty.StringVal(string(rc.CurrencyOrDefault())))
	body.SetAttributeValue("overhead_percent", number(rc.OverheadPercent))
	body.SetAttributeValue("profit_margin_percent", number(rc.ProfitMarginPercent))
	body.SetAttributeValue("tax_rate_percent", number(rc.TaxRatePercent))
	body.SetAttributeValue("hourly_labor_rate", number(rc.HourlyLaborRate))
	body.SetAttributeValue("labor_percent", number(rc.LaborPercent))

	for _, t := range sortedSurfaces(rc) {
		body.AppendNewline()
		block := body.AppendNewBlock("rate", []string{string(t)})
		block.Body().SetAttributeValue("unit_price", number(rc.Rates[t]))
	}
	return f.Bytes()
}

// Summary renders a short human-readable description of the rate card,
// suitable for embedding in a prompt
func Summary(rc *types.RateCard) string {
	if rc == nil {
		return "No rate card configured."
	}

	var b strings.Builder
	currency := rc.CurrencyOrDefault()
	for _, t := range sortedSurfaces(rc) {
		var unit string
		switch t.Class() {
		case types.UnitArea:
			unit = "per sqft per coat"
		case types.UnitLinear:
			unit = "per linear ft"
		default:
			unit = "each"
		}
		fmt.Fprintf(&b, "- %s: %s %s %s\n", t, rc.Rates[t].StringFixed(2), currency, unit)
	}
	fmt.Fprintf(&b, "Overhead %s%%, profit margin %s%%, tax %s%%.",
		rc.OverheadPercent.String(), rc.ProfitMarginPercent.String(), rc.TaxRatePercent.String())
	if rc.HourlyLaborRate.IsPositive() {
		fmt.Fprintf(&b, " Labor %s %s/hour.", rc.HourlyLaborRate.StringFixed(2), currency)
	}
	return b.String()
}

// sortedSurfaces returns the priced surface types in display order
func sortedSurfaces(rc *types.RateCard) []types.SurfaceType {
	order := make(map[types.SurfaceType]int, len(types.SurfaceTypes))
	for i, t := range types.SurfaceTypes {
		order[t] = i
	}

	out := make([]types.SurfaceType, 0, len(rc.Rates))
	for t := range rc.Rates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return order[out[i]] < order[out[j]]
	})
	return out
}

func number(d decimal.Decimal) cty.Value {
	return cty.MustParseNumberVal(d.String())
}
