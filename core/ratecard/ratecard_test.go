package ratecard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

const sampleHCL = `
company_id            = "acme"
currency              = "usd"
overhead_percent      = 15
profit_margin_percent = 30
tax_rate_percent      = 8.25
hourly_labor_rate     = 45

rate "wall" {
  unit_price = 1.75
}

rate "door" {
  unit_price = 125
}
`

func TestParseHCL(t *testing.T) {
	rc, err := ParseHCL([]byte(sampleHCL), "acme.hcl")
	require.NoError(t, err)

	assert.Equal(t, "acme", rc.CompanyID)
	assert.Equal(t, types.CurrencyUSD, rc.Currency)
	assert.True(t, rc.TaxRatePercent.Equal(decimal.RequireFromString("8.25")))
	assert.True(t, rc.LaborPercent.IsZero())

	wall, ok := rc.Rate(types.SurfaceWall)
	require.True(t, ok)
	assert.Equal(t, "1.75", wall.String())

	_, ok = rc.Rate(types.SurfaceWindow)
	assert.False(t, ok)
}

func TestParseHCLRejectsUnknownSurface(t *testing.T) {
	_, err := ParseHCL([]byte(`rate "deck" { unit_price = 3 }`), "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	_, err = ParseHCL([]byte(`rate "wall" {`), "broken.hcl")
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestHCLRoundTrip(t *testing.T) {
	original := Default()
	original.TaxRatePercent = decimal.RequireFromString("8.25")

	decoded, err := ParseHCL(EncodeHCL(original), "roundtrip.hcl")
	require.NoError(t, err)

	assert.Equal(t, original.CompanyID, decoded.CompanyID)
	assert.True(t, original.TaxRatePercent.Equal(decoded.TaxRatePercent))
	assert.True(t, original.OverheadPercent.Equal(decoded.OverheadPercent))
	require.Len(t, decoded.Rates, len(original.Rates))
	for surface, rate := range original.Rates {
		assert.True(t, rate.Equal(decoded.Rates[surface]), "rate for %s", surface)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"companyId": "brushworks",
		"rates": {"ceiling": "2.10", "baseboard": 1.2},
		"overheadPercent": "10",
		"profitMarginPercent": "20",
		"taxRatePercent": "0",
		"hourlyLaborRate": "40",
		"laborPercent": "55"
	}`), 0644))

	rc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "brushworks", rc.CompanyID)
	assert.Equal(t, types.CurrencyUSD, rc.CurrencyOrDefault())
	assert.True(t, rc.Rates[types.SurfaceCeiling].Equal(decimal.RequireFromString("2.1")))
	assert.True(t, rc.LaborPercent.Equal(decimal.NewFromInt(55)))
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates: {}"), 0644))
	_, err = LoadFile(path)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestSummary(t *testing.T) {
	summary := Summary(Default())

	lines := strings.Split(summary, "\n")
	assert.Equal(t, "- wall: 1.75 USD per sqft per coat", lines[0])
	assert.Contains(t, summary, "- door: 125.00 USD each")
	assert.Contains(t, summary, "Overhead 15%, profit margin 30%, tax 0%.")
	assert.Equal(t, "No rate card configured.", Summary(nil))
}

func TestStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acme.hcl"), []byte(sampleHCL), 0644))

	store, err := NewStore(dir, 2)
	require.NoError(t, err)

	rc, err := store.Get("acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", rc.CompanyID)
	assert.Equal(t, 1, store.Len())

	again, err := store.Get("acme")
	require.NoError(t, err)
	assert.Same(t, rc, again)

	_, err = store.Get("nobody")
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	fallback, err := store.GetOrDefault("nobody")
	require.NoError(t, err)
	assert.Equal(t, "default", fallback.CompanyID)

	_, err = store.Get("../etc/passwd")
	assert.True(t, errors.IsType(err, errors.TypeValidation))

	store.Invalidate("acme")
	assert.Equal(t, 0, store.Len())
}

func TestStorePut(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "cards"), 0)
	require.NoError(t, err)

	card := Default()
	card.CompanyID = "newco"
	require.NoError(t, store.Put(card))

	store.Invalidate("newco")
	loaded, err := store.Get("newco")
	require.NoError(t, err)
	assert.True(t, loaded.Rates[types.SurfaceDoor].Equal(decimal.NewFromInt(125)))
}
