package pricing

import (
	stderrors "errors"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"paint-quote/core/types"
	"paint-quote/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRateCard() *types.RateCard {
	return &types.RateCard{
		CompanyID: "acme",
		Rates: map[types.SurfaceType]decimal.Decimal{
			types.SurfaceWall:         d("1.75"),
			types.SurfaceCeiling:      d("2.00"),
			types.SurfaceBaseboard:    d("3.50"),
			types.SurfaceDoor:         d("125"),
			types.SurfaceWindow:       d("95"),
			types.SurfaceExteriorWall: d("2.25"),
		},
		OverheadPercent:     d("15"),
		ProfitMarginPercent: d("30"),
		TaxRatePercent:      d("8.25"),
		HourlyLaborRate:     d("50"),
	}
}

func TestPriceEmptySurfacesIsAllZero(t *testing.T) {
	quote, err := Price(nil, testRateCard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quote.LineItems) != 0 {
		t.Fatalf("expected no line items, got %d", len(quote.LineItems))
	}
	for name, v := range map[string]decimal.Decimal{
		"subtotal": quote.Subtotal,
		"overhead": quote.OverheadAmount,
		"profit":   quote.ProfitAmount,
		"tax":      quote.TaxAmount,
		"total":    quote.TotalCost,
		"labor":    quote.LaborCost,
		"material": quote.MaterialCost,
		"hours":    quote.LaborHours,
	} {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0", name, v)
		}
	}
	if quote.Currency != types.CurrencyUSD {
		t.Errorf("currency = %s, want USD", quote.Currency)
	}
}

func TestPriceWallExample(t *testing.T) {
	surfaces := []types.Surface{types.AreaSurface(types.SurfaceWall, 200, 2)}

	quote, err := Price(surfaces, testRateCard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"subtotal", quote.Subtotal, "700"},
		{"overhead", quote.OverheadAmount, "105"},
		{"profit", quote.ProfitAmount, "241.5"},
		{"tax", quote.TaxAmount, "86.34"},
		{"total", quote.TotalCost, "1132.84"},
		{"material", quote.MaterialCost, "700"},
		{"labor", quote.LaborCost, "0"},
	}
	for _, tt := range tests {
		if !tt.got.Equal(d(tt.want)) {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}

	item := quote.LineItems[0]
	if item.Coats != 2 || item.Class != types.UnitArea {
		t.Errorf("line item = %+v", item)
	}
	if item.Formula != "200 sqft x 2 coats x $1.75" {
		t.Errorf("formula = %q", item.Formula)
	}
}

func TestPriceDocumentedExample(t *testing.T) {
	rc := testRateCard()
	rc.Rates[types.SurfaceWall] = d("3.5")
	surfaces := []types.Surface{types.AreaSurface(types.SurfaceWall, 100, 2)}

	quote, err := Price(surfaces, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"subtotal": "700",
		"overhead": "105",
		"profit":   "241.5",
		"tax":      "86.34",
		"total":    "1132.84",
	}
	got := map[string]decimal.Decimal{
		"subtotal": quote.Subtotal,
		"overhead": quote.OverheadAmount,
		"profit":   quote.ProfitAmount,
		"tax":      quote.TaxAmount,
		"total":    quote.TotalCost,
	}
	for name, w := range want {
		if !got[name].Equal(d(w)) {
			t.Errorf("%s = %s, want %s", name, got[name], w)
		}
	}
	if len(quote.LineItems) != 1 || quote.LineItems[0].Coats != 2 {
		t.Errorf("line items = %+v", quote.LineItems)
	}
}

func TestPriceTotalRoundsOnce(t *testing.T) {
	// Each line rounds down to 1.00 but the total is computed from the
	// unrounded 2.008.
	rc := &types.RateCard{
		Rates: map[types.SurfaceType]decimal.Decimal{
			types.SurfaceBaseboard: d("1.004"),
		},
	}
	quote, err := Price([]types.Surface{
		types.LinearSurface(types.SurfaceBaseboard, 1),
		types.LinearSurface(types.SurfaceBaseboard, 1),
	}, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.LineItems[0].Subtotal.Equal(d("1")) {
		t.Errorf("line subtotal = %s, want 1", quote.LineItems[0].Subtotal)
	}
	if !quote.TotalCost.Equal(d("2.01")) {
		t.Errorf("total = %s, want 2.01", quote.TotalCost)
	}
}

func TestCountAndLinearIgnoreCoats(t *testing.T) {
	doors := types.CountSurface(types.SurfaceDoor, 2)
	trim := types.LinearSurface(types.SurfaceBaseboard, 100)

	for _, coats := range []int{0, 1, 3, 5} {
		doors.Coats = coats
		trim.Coats = coats

		quote, err := Price([]types.Surface{doors, trim}, testRateCard())
		if err != nil {
			t.Fatalf("coats=%d: unexpected error: %v", coats, err)
		}
		if !quote.LineItems[0].Subtotal.Equal(d("250")) {
			t.Errorf("coats=%d: doors = %s, want 250", coats, quote.LineItems[0].Subtotal)
		}
		if !quote.LineItems[1].Subtotal.Equal(d("350")) {
			t.Errorf("coats=%d: trim = %s, want 350", coats, quote.LineItems[1].Subtotal)
		}
		if quote.LineItems[0].Coats != 1 {
			t.Errorf("coats=%d: count line item coats = %d, want 1", coats, quote.LineItems[0].Coats)
		}
	}
}

func TestPriceIsIdempotent(t *testing.T) {
	surfaces := []types.Surface{
		types.AreaSurface(types.SurfaceWall, 412.5, 3),
		types.AreaSurface(types.SurfaceCeiling, 180, 0),
		types.CountSurface(types.SurfaceWindow, 4),
	}
	rc := testRateCard()
	rc.LaborPercent = d("60")

	first, err := Price(surfaces, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Price(surfaces, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("quotes differ:\n%+v\n%+v", first, second)
	}
}

func TestLaborSplit(t *testing.T) {
	rc := testRateCard()
	rc.LaborPercent = d("60")

	quote, err := Price([]types.Surface{types.AreaSurface(types.SurfaceWall, 200, 2)}, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.LaborCost.Equal(d("420")) {
		t.Errorf("labor = %s, want 420", quote.LaborCost)
	}
	if !quote.MaterialCost.Equal(d("280")) {
		t.Errorf("material = %s, want 280", quote.MaterialCost)
	}
	if !quote.LaborHours.Equal(d("8.4")) {
		t.Errorf("hours = %s, want 8.4", quote.LaborHours)
	}
}

func TestPriceRejectsInvalidSurfaces(t *testing.T) {
	area := 100.0
	count := 2

	tests := []struct {
		name    string
		surface types.Surface
	}{
		{"unknown type", types.Surface{Type: "deck", Area: &area}},
		{"missing area", types.Surface{Type: types.SurfaceWall}},
		{"zero area", types.AreaSurface(types.SurfaceWall, 0, 2)},
		{"negative linear", types.LinearSurface(types.SurfaceBaseboard, -5)},
		{"zero count", types.CountSurface(types.SurfaceDoor, 0)},
		{"two unit fields", types.Surface{Type: types.SurfaceWall, Area: &area, Count: &count}},
		{"wrong unit field", types.Surface{Type: types.SurfaceDoor, Area: &area}},
		{"too many coats", types.AreaSurface(types.SurfaceWall, 100, 6)},
		{"negative coats", types.AreaSurface(types.SurfaceWall, 100, -1)},
		{"bad condition", types.Surface{Type: types.SurfaceWall, Area: &area, Condition: "rotten"}},
		{"bad prep", types.Surface{Type: types.SurfaceWall, Area: &area, PrepWork: []types.PrepTask{"sanding", "gilding"}}},
		{"no rate", types.AreaSurface(types.SurfaceSoffit, 100, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surfaces := []types.Surface{types.AreaSurface(types.SurfaceWall, 10, 1), tt.surface}
			_, err := Price(surfaces, testRateCard())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeInvalidSurface) {
				t.Fatalf("expected INVALID_SURFACE, got %v", err)
			}
			var domainErr *errors.Error
			if !stderrors.As(err, &domainErr) || domainErr.Context["index"] != 1 {
				t.Fatalf("expected index 1 in context, got %v", err)
			}
		})
	}
}

func TestPriceRejectsBadRateCard(t *testing.T) {
	if _, err := Price(nil, nil); !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("nil rate card: got %v", err)
	}

	rc := testRateCard()
	rc.TaxRatePercent = d("-1")
	if _, err := Price(nil, rc); !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("negative tax: got %v", err)
	}

	rc = testRateCard()
	rc.LaborPercent = d("101")
	if _, err := Price(nil, rc); !errors.IsType(err, errors.TypeValidation) {
		t.Fatalf("labor over 100: got %v", err)
	}
}

func TestSurfacesFromInfo(t *testing.T) {
	info := types.NewQuoteInformation()
	info.Measurements = types.Measurements{WallSqft: 400, CeilingSqft: 150, TrimLinearFt: 80, Doors: 2.4, Windows: 0}

	got := SurfacesFromInfo(info)
	want := []types.SurfaceType{types.SurfaceWall, types.SurfaceCeiling, types.SurfaceBaseboard, types.SurfaceDoor}
	if len(got) != len(want) {
		t.Fatalf("got %d surfaces, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Type != want[i] {
			t.Errorf("surface %d = %s, want %s", i, s.Type, want[i])
		}
	}
	if *got[3].Count != 2 {
		t.Errorf("doors = %d, want 2", *got[3].Count)
	}

	info.ProjectType = types.ProjectExterior
	got = SurfacesFromInfo(info)
	want = []types.SurfaceType{types.SurfaceExteriorWall, types.SurfaceFascia, types.SurfaceExteriorDoor}
	if len(got) != len(want) {
		t.Fatalf("exterior: got %d surfaces, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Type != want[i] {
			t.Errorf("exterior surface %d = %s, want %s", i, s.Type, want[i])
		}
	}
}

func TestFingerprint(t *testing.T) {
	surfaces := []types.Surface{types.AreaSurface(types.SurfaceWall, 200, 2)}

	a, err := Fingerprint(surfaces, testRateCard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Fingerprint(surfaces, testRateCard())
	if a != b {
		t.Fatalf("fingerprint not stable: %s vs %s", a, b)
	}

	c, _ := Fingerprint([]types.Surface{types.AreaSurface(types.SurfaceWall, 200, 3)}, testRateCard())
	if a == c {
		t.Fatal("fingerprint ignored coats")
	}
}

func TestWholeUnits(t *testing.T) {
	tests := []struct {
		in       float64
		want     int
		adjusted bool
	}{
		{0, 0, false},
		{-3, 0, false},
		{2.4, 2, false},
		{2.5, 3, false},
		{0.4, 0, true},
		{1e300, MaxUnitCount, true},
		{math.Inf(1), MaxUnitCount, true},
		{math.NaN(), 0, true},
	}
	for _, tt := range tests {
		n, adjusted := WholeUnits(tt.in)
		if n != tt.want || adjusted != tt.adjusted {
			t.Errorf("WholeUnits(%v) = %d, %v; want %d, %v", tt.in, n, adjusted, tt.want, tt.adjusted)
		}
	}
}

func TestSurfacesFromInfoCapsHugeCounts(t *testing.T) {
	info := types.NewQuoteInformation()
	info.Measurements = types.Measurements{Doors: 1e300, Windows: 0.3}

	got := SurfacesFromInfo(info)
	if len(got) != 1 || got[0].Type != types.SurfaceDoor {
		t.Fatalf("got %+v, want one door surface", got)
	}
	if *got[0].Count != MaxUnitCount {
		t.Errorf("doors = %d, want %d", *got[0].Count, MaxUnitCount)
	}
	if _, err := Price(got, testRateCard()); err != nil {
		t.Fatalf("capped count should price: %v", err)
	}
}
