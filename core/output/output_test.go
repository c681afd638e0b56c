package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"paint-quote/core/conversation"
	"paint-quote/core/pricing"
	"paint-quote/core/ratecard"
	"paint-quote/core/types"
)

func sampleResult(t *testing.T) *QuoteResult {
	t.Helper()
	rc := ratecard.Default()
	rc.TaxRatePercent = decimal.RequireFromString("8.25")

	quote, err := pricing.Price([]types.Surface{
		types.AreaSurface(types.SurfaceWall, 200, 2),
		types.CountSurface(types.SurfaceDoor, 2),
	}, rc)
	if err != nil {
		t.Fatalf("price: %v", err)
	}

	info := types.NewQuoteInformation()
	info.CustomerName = "Jane Doe"
	info.Address = "12 Elm St"
	return &QuoteResult{
		ID:         "q-1",
		Info:       &info,
		Quote:      quote,
		Confidence: 75,
		Metadata:   QuoteMetadata{Version: "test"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCLI, false},
		{"CLI", FormatCLI, false},
		{"json", FormatJSON, false},
		{"md", FormatMarkdown, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderCLI(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatCLI, sampleResult(t), Options{ShowDetails: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"PAINTING QUOTE", "Jane Doe", "200 sqft x 2 coats x $1.75", "$250.00", "Confidence: 75%"} {
		if !strings.Contains(out, want) {
			t.Errorf("cli output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("cli output has no total line:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, sampleResult(t), Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		ID    string `json:"id"`
		Quote struct {
			Subtotal string `json:"subtotal"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.ID != "q-1" || decoded.Quote.Subtotal != "950" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatMarkdown, sampleResult(t), Options{ShowDetails: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| wall | 200 sqft x 2 coats | $1.75 | $700.00 |") {
		t.Errorf("markdown missing wall row:\n%s", out)
	}
	if !strings.Contains(out, "| door | 2 each | $125.00 | $250.00 |") {
		t.Errorf("markdown missing door row:\n%s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "pdf", sampleResult(t), Options{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderTurn(t *testing.T) {
	res := &conversation.TurnResult{
		Reply:      "What is the address?",
		Stage:      types.StageGatheringCustomerInfo,
		Confidence: 25,
		Missing:    []string{"address", "projectType"},
	}

	var buf bytes.Buffer
	if err := RenderTurn(&buf, FormatCLI, res, true); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "\nassistant> What is the address?\n  [stage: gathering_customer_info | confidence: 25% (incomplete) | missing: address, projectType]\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
