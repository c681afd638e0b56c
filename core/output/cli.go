package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"paint-quote/core/types"
)

const (
	boxTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	boxRule   = "├─────────────────────────────────────────────────────────────────────────┤"
	boxBottom = "└─────────────────────────────────────────────────────────────────────────┘"
)

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *QuoteResult) error {
	q := result.Quote
	p := &printer{w: w}

	p.line(boxTop)
	p.line("│                             PAINTING QUOTE                              │")
	p.line(boxRule)
	p.row("Quote", result.ID)
	if result.Info != nil {
		if result.Info.CustomerName != "" {
			p.row("Customer", result.Info.CustomerName)
		}
		if result.Info.Address != "" {
			p.row("Address", result.Info.Address)
		}
		p.row("Project", string(result.Info.ProjectType.OrDefault()))
	}
	p.line(boxRule)

	for _, item := range q.LineItems {
		label := string(item.Surface.Type)
		if item.Surface.Label != "" {
			label += " (" + item.Surface.Label + ")"
		}
		p.row(label, money(item.Subtotal, q.Currency))
		if f.opts.ShowDetails {
			fmt.Fprintf(w, "│   └─ %-46s %20s │\n", truncate(item.Formula, 46), "")
		}
	}
	if len(q.LineItems) > 0 {
		p.line(boxRule)
	}

	p.row("Subtotal", money(q.Subtotal, q.Currency))
	if f.opts.ShowDetails {
		p.row("  Materials", money(q.MaterialCost, q.Currency))
		p.row("  Labor", money(q.LaborCost, q.Currency))
		if q.LaborHours.IsPositive() {
			p.row("  Labor hours", q.LaborHours.StringFixed(1))
		}
	}
	p.row("Overhead", money(q.OverheadAmount, q.Currency))
	p.row("Profit", money(q.ProfitAmount, q.Currency))
	p.row("Tax", money(q.TaxAmount, q.Currency))
	p.line(boxRule)
	p.row("TOTAL", money(q.TotalCost, q.Currency))
	p.line(boxBottom)

	if result.Confidence > 0 {
		p.printf("\nConfidence: %d%%\n", result.Confidence)
	}
	for _, a := range result.Assumptions {
		p.printf("Assumption: %s\n", a)
	}
	if result.Metadata.InputHash != "" {
		p.printf("Input hash: %s\n", result.Metadata.InputHash)
	}
	return p.err
}

// printer keeps the first write error so rendering code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) row(label, value string) {
	p.printf("│ %-50s %20s │\n", truncate(label, 50), truncate(value, 20))
}

func money(d decimal.Decimal, currency types.Currency) string {
	if currency == "" || currency == types.CurrencyUSD {
		return "$" + d.StringFixed(2)
	}
	return d.StringFixed(2) + " " + string(currency)
}
